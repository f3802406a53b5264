package layup

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrTemplate reports a malformed template or mismatched template arguments.
var ErrTemplate = errors.New("invalid template")

var (
	templateLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "OpenEscape", Pattern: `\{\{`},
		{Name: "CloseEscape", Pattern: `\}\}`},
		{Name: "Placeholder", Pattern: `\{\d*\}`},
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Chunk", Pattern: `[^{}\r\n]+`},
	})

	templateParser = participle.MustBuild[templateAST](
		participle.Lexer(templateLexer),
	)
)

type templateAST struct {
	Lines []*templateLine `parser:"@@ ( Newline @@ )*"`
}

type templateLine struct {
	Chunks []*templateChunk `parser:"@@*"`
}

type templateChunk struct {
	Text        string `parser:"  @Chunk"`
	OpenBrace   bool   `parser:"| @OpenEscape"`
	CloseBrace  bool   `parser:"| @CloseEscape"`
	Placeholder string `parser:"| @Placeholder"`
}

// Template builds a document from a template string. Literal text becomes
// atomic text, "{}" splices the next argument, "{N}" splices argument N, and
// "{{"/"}}" escape literal braces. Newlines separate vertically stacked
// lines; within a line the pieces are joined horizontally, so a multi-line
// argument re-aligns to its insertion column. Every argument must be used
// and every placeholder must resolve, otherwise Template fails with
// ErrTemplate. Arguments may be documents, strings, or Printable values.
func Template(tmpl string, args ...any) (*Doc, error) {
	if tmpl == "" {
		if len(args) > 0 {
			return nil, fmt.Errorf("%w: %d unused argument(s)", ErrTemplate, len(args))
		}
		return Empty(), nil
	}
	ast, err := templateParser.ParseString("", tmpl)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplate, err)
	}
	used := make([]bool, len(args))
	next := 0
	lines := make([]*Doc, 0, len(ast.Lines))
	for _, line := range ast.Lines {
		chunks := make([]*Doc, 0, len(line.Chunks))
		for _, chunk := range line.Chunks {
			d, err := buildChunk(chunk, args, used, &next)
			if err != nil {
				return nil, err
			}
			chunks = append(chunks, d)
		}
		lines = append(lines, HorzDocs(chunks))
	}
	for i, u := range used {
		if !u {
			return nil, fmt.Errorf("%w: argument %d unused", ErrTemplate, i)
		}
	}
	return VertDocs(lines), nil
}

func buildChunk(chunk *templateChunk, args []any, used []bool, next *int) (*Doc, error) {
	switch {
	case chunk.OpenBrace:
		return Text("{")
	case chunk.CloseBrace:
		return Text("}")
	case chunk.Placeholder != "":
		idx, err := placeholderIndex(chunk.Placeholder, next)
		if err != nil {
			return nil, err
		}
		if idx >= len(args) {
			return nil, fmt.Errorf("%w: placeholder %s beyond %d argument(s)", ErrTemplate, chunk.Placeholder, len(args))
		}
		used[idx] = true
		d, err := coerce(args[idx])
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d: %w", ErrTemplate, idx, err)
		}
		return d, nil
	default:
		return Text(chunk.Text)
	}
}

// placeholderIndex resolves "{}" to the next implicit index and "{N}" to N.
// Explicit indexes do not advance the implicit counter.
func placeholderIndex(placeholder string, next *int) (int, error) {
	body := placeholder[1 : len(placeholder)-1]
	if body == "" {
		idx := *next
		*next++
		return idx, nil
	}
	idx, err := strconv.Atoi(body)
	if err != nil {
		return 0, fmt.Errorf("%w: placeholder %s", ErrTemplate, placeholder)
	}
	return idx, nil
}
