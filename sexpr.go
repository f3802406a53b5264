package layup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrSExpr reports unparseable s-expression input.
var ErrSExpr = errors.New("invalid s-expression")

var (
	sexprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Comment", Pattern: `;[^\n]*`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Symbol", Pattern: `[^()"; \t\r\n]+`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
	})

	sexprParser = participle.MustBuild[sexprFile](
		participle.Lexer(sexprLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

type sexprFile struct {
	Forms []*SExpr `parser:"@@*"`
}

// SExpr is a parsed s-expression: either an atom or a list of forms.
type SExpr struct {
	Atom *Atom  `parser:"  @@"`
	List *SList `parser:"| @@"`
}

// SList is a parenthesized list of forms.
type SList struct {
	Items []*SExpr `parser:"LParen @@* RParen"`
}

// Atom is a string literal or a bare symbol (numbers are symbols).
type Atom struct {
	Str    *sexprString `parser:"  @String"`
	Symbol *string      `parser:"| @Symbol"`
}

type sexprString string

// Capture implements participle.Capture, unquoting the string literal.
func (s *sexprString) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = sexprString(val)
	return nil
}

func (a *Atom) text() string {
	if a.Str != nil {
		return strconv.Quote(string(*a.Str))
	}
	if a.Symbol != nil {
		return *a.Symbol
	}
	return ""
}

// ParseSExpr parses exactly one s-expression form.
func ParseSExpr(src string) (*SExpr, error) {
	forms, err := ParseSExprs(src)
	if err != nil {
		return nil, err
	}
	if len(forms) != 1 {
		return nil, fmt.Errorf("%w: expected one form, got %d", ErrSExpr, len(forms))
	}
	return forms[0], nil
}

// ParseSExprs parses zero or more s-expression forms.
func ParseSExprs(src string) ([]*SExpr, error) {
	if err := ValidateInput([]byte(src)); err != nil {
		return nil, err
	}
	file, err := sexprParser.ParseString("", src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSExpr, err)
	}
	return file.Forms, nil
}

// LayoutOption configures s-expression layout.
type LayoutOption func(*layoutConfig)

type layoutConfig struct {
	indent int
	align  bool
}

// WithIndent sets the column offset of broken list items from their opening
// parenthesis. The default is 2.
func WithIndent(indent int) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.indent = indent
	}
}

// WithAlign aligns broken list items under the second form of the list
// instead of indenting them, keeping the head and first argument on the
// opening line.
func WithAlign(enabled bool) LayoutOption {
	return func(cfg *layoutConfig) {
		cfg.align = enabled
	}
}

// Doc builds a layout document for s. A list renders on one line when it
// fits and otherwise keeps its head on the opening line with the remaining
// forms stacked below; every nested list makes its own choice at its own
// column.
func (s *SExpr) Doc(opts ...LayoutOption) (*Doc, error) {
	cfg := layoutConfig{indent: 2}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return buildSExprDoc(s, cfg)
}

func buildSExprDoc(s *SExpr, cfg layoutConfig) (*Doc, error) {
	if s.Atom != nil {
		return Text(s.Atom.text())
	}
	if s.List == nil || len(s.List.Items) == 0 {
		return Text("()")
	}
	docs := make([]*Doc, len(s.List.Items))
	for i, item := range s.List.Items {
		d, err := buildSExprDoc(item, cfg)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}

	lparen, err := Text("(")
	if err != nil {
		return nil, err
	}
	rparen, err := Text(")")
	if err != nil {
		return nil, err
	}
	space, err := Text(" ")
	if err != nil {
		return nil, err
	}

	flatParts := make([]*Doc, 0, len(docs)*2+1)
	flatParts = append(flatParts, lparen)
	for i, d := range docs {
		if i > 0 {
			flatParts = append(flatParts, space)
		}
		flatParts = append(flatParts, d)
	}
	flatParts = append(flatParts, rparen)
	flat := HorzDocs(flatParts)

	if len(docs) == 1 {
		return IfFlat(flat, HorzDocs([]*Doc{lparen, docs[0], rparen}))
	}

	var broken *Doc
	if cfg.align {
		body := VertDocs(docs[1:])
		broken = HorzDocs([]*Doc{lparen, docs[0], space, body, rparen})
	} else {
		pad := cfg.indent - 1
		if pad < 0 {
			pad = 0
		}
		padText, err := Text(strings.Repeat(" ", pad))
		if err != nil {
			return nil, err
		}
		stacked := make([]*Doc, 0, len(docs))
		stacked = append(stacked, docs[0])
		for _, d := range docs[1:] {
			stacked = append(stacked, HorzDocs([]*Doc{padText, d}))
		}
		broken = HorzDocs([]*Doc{lparen, VertDocs(stacked), rparen})
	}
	return IfFlat(flat, broken)
}

// FormatSExpr parses src and renders every top-level form within width,
// stacking forms vertically.
func FormatSExpr(src string, width int, opts ...LayoutOption) (string, error) {
	forms, err := ParseSExprs(src)
	if err != nil {
		return "", err
	}
	docs := make([]*Doc, len(forms))
	for i, form := range forms {
		d, err := form.Doc(opts...)
		if err != nil {
			return "", err
		}
		docs[i] = d
	}
	return Format(VertDocs(docs), width), nil
}
