package layup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muesli/reflow/ansi"
)

var (
	// ErrInvalidText reports text content containing a line break.
	ErrInvalidText = errors.New("text contains line break")
	// ErrInvalidArgument reports a value that cannot become a document.
	ErrInvalidArgument = errors.New("invalid document argument")
)

// Printable is the coercion hook for caller-defined values: anything with a
// document form can be passed wherever a document or string is accepted.
type Printable interface {
	PrintDoc() *Doc
}

type docKind uint8

const (
	kindText docKind = iota
	kindHorz
	kindConcat
	kindVert
	kindIfFlat
	kindFullLine
)

// flatNone marks a document that can never render as one unbroken line.
const flatNone = -1

// Doc is an immutable layout document. Docs are built bottom-up by the
// package constructors, never mutated afterwards, and may be shared freely
// between parents and between concurrent Display calls.
type Doc struct {
	kind   docKind
	text   string
	first  *Doc
	second *Doc

	// flat is the precomputed single-line width, or flatNone when this
	// document contains a forced break. Computed once at construction.
	flat int
}

// FlatWidth returns the single-line width of d and whether d can be rendered
// on a single unbroken line at all.
func (d *Doc) FlatWidth() (int, bool) {
	if d.flat == flatNone {
		return 0, false
	}
	return d.flat, true
}

var emptyDoc = &Doc{kind: kindText}

// Empty returns the zero-width empty document.
func Empty() *Doc {
	return emptyDoc
}

// Text wraps a single-line string as an atomic document. The empty string is
// a valid zero-width document. Content containing a line-break character is
// rejected with ErrInvalidText.
func Text(s string) (*Doc, error) {
	if strings.ContainsAny(s, "\n\r") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidText, s)
	}
	if s == "" {
		return emptyDoc, nil
	}
	return &Doc{kind: kindText, text: s, flat: ansi.PrintableRuneWidth(s)}, nil
}

// Horz concatenates parts left to right. A break inside a later part returns
// to the column where the previous parts ended, so multi-line parts align
// under their own starting column.
func Horz(parts ...any) (*Doc, error) {
	docs, err := coerceAll(parts)
	if err != nil {
		return nil, err
	}
	return HorzDocs(docs), nil
}

// HorzDocs is the slice form of Horz.
func HorzDocs(docs []*Doc) *Doc {
	return foldDocs(kindHorz, docs)
}

// Vert stacks parts vertically. Each break returns to the enclosing indent.
func Vert(parts ...any) (*Doc, error) {
	docs, err := coerceAll(parts)
	if err != nil {
		return nil, err
	}
	return VertDocs(docs), nil
}

// VertDocs is the slice form of Vert.
func VertDocs(docs []*Doc) *Doc {
	return foldDocs(kindVert, docs)
}

// Concat concatenates parts left to right like Horz, but breaks inside later
// parts return to the original indent rather than the current column.
func Concat(parts ...any) (*Doc, error) {
	docs, err := coerceAll(parts)
	if err != nil {
		return nil, err
	}
	return ConcatDocs(docs), nil
}

// ConcatDocs is the slice form of Concat.
func ConcatDocs(docs []*Doc) *Doc {
	return foldDocs(kindConcat, docs)
}

// IfFlat chooses between two layouts: flat is rendered when its own flat
// width fits on the remainder of the current line, broken otherwise. The
// decision is made once per render, in constant time, and is final.
func IfFlat(flat, broken any) (*Doc, error) {
	f, err := coerce(flat)
	if err != nil {
		return nil, err
	}
	b, err := coerce(broken)
	if err != nil {
		return nil, err
	}
	return &Doc{kind: kindIfFlat, first: f, second: b, flat: choiceFlat(f.flat, b.flat)}, nil
}

// FullLine renders d unchanged but hides its flat width, so any enclosing
// IfFlat whose flat alternative contains it must take the broken branch.
func FullLine(d any) (*Doc, error) {
	inner, err := coerce(d)
	if err != nil {
		return nil, err
	}
	return &Doc{kind: kindFullLine, first: inner, flat: flatNone}, nil
}

// foldDocs left-associates docs into nested binary nodes. Zero docs yield
// the empty document; folding order is not observable in the output.
func foldDocs(kind docKind, docs []*Doc) *Doc {
	if len(docs) == 0 {
		return emptyDoc
	}
	acc := docs[0]
	for _, d := range docs[1:] {
		acc = &Doc{kind: kind, first: acc, second: d, flat: pairFlat(kind, acc, d)}
	}
	return acc
}

func pairFlat(kind docKind, a, b *Doc) int {
	if kind == kindVert {
		return flatNone
	}
	if a.flat == flatNone || b.flat == flatNone {
		return flatNone
	}
	return a.flat + b.flat
}

// choiceFlat is the exposed width of a choice node: the narrower branch when
// both are measurable, the measurable one otherwise. This deliberately
// differs from the render-time decision, which consults only the flat
// branch's own width.
func choiceFlat(a, b int) int {
	switch {
	case a == flatNone:
		return b
	case b == flatNone:
		return a
	case b < a:
		return b
	default:
		return a
	}
}

func coerce(v any) (*Doc, error) {
	switch t := v.(type) {
	case *Doc:
		if t == nil {
			return nil, fmt.Errorf("%w: nil document", ErrInvalidArgument)
		}
		return t, nil
	case string:
		return Text(t)
	case Printable:
		d := t.PrintDoc()
		if d == nil {
			return nil, fmt.Errorf("%w: %T printed a nil document", ErrInvalidArgument, v)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidArgument, v)
	}
}

func coerceAll(parts []any) ([]*Doc, error) {
	docs := make([]*Doc, len(parts))
	for i, p := range parts {
		d, err := coerce(p)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return docs, nil
}
