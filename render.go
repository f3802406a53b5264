package layup

import (
	"io"
	"strings"
)

var spaceString = strings.Repeat(" ", 256)

// lineBuffer accumulates rendered output as a single byte arena with
// recorded line starts. Lines are materialized once, at the end of a render.
type lineBuffer struct {
	buf    []byte
	starts []int
}

func newLineBuffer() *lineBuffer {
	return &lineBuffer{starts: []int{0}}
}

func (b *lineBuffer) writeString(s string) {
	b.buf = append(b.buf, s...)
}

// newline opens a new output line padded to indent.
func (b *lineBuffer) newline(indent int) {
	b.buf = append(b.buf, '\n')
	b.starts = append(b.starts, len(b.buf))
	b.pad(indent)
}

func (b *lineBuffer) pad(n int) {
	for n > len(spaceString) {
		b.buf = append(b.buf, spaceString...)
		n -= len(spaceString)
	}
	if n > 0 {
		b.buf = append(b.buf, spaceString[:n]...)
	}
}

func (b *lineBuffer) lines() []string {
	out := make([]string, len(b.starts))
	for i, start := range b.starts {
		end := len(b.buf)
		if i+1 < len(b.starts) {
			end = b.starts[i+1] - 1 // drop the newline byte
		}
		out[i] = string(b.buf[start:end])
	}
	return out
}

func (b *lineBuffer) String() string {
	return string(b.buf)
}

// render walks the document once, top to bottom and left to right, threading
// the indent to return to after a break and the current cursor column. It
// returns the column after d's output. Width is consulted only by choice
// nodes; exceeding it is not an error.
func render(d *Doc, lb *lineBuffer, indent, column, width int) int {
	switch d.kind {
	case kindText:
		lb.writeString(d.text)
		return column + d.flat
	case kindHorz:
		// The second part breaks back to wherever the first part ended.
		c := render(d.first, lb, indent, column, width)
		return render(d.second, lb, c, c, width)
	case kindConcat:
		// The second part keeps the original indent, not the current column.
		c := render(d.first, lb, indent, column, width)
		return render(d.second, lb, indent, c, width)
	case kindVert:
		render(d.first, lb, indent, column, width)
		lb.newline(indent)
		return render(d.second, lb, indent, indent, width)
	case kindFullLine:
		return render(d.first, lb, indent, column, width)
	default: // kindIfFlat
		// The decision looks only at the flat branch's own precomputed
		// width, never at the choice node's exposed width and never at a
		// re-measurement. An exact fit chooses flat.
		if fw := d.first.flat; fw != flatNone && column+fw <= width {
			return render(d.first, lb, indent, column, width)
		}
		return render(d.second, lb, indent, column, width)
	}
}

// Display renders d within width and returns one string per physical output
// line. The strings contain no line-break characters; a nil or empty
// document yields a single empty line. Width is a layout target for choice
// nodes, not a hard limit: lines that cannot fit are emitted as-is.
func Display(d *Doc, width int) []string {
	lb := newLineBuffer()
	if d != nil {
		render(d, lb, 0, 0, width)
	}
	return lb.lines()
}

// Format renders d within width as a single string with "\n" between lines.
func Format(d *Doc, width int) string {
	lb := newLineBuffer()
	if d != nil {
		render(d, lb, 0, 0, width)
	}
	return lb.String()
}

// Fprint renders d within width to w, terminating every line with "\n".
func Fprint(w io.Writer, d *Doc, width int) error {
	lb := newLineBuffer()
	if d != nil {
		render(d, lb, 0, 0, width)
	}
	lb.buf = append(lb.buf, '\n')
	_, err := w.Write(lb.buf)
	return err
}
