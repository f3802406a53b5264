package layup

import (
	"strconv"
	"strings"
	"testing"
)

// deepChoices builds n nested binary choices where both branches share the
// same child. Re-measuring any subtree per decision would blow up
// exponentially; the memoized widths keep construction and rendering linear.
func deepChoices(tb testing.TB, n int) *Doc {
	tb.Helper()
	d, err := Text("x")
	if err != nil {
		tb.Fatalf("text: %v", err)
	}
	for i := 0; i < n; i++ {
		flat, err := Horz(d, "+x")
		if err != nil {
			tb.Fatalf("horz: %v", err)
		}
		broken, err := Vert(d, "+x")
		if err != nil {
			tb.Fatalf("vert: %v", err)
		}
		d, err = IfFlat(flat, broken)
		if err != nil {
			tb.Fatalf("ifflat: %v", err)
		}
	}
	return d
}

func TestDeepNestedChoicesRenderInOnePass(t *testing.T) {
	const depth = 20000
	d := deepChoices(t, depth)

	lines := Display(d, 9)
	// The innermost choices fit flat up to width 9 ("x+x+x+x+x"); every
	// level above breaks, producing one "+x" line per level.
	if len(lines) != depth-3 {
		t.Fatalf("line count: got %d, want %d", len(lines), depth-3)
	}
	if lines[0] != "x+x+x+x+x" {
		t.Fatalf("innermost flat run: got %q", lines[0])
	}
	for i, line := range lines[1:] {
		if line != "+x" {
			t.Fatalf("line %d: got %q, want %q", i+2, line, "+x")
		}
	}
}

func TestDeepNestingAtWideWidth(t *testing.T) {
	d := deepChoices(t, 1000)
	lines := Display(d, 10000)
	if len(lines) != 1 {
		t.Fatalf("expected one flat line, got %d lines", len(lines))
	}
	if want := "x" + strings.Repeat("+x", 1000); lines[0] != want {
		t.Fatalf("flat run length: got %d, want %d", len(lines[0]), len(want))
	}
}

func BenchmarkDeepChoices(b *testing.B) {
	for _, depth := range []int{100, 1000, 10000} {
		b.Run("d"+strconv.Itoa(depth), func(b *testing.B) {
			d := deepChoices(b, depth)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = Display(d, 80)
			}
		})
	}
}

func BenchmarkDisplayFill(b *testing.B) {
	src := strings.Repeat("alpha beta gamma delta epsilon ", 200)
	d, err := Words(src)
	if err != nil {
		b.Fatalf("words: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Display(d, 60)
	}
}

func BenchmarkFormatSExpr(b *testing.B) {
	src := "(define (fib n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))"
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := FormatSExpr(src, 40); err != nil {
			b.Fatalf("format: %v", err)
		}
	}
}
