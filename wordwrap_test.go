package layup

import (
	"testing"
)

func TestWordsFillWidth(t *testing.T) {
	must := mustDoc(t)
	d := must(Words("the quick brown fox jumps"))
	want := []string{
		"the quick",
		"brown fox",
		"jumps",
	}
	assertLines(t, Display(d, 10), want)
}

func TestWordsSingleLineWhenWide(t *testing.T) {
	must := mustDoc(t)
	d := must(Words("the quick brown fox"))
	assertLines(t, Display(d, 80), []string{"the quick brown fox"})
}

func TestWordsCollapsesWhitespace(t *testing.T) {
	must := mustDoc(t)
	d := must(Words("  spaced\tout \n words  "))
	assertLines(t, Display(d, 80), []string{"spaced out words"})
}

func TestWordsEmptyInput(t *testing.T) {
	must := mustDoc(t)
	d := must(Words("   \n\t "))
	assertLines(t, Display(d, 10), []string{""})
}

func TestWordsUnicode(t *testing.T) {
	must := mustDoc(t)
	d := must(Words("héllo wörld"))
	assertLines(t, Display(d, 80), []string{"héllo wörld"})
}

func TestFillHangingIndent(t *testing.T) {
	must := mustDoc(t)
	body := must(Words("alpha beta gamma delta"))
	d := must(Horz("- ", body))
	want := []string{
		"- alpha beta",
		"  gamma delta",
	}
	assertLines(t, Display(d, 13), want)
}

func TestFillPerPartDecisions(t *testing.T) {
	must := mustDoc(t)
	// A poisoned part can never join the current line; its neighbors still
	// fill normally.
	multi := must(Vert("x", "y"))
	d := must(Fill("aa", "bb", multi, "cc"))
	want := []string{
		"aa bb",
		"x",
		"y cc",
	}
	assertLines(t, Display(d, 80), want)
}

func TestJoinSeparator(t *testing.T) {
	must := mustDoc(t)
	d := must(Join(", ", "a", "b", "c"))
	assertLines(t, Display(d, 80), []string{"a, b, c"})

	empty := must(Join(", "))
	assertLines(t, Display(empty, 80), []string{""})
}

func TestStack(t *testing.T) {
	must := mustDoc(t)
	d := must(Stack("one", "two", "three"))
	assertLines(t, Display(d, 80), []string{"one", "two", "three"})
}
