// Package layup lays out documents within a maximum line width.
//
// A document is an immutable graph of layout choices built bottom-up from six
// combinators. Every node memoizes its flat width at construction, so the
// renderer can decide in O(1) whether a choice fits on the current line. The
// renderer is a single forward pass: it never re-scans output it has already
// produced and never revisits a layout decision.
//
// Core properties:
//   - Six closed node kinds; construction is the only place errors can occur
//   - Flat widths computed once, linear in distinct nodes even with sharing
//   - Width is a layout target, not a hard limit; overflow is emitted as-is
//   - Nodes are immutable and safe to share across concurrent renders
//
// Example:
//
//	items, err := layup.Vert("alpha", "beta")
//	if err != nil {
//		log.Fatal(err)
//	}
//	d, err := layup.Horz("items: ", items)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, line := range layup.Display(d, 80) {
//		fmt.Println(line)
//	}
//
// Layered helpers add word wrapping (Words, Fill), string templates
// (Template) and s-expression layout (FormatSExpr) on top of the same six
// combinators; none of them extend the rendering semantics.
package layup
