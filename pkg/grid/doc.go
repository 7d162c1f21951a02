// Package grid implements flow and column layouts for a declarative UI host.
//
// A [Layout] answers two questions about an ordered list of [Item] values:
// how much room the items need ([Layout.Measure]) and where each one goes
// ([Layout.Place]). Both are pure functions of their arguments. A host may
// call Measure any number of times with different proposals before calling
// Place once; nothing is retained between calls and a single Layout value is
// safe for concurrent use.
//
// # Strategies
//
//   - [FlowWrap]: variable-width items packed into rows that wrap when the
//     next item would overflow the proposed width.
//   - [Columns] with round-robin packing ([NewFixedColumns]): item i goes to
//     column i mod C.
//   - [Columns] with shortest-column packing ([NewBalancedColumns]): each item
//     goes to the column with the least accumulated height.
//   - [NewCenteredColumns]: round-robin columns anchored at the center of
//     each cell.
//
// [New] builds any of them from a [Config], which is what scene files, the
// CLI and the HTTP server use.
//
// # Wrapping rule
//
// FlowWrap wraps before an item when the current row is non-empty and
//
//	rowWidth + spacing + itemWidth > proposedWidth
//
// so every row holding two or more items fits the proposed width. An item
// wider than the proposal is put on a row of its own. An unbounded proposal
// never wraps. Rows are separated by one full spacing.
//
// # Anchors
//
// Every placed item gets a cell. For flows the cell is the item's width by
// the row's height; for columns it is the column width by the item's height.
// [Placement.At] is the cell point selected by the layout's anchor, and
// [Placement.Frame] recovers the item's box from it.
package grid
