// Package geom provides the small amount of planar geometry shared by the
// grid layouts: points, sizes, rectangles, fractional anchors, and size
// proposals with optionally unbounded dimensions.
//
// All coordinates are float64 in user units with the origin at the top-left
// and Y growing downwards.
//
// # Proposals
//
// A [Proposal] is what a container offers a child when asking for its size.
// Each dimension is an [Extent], whose zero value is unbounded:
//
//	geom.Proposal{}                 // no constraint at all
//	geom.FixedWidth(120)            // width capped at 120, height free
//	geom.Proposal{Width: geom.Bounded(120), Height: geom.Bounded(80)}
//
// # Anchors
//
// An [Anchor] is a fractional point inside a box. [TopLeading] is (0, 0) and
// [Center] is (0.5, 0.5). Layouts resolve an anchor against the cell they
// assign an item to, and renderers invert that with [Anchor.Frame].
package geom
