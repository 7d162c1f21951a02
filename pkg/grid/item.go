package grid

import "github.com/matzehuels/adaptivegrid/pkg/geom"

// Item is a measurable child. SizeThatFits returns the item's intrinsic
// size under the given proposal and must not depend on anything but p.
type Item interface {
	SizeThatFits(p geom.Proposal) geom.Size
}

// ItemFunc adapts a plain function to the Item interface.
type ItemFunc func(p geom.Proposal) geom.Size

// SizeThatFits calls f(p).
func (f ItemFunc) SizeThatFits(p geom.Proposal) geom.Size { return f(p) }

// Fixed is an item whose size ignores the proposal.
type Fixed geom.Size

// SizeThatFits returns the fixed size.
func (f Fixed) SizeThatFits(geom.Proposal) geom.Size { return geom.Size(f) }

// FixedItems wraps each size in a Fixed item.
func FixedItems(sizes ...geom.Size) []Item {
	items := make([]Item, len(sizes))
	for i, s := range sizes {
		items[i] = Fixed(s)
	}
	return items
}

// measure queries one item and clamps whatever it reports to a valid size.
func measure(it Item, p geom.Proposal) geom.Size {
	return it.SizeThatFits(p).Clamp()
}
