package grid

import (
	"math"

	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// DefaultFlowSpacing is the spacing a FlowWrap uses unless told otherwise.
const DefaultFlowSpacing = 6

// FlowWrap lays items out left to right and wraps to a new row when the next
// item would overflow the proposed width. See the package documentation for
// the exact wrapping rule.
type FlowWrap struct {
	spacing      float64
	anchor       geom.Anchor
	minItemWidth float64
}

// NewFlowWrap returns a flow layout. Defaults: spacing 6, top-leading anchor,
// no minimum item width.
func NewFlowWrap(opts ...Option) (*FlowWrap, error) {
	o, err := buildOptions(options{spacing: DefaultFlowSpacing, anchor: geom.TopLeading}, opts)
	if err != nil {
		return nil, err
	}
	return &FlowWrap{spacing: o.spacing, anchor: o.anchor, minItemWidth: o.minItemWidth}, nil
}

// Spacing returns the configured spacing.
func (f *FlowWrap) Spacing() float64 { return f.spacing }

// Anchor returns the configured anchor.
func (f *FlowWrap) Anchor() geom.Anchor { return f.anchor }

func (f *FlowWrap) String() string { return StrategyFlow }

// Measure returns the widest row by the stacked row heights.
func (f *FlowWrap) Measure(items []Item, p geom.Proposal) geom.Size {
	_, rows := f.rows(items, p)
	if len(rows) == 0 {
		return geom.Size{}
	}
	var size geom.Size
	for _, r := range rows {
		size.Width = math.Max(size.Width, r.width)
		size.Height += r.height
	}
	size.Height += f.spacing * float64(len(rows)-1)
	return size
}

// Place positions every item within its row starting at bounds.Origin.
// Wrapping follows p's width, the same width Measure was given.
func (f *FlowWrap) Place(items []Item, bounds geom.Rect, p geom.Proposal) []Placement {
	sizes, rows := f.rows(items, p)
	out := make([]Placement, len(items))

	y := bounds.MinY()
	for track, r := range rows {
		x := bounds.MinX()
		for i := r.start; i < r.end; i++ {
			w := f.width(sizes[i])
			cell := geom.R(x, y, w, r.height)
			out[i] = Placement{
				Index:    i,
				Track:    track,
				At:       f.anchor.Resolve(cell),
				Anchor:   f.anchor,
				Proposal: p,
				Size:     sizes[i],
			}
			x += w + f.spacing
		}
		y += r.height + f.spacing
	}
	return out
}

// rows measures every item once and breaks them into rows. Measure and
// Place both go through here so they can never disagree.
func (f *FlowWrap) rows(items []Item, p geom.Proposal) ([]geom.Size, []span) {
	if len(items) == 0 {
		return nil, nil
	}
	limit := p.Width.Value()
	sizes := make([]geom.Size, len(items))

	var (
		acc  rowAccumulator
		rows []span
	)
	for i, it := range items {
		sizes[i] = measure(it, p)
		w := f.width(sizes[i])
		if !acc.fits(w, f.spacing, limit) {
			rows = append(rows, acc.commit(i))
		}
		acc.add(w, sizes[i].Height, f.spacing)
	}
	rows = append(rows, acc.commit(len(items)))
	return sizes, rows
}

func (f *FlowWrap) width(s geom.Size) float64 {
	return math.Max(s.Width, f.minItemWidth)
}
