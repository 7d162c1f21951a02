package grid

import (
	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// Packing decides which column an item goes to.
type Packing int

const (
	// RoundRobin puts item i into column i mod C.
	RoundRobin Packing = iota

	// Shortest puts each item into the column with the least accumulated
	// height. Ties rotate so equal columns fill in round-robin order.
	Shortest
)

// Columns splits the container into C equal-width columns and stacks items
// top to bottom inside them.
//
// The column width is the container width divided by C. Measure reads the
// width from the proposal; an unbounded proposal collapses the columns to
// zero width, reports a width of 0 and offers items an unspecified proposal.
// Place reads the width from bounds.
//
// With balanced packing and spacing s, the tallest and shortest columns end
// up at most tallestItem+s apart.
type Columns struct {
	name    string
	count   int
	packing Packing
	spacing float64
	anchor  geom.Anchor
}

// NewFixedColumns returns round-robin columns. Defaults: spacing 0,
// top-leading anchor.
func NewFixedColumns(columns int, opts ...Option) (*Columns, error) {
	return newColumns(StrategyColumns, columns, RoundRobin, geom.TopLeading, opts)
}

// NewBalancedColumns returns shortest-column packing. Defaults: spacing 0,
// top-leading anchor.
func NewBalancedColumns(columns int, opts ...Option) (*Columns, error) {
	return newColumns(StrategyBalanced, columns, Shortest, geom.TopLeading, opts)
}

// NewCenteredColumns returns round-robin columns whose items are centered
// in their cells. Defaults: spacing 0, center anchor.
func NewCenteredColumns(columns int, opts ...Option) (*Columns, error) {
	return newColumns(StrategyCentered, columns, RoundRobin, geom.Center, opts)
}

func newColumns(name string, n int, packing Packing, anchor geom.Anchor, opts []Option) (*Columns, error) {
	if n < 1 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "columns must be >= 1, got %d", n)
	}
	o, err := buildOptions(options{anchor: anchor}, opts)
	if err != nil {
		return nil, err
	}
	return &Columns{name: name, count: n, packing: packing, spacing: o.spacing, anchor: o.anchor}, nil
}

// Count returns the number of columns.
func (c *Columns) Count() int { return c.count }

// Packing returns the column assignment policy.
func (c *Columns) Packing() Packing { return c.packing }

// Spacing returns the vertical gap between stacked items.
func (c *Columns) Spacing() float64 { return c.spacing }

// Anchor returns the configured anchor.
func (c *Columns) Anchor() geom.Anchor { return c.anchor }

// String returns the strategy name the layout was built as.
func (c *Columns) String() string { return c.name }

// Measure returns the proposed width (0 when unbounded) by the tallest
// column.
func (c *Columns) Measure(items []Item, p geom.Proposal) geom.Size {
	width := p.Width.Or(0)
	if len(items) == 0 {
		return geom.Size{Width: width}
	}
	ip := c.itemProposal(p.Width)
	acc := newColumnAccumulator(c.count, c.spacing)
	for i, it := range items {
		s := measure(it, ip)
		acc.push(c.pick(acc, i), s.Height)
	}
	return geom.Size{Width: width, Height: acc.tallest()}
}

// Place stacks items in their columns. Column k starts at
// bounds.MinX + k*bounds.Width/C.
func (c *Columns) Place(items []Item, bounds geom.Rect, _ geom.Proposal) []Placement {
	out := make([]Placement, len(items))
	if len(items) == 0 {
		return out
	}
	colW := bounds.Width() / float64(c.count)
	ip := geom.FixedWidth(colW)
	acc := newColumnAccumulator(c.count, c.spacing)
	for i, it := range items {
		s := measure(it, ip)
		k := c.pick(acc, i)
		y := acc.push(k, s.Height)
		cell := geom.R(bounds.MinX()+float64(k)*colW, bounds.MinY()+y, colW, s.Height)
		out[i] = Placement{
			Index:    i,
			Track:    k,
			At:       c.anchor.Resolve(cell),
			Anchor:   c.anchor,
			Proposal: ip,
			Size:     s,
		}
	}
	return out
}

func (c *Columns) pick(acc *columnAccumulator, i int) int {
	if c.packing == Shortest {
		return acc.shortest(i % c.count)
	}
	return i % c.count
}

func (c *Columns) itemProposal(w geom.Extent) geom.Proposal {
	if !w.IsBounded() {
		return geom.Unspecified()
	}
	return geom.FixedWidth(w.Value() / float64(c.count))
}
