package grid

import (
	"math"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// Layout is a pluggable layout strategy.
type Layout interface {
	// Measure returns the size the items need under proposal p.
	Measure(items []Item, p geom.Proposal) geom.Size

	// Place assigns every item a position inside bounds. The result is
	// index-aligned with items.
	Place(items []Item, bounds geom.Rect, p geom.Proposal) []Placement
}

// Placement is where a single item ends up.
type Placement struct {
	// Index is the item's position in the input slice.
	Index int

	// Track is the row (flow) or column (columns) the item was assigned to.
	Track int

	// At is the anchor point in container coordinates.
	At geom.Point

	// Anchor is the fractional point of the item's own box that sits at At.
	Anchor geom.Anchor

	// Proposal is what the item should be offered when it is laid out.
	Proposal geom.Proposal

	// Size is the item's measured size under Proposal.
	Size geom.Size
}

// Frame returns the item's box in container coordinates.
func (p Placement) Frame() geom.Rect {
	return p.Anchor.Frame(p.At, p.Size)
}

// Option configures a layout at construction time.
type Option func(*options)

type options struct {
	spacing      float64
	anchor       geom.Anchor
	minItemWidth float64
}

// WithSpacing sets the gap between neighbouring items and between rows.
func WithSpacing(v float64) Option { return func(o *options) { o.spacing = v } }

// WithAnchor sets the anchor used to position items within their cells.
func WithAnchor(a geom.Anchor) Option { return func(o *options) { o.anchor = a } }

// WithMinItemWidth makes every item occupy at least w horizontally.
// Only FlowWrap honours it.
func WithMinItemWidth(w float64) Option { return func(o *options) { o.minItemWidth = w } }

func buildOptions(defaults options, opts []Option) (options, error) {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	if err := errors.ValidateSpacing(o.spacing); err != nil {
		return options{}, err
	}
	if !o.anchor.IsFinite() {
		return options{}, errors.New(errors.ErrCodeInvalidConfiguration, "anchor must be finite")
	}
	if math.IsNaN(o.minItemWidth) || math.IsInf(o.minItemWidth, 0) || o.minItemWidth < 0 {
		return options{}, errors.New(errors.ErrCodeInvalidConfiguration, "min item width must be a finite value >= 0")
	}
	return o, nil
}
