package geom

import (
	"math"
	"strconv"
)

// Extent is an optional length. The zero value is unbounded, which layouts
// treat as infinite.
type Extent struct {
	value   float64
	bounded bool
}

// Bounded returns an extent capped at v.
func Bounded(v float64) Extent { return Extent{value: v, bounded: true} }

// Unbounded returns an extent with no upper limit.
func Unbounded() Extent { return Extent{} }

// IsBounded reports whether the extent carries a limit.
func (e Extent) IsBounded() bool { return e.bounded }

// Value returns the limit, or +Inf when unbounded.
func (e Extent) Value() float64 {
	if !e.bounded {
		return math.Inf(1)
	}
	return e.value
}

// Or returns the limit, or fallback when unbounded.
func (e Extent) Or(fallback float64) float64 {
	if !e.bounded {
		return fallback
	}
	return e.value
}

// String formats the extent for logs ("120" or "unbounded").
func (e Extent) String() string {
	if !e.bounded {
		return "unbounded"
	}
	return strconv.FormatFloat(e.value, 'g', -1, 64)
}

// Proposal is the size a container offers a child.
type Proposal struct {
	Width, Height Extent
}

// Unspecified returns a proposal with no constraint in either dimension.
func Unspecified() Proposal { return Proposal{} }

// FixedWidth returns a proposal bounded horizontally at w and free vertically.
func FixedWidth(w float64) Proposal { return Proposal{Width: Bounded(w)} }

// ProposalFor bounds both dimensions to the given size.
func ProposalFor(s Size) Proposal {
	return Proposal{Width: Bounded(s.Width), Height: Bounded(s.Height)}
}

// WidthOf builds a proposal from a user supplied width where zero or a
// negative value means unbounded. CLI flags and scene files use this
// convention.
func WidthOf(w float64) Proposal {
	if w <= 0 || math.IsInf(w, 1) {
		return Proposal{}
	}
	return FixedWidth(w)
}
