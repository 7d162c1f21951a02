package geom

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
)

// Anchor is a fractional point inside a box: (0, 0) is the top-leading
// corner and (1, 1) the bottom-trailing one.
type Anchor struct {
	X, Y float64
}

// Named anchors.
var (
	TopLeading     = Anchor{0, 0}
	Top            = Anchor{0.5, 0}
	TopTrailing    = Anchor{1, 0}
	Leading        = Anchor{0, 0.5}
	Center         = Anchor{0.5, 0.5}
	Trailing       = Anchor{1, 0.5}
	BottomLeading  = Anchor{0, 1}
	Bottom         = Anchor{0.5, 1}
	BottomTrailing = Anchor{1, 1}
)

var anchorNames = map[string]Anchor{
	"top-leading":     TopLeading,
	"top":             Top,
	"top-trailing":    TopTrailing,
	"leading":         Leading,
	"center":          Center,
	"trailing":        Trailing,
	"bottom-leading":  BottomLeading,
	"bottom":          Bottom,
	"bottom-trailing": BottomTrailing,
}

// AnchorNames lists the accepted anchor names in reading order.
var AnchorNames = []string{
	"top-leading", "top", "top-trailing",
	"leading", "center", "trailing",
	"bottom-leading", "bottom", "bottom-trailing",
}

// ParseAnchor resolves a named anchor ("center", "top-leading", ...) or an
// explicit "x,y" pair. The empty string yields ok == false with a nil error
// so callers can fall back to their own default.
func ParseAnchor(s string) (a Anchor, ok bool, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Anchor{}, false, nil
	}
	if a, found := anchorNames[s]; found {
		return a, true, nil
	}
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Anchor{}, false, errors.New(errors.ErrCodeInvalidAnchor, "unknown anchor %q", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return Anchor{}, false, errors.New(errors.ErrCodeInvalidAnchor, "anchor %q is not an x,y pair", s)
	}
	a = Anchor{X: x, Y: y}
	if !a.IsFinite() {
		return Anchor{}, false, errors.New(errors.ErrCodeInvalidAnchor, "anchor %q must be finite", s)
	}
	return a, true, nil
}

// IsFinite reports whether both coordinates are real numbers.
func (a Anchor) IsFinite() bool {
	return !math.IsNaN(a.X) && !math.IsNaN(a.Y) && !math.IsInf(a.X, 0) && !math.IsInf(a.Y, 0)
}

// String returns the anchor's name when it has one, otherwise "x,y".
func (a Anchor) String() string {
	for _, name := range AnchorNames {
		if anchorNames[name] == a {
			return name
		}
	}
	return strconv.FormatFloat(a.X, 'g', -1, 64) + "," + strconv.FormatFloat(a.Y, 'g', -1, 64)
}

// Resolve returns the point inside cell that the anchor designates.
func (a Anchor) Resolve(cell Rect) Point {
	return Point{
		X: cell.Origin.X + a.X*cell.Size.Width,
		Y: cell.Origin.Y + a.Y*cell.Size.Height,
	}
}

// Frame returns the box of an item of the given size whose anchor sits at p.
func (a Anchor) Frame(p Point, size Size) Rect {
	return Rect{
		Origin: Point{X: p.X - a.X*size.Width, Y: p.Y - a.Y*size.Height},
		Size:   size,
	}
}
