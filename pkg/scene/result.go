package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
)

// Result is the serialized outcome of laying out a scene.
type Result struct {
	Strategy string  `json:"strategy"`
	Columns  int     `json:"columns,omitempty"`
	Spacing  float64 `json:"spacing"`
	Anchor   string  `json:"anchor"`

	// Width and Height are the measured size of the layout.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Bounds is the container the items were placed into.
	Bounds Box `json:"bounds"`

	Items []Placed `json:"items"`
}

// Box is a serialized rectangle.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect converts the box back to geometry.
func (b Box) Rect() geom.Rect { return geom.R(b.X, b.Y, b.Width, b.Height) }

// BoxOf converts a rectangle to its serialized form.
func BoxOf(r geom.Rect) Box {
	return Box{X: r.MinX(), Y: r.MinY(), Width: r.Width(), Height: r.Height()}
}

// Placed is one item in a Result. X, Y, Width and Height describe the item's
// frame; AtX/AtY and AnchorX/AnchorY are the raw placement.
type Placed struct {
	ID      string  `json:"id"`
	Label   string  `json:"label"`
	Kind    string  `json:"kind,omitempty"`
	Color   string  `json:"color,omitempty"`
	Track   int     `json:"track"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	AtX     float64 `json:"at_x"`
	AtY     float64 `json:"at_y"`
	AnchorX float64 `json:"anchor_x"`
	AnchorY float64 `json:"anchor_y"`
}

// Frame returns the item's box.
func (p Placed) Frame() geom.Rect { return geom.R(p.X, p.Y, p.Width, p.Height) }

// Describe carries the layout parameters a Result records about itself.
type Describe struct {
	Strategy string
	Columns  int
	Spacing  float64
	Anchor   geom.Anchor
}

// NewResult pairs placements with the specs they came from. specs and ps
// must be index-aligned.
func NewResult(d Describe, size geom.Size, bounds geom.Rect, specs []ItemSpec, ps []grid.Placement) (Result, error) {
	if len(specs) != len(ps) {
		return Result{}, errors.New(errors.ErrCodeInternal, "%d placements for %d items", len(ps), len(specs))
	}
	r := Result{
		Strategy: d.Strategy,
		Columns:  d.Columns,
		Spacing:  d.Spacing,
		Anchor:   d.Anchor.String(),
		Width:    size.Width,
		Height:   size.Height,
		Bounds:   BoxOf(bounds),
		Items:    make([]Placed, len(ps)),
	}
	for i, p := range ps {
		spec := specs[p.Index]
		f := p.Frame()
		r.Items[i] = Placed{
			ID:      spec.ID,
			Label:   spec.Label(),
			Kind:    spec.Kind,
			Color:   spec.Color,
			Track:   p.Track,
			X:       f.MinX(),
			Y:       f.MinY(),
			Width:   f.Width(),
			Height:  f.Height(),
			AtX:     p.At.X,
			AtY:     p.At.Y,
			AnchorX: p.Anchor.X,
			AnchorY: p.Anchor.Y,
		}
	}
	return r, nil
}

// TrackCount returns the number of rows or columns in use.
func (r Result) TrackCount() int {
	n := 0
	for _, it := range r.Items {
		n = max(n, it.Track+1)
	}
	return n
}

// TrackHeights returns how far each track reaches below the top of the
// bounds.
func (r Result) TrackHeights() []float64 {
	hs := make([]float64, r.TrackCount())
	for _, it := range r.Items {
		hs[it.Track] = max(hs[it.Track], it.Y+it.Height-r.Bounds.Y)
	}
	return hs
}

// MarshalResult serializes a Result to pretty-printed JSON bytes.
func MarshalResult(r Result) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// UnmarshalResult deserializes JSON bytes into a Result.
func UnmarshalResult(data []byte) (Result, error) {
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "unmarshal result")
	}
	if r.Strategy == "" {
		return Result{}, errors.New(errors.ErrCodeInvalidInput, "result has no strategy")
	}
	for i, it := range r.Items {
		if it.Track < 0 {
			return Result{}, errors.New(errors.ErrCodeInvalidInput, "item %d has negative track", i)
		}
	}
	return r, nil
}

// WriteResultFile writes a Result to a JSON file.
func WriteResultFile(r Result, path string) error {
	data, err := MarshalResult(r)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadResultFile reads a Result from a JSON file.
func ReadResultFile(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalResult(data)
}
