package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
)

// File formats understood by Read.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// Item kinds.
const (
	KindBox    = "box"
	KindAspect = "aspect"
	KindText   = "text"
)

// Text measurement defaults, in user units.
const (
	DefaultCharWidth  = 8.0
	DefaultLineHeight = 16.0
)

// Scene is a layout input: where to lay out, how, and what.
type Scene struct {
	Canvas Canvas      `toml:"canvas" json:"canvas"`
	Layout grid.Config `toml:"layout" json:"layout"`
	Items  []ItemSpec  `toml:"items" json:"items"`
}

// Canvas describes the container. A zero width means unbounded.
type Canvas struct {
	Width   float64 `toml:"width" json:"width,omitempty"`
	Height  float64 `toml:"height" json:"height,omitempty"`
	OriginX float64 `toml:"origin_x" json:"origin_x,omitempty"`
	OriginY float64 `toml:"origin_y" json:"origin_y,omitempty"`
}

// Origin returns the canvas origin as a point.
func (c Canvas) Origin() geom.Point { return geom.Pt(c.OriginX, c.OriginY) }

// ItemSpec is one item as written in a scene file.
type ItemSpec struct {
	ID         string  `toml:"id" json:"id"`
	Kind       string  `toml:"kind" json:"kind,omitempty"`
	Width      float64 `toml:"width" json:"width,omitempty"`
	Height     float64 `toml:"height" json:"height,omitempty"`
	Aspect     float64 `toml:"aspect" json:"aspect,omitempty"`
	Text       string  `toml:"text" json:"text,omitempty"`
	CharWidth  float64 `toml:"char_width" json:"char_width,omitempty"`
	LineHeight float64 `toml:"line_height" json:"line_height,omitempty"`
	Color      string  `toml:"color" json:"color,omitempty"`
}

// Label is the text shown for the item by renderers.
func (s ItemSpec) Label() string {
	if s.Text != "" {
		return s.Text
	}
	return s.ID
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "cannot tell scene format from %q (want .toml or .json)", path)
	}
}

// ReadFile loads, normalizes and validates a scene file.
func ReadFile(path string) (*Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open scene %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "%s", path)
	}
	return s, nil
}

// Read decodes a scene in the given format, then normalizes and validates it.
// Unknown keys are rejected in both formats.
func Read(r io.Reader, format string) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode json")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported scene format %q", format)
	}

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Normalize fills in item ids and kinds that the file left out.
func (s *Scene) Normalize() {
	for i := range s.Items {
		it := &s.Items[i]
		if it.ID == "" {
			it.ID = fmt.Sprintf("item-%d", i+1)
		}
		if it.Kind == "" {
			switch {
			case it.Text != "" && it.Width == 0:
				it.Kind = KindText
			case it.Aspect > 0:
				it.Kind = KindAspect
			default:
				it.Kind = KindBox
			}
		}
		it.Kind = strings.ToLower(it.Kind)
	}
}

// Validate checks the canvas and every item. Apart from the column count
// cap, layout configuration is validated when the layout is built.
func (s *Scene) Validate() error {
	if err := errors.ValidateWidth(s.Canvas.Width); err != nil {
		return err
	}
	if s.Layout.Columns != 0 {
		if err := errors.ValidateColumns(s.Layout.Columns); err != nil {
			return err
		}
	}
	if s.Canvas.Height < 0 || math.IsNaN(s.Canvas.Height) {
		return errors.New(errors.ErrCodeInvalidInput, "canvas height must be >= 0")
	}

	seen := make(map[string]int, len(s.Items))
	for i, it := range s.Items {
		if err := errors.ValidateItemID(it.ID); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidItem, err, "item %d", i+1)
		}
		if j, dup := seen[it.ID]; dup {
			return errors.New(errors.ErrCodeInvalidItem, "items %d and %d share id %q", j+1, i+1, it.ID)
		}
		seen[it.ID] = i
		if err := it.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidItem, err, "item %q", it.ID)
		}
	}
	return nil
}

func (s ItemSpec) validate() error {
	for name, v := range map[string]float64{
		"width": s.Width, "height": s.Height, "aspect": s.Aspect,
		"char_width": s.CharWidth, "line_height": s.LineHeight,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return errors.New(errors.ErrCodeInvalidItem, "%s must be a finite value >= 0", name)
		}
	}
	switch s.Kind {
	case KindBox:
		return nil
	case KindAspect:
		if s.Width <= 0 {
			return errors.New(errors.ErrCodeInvalidItem, "aspect items need a width")
		}
		if s.Aspect <= 0 && s.Height <= 0 {
			return errors.New(errors.ErrCodeInvalidItem, "aspect items need an aspect or a height")
		}
		return nil
	case KindText:
		if strings.TrimSpace(s.Text) == "" {
			return errors.New(errors.ErrCodeInvalidItem, "text items need text")
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidItem, "unknown kind %q", s.Kind)
	}
}

// GridItems converts the specs into measurable grid items, in order.
func (s *Scene) GridItems() []grid.Item {
	items := make([]grid.Item, len(s.Items))
	for i, spec := range s.Items {
		items[i] = spec.Item()
	}
	return items
}

// Item returns the measurable item for this spec.
func (s ItemSpec) Item() grid.Item {
	switch s.Kind {
	case KindAspect:
		ratio := s.Aspect
		if ratio <= 0 {
			ratio = s.Width / s.Height
		}
		return aspectItem{width: s.Width, ratio: ratio}
	case KindText:
		return textItem{
			text:       s.Text,
			charWidth:  orDefault(s.CharWidth, DefaultCharWidth),
			lineHeight: orDefault(s.LineHeight, DefaultLineHeight),
		}
	default:
		return grid.Fixed(geom.Sz(s.Width, s.Height))
	}
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}
