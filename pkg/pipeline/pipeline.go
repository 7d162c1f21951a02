// Package pipeline provides the layout pipeline shared by the CLI and the
// HTTP server.
//
// This package implements the complete parse → layout → render pipeline. By
// centralizing this logic, the CLI, the preview TUI and the API resolve
// defaults and overrides the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read a scene file, or a previously computed layout
//  2. Layout: Measure and place the scene's items with the chosen strategy
//  3. Render: Generate output in various formats (JSON, SVG, DOT, PNG, JPG, TXT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Overrides
//
// A scene file carries its own [layout] section and canvas. Non-zero
// [Options] fields override it, so a CLI flag always beats the file:
//
//	runner := pipeline.NewRunner(logger)
//	in, err := pipeline.Parse("gallery.toml")
//	result, err := runner.Execute(ctx, in, pipeline.Options{
//	    Strategy: "balanced",
//	    Columns:  4,
//	    Formats:  []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/render"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Preview
// =============================================================================

const (
	// DefaultStrategy is used when neither the scene nor the options name one.
	DefaultStrategy = grid.StrategyFlow

	// DefaultColumns is the column count for columnar strategies when none
	// is given.
	DefaultColumns = 3

	// DefaultWidth is the container width when neither the scene canvas nor
	// the options set one.
	DefaultWidth = 800.0

	// DefaultStyle is the default SVG style.
	DefaultStyle = render.StyleSimple
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatPNG  = "png"
	FormatJPG  = "jpg"
	FormatTXT  = "txt"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatDOT:  true,
	FormatPNG:  true,
	FormatJPG:  true,
	FormatTXT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	render.StyleSimple:  true,
	render.StyleOutline: true,
}

// FormatNames returns the supported formats in a stable order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options. Zero values defer to the scene file.
	Strategy     string   `json:"strategy,omitempty"`
	Columns      int      `json:"columns,omitempty"`
	Spacing      *float64 `json:"spacing,omitempty"`
	Anchor       string   `json:"anchor,omitempty"`
	MinItemWidth float64  `json:"min_item_width,omitempty"`
	Width        float64  `json:"width,omitempty"`
	Unbounded    bool     `json:"unbounded,omitempty"` // Lay out without a width limit

	// Render options
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Guides      bool     `json:"guides,omitempty"`
	Padding     *float64 `json:"padding,omitempty"`
	Background  string   `json:"background,omitempty"`
	TermColumns int      `json:"term_columns,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"` // Overrides the runner's logger for one run

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the parsed input. It is nil when the run started from a
	// stored layout.
	Scene *scene.Scene

	// Layout is the computed placement.
	Layout scene.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and shape information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ItemCount    int
	TrackCount   int
	TrackHeights []float64
	Spread       float64 // max - min of TrackHeights
	LayoutTime   time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: %s)", style, strings.Join(render.StyleNames, ", "))
	}
	return nil
}

// ValidateStrategy checks that a strategy name is known. Empty is valid and
// defers to the scene.
func ValidateStrategy(strategy string) error {
	if strategy == "" || slices.Contains(grid.Strategies, strings.ToLower(strategy)) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidStrategy, "invalid strategy: %q (must be one of: %s)", strategy, strings.Join(grid.Strategies, ", "))
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the layout overrides. Values that can only be
// checked against the scene (a columnar strategy without columns, say) are
// reported by [ComputeLayout].
func (o *Options) ValidateForLayout() error {
	if err := ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	if o.Columns != 0 {
		if err := errors.ValidateColumns(o.Columns); err != nil {
			return err
		}
	}
	if o.Spacing != nil {
		if err := errors.ValidateSpacing(*o.Spacing); err != nil {
			return err
		}
	}
	if _, _, err := geom.ParseAnchor(o.Anchor); err != nil {
		return err
	}
	if o.MinItemWidth < 0 {
		return errors.New(errors.ErrCodeInvalidConfiguration, "min item width must be >= 0, got %g", o.MinItemWidth)
	}
	return errors.ValidateWidth(o.Width)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.TermColumns <= 0 {
		o.TermColumns = render.DefaultTermColumns
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// LayoutConfig merges the scene's layout section with the overrides.
func (o *Options) LayoutConfig(s *scene.Scene) grid.Config {
	var cfg grid.Config
	if s != nil {
		cfg = s.Layout
	}
	if o.Strategy != "" {
		cfg.Strategy = o.Strategy
	}
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultStrategy
	}
	if o.Columns != 0 {
		cfg.Columns = o.Columns
	}
	if cfg.Columns == 0 && cfg.IsColumnar() {
		cfg.Columns = DefaultColumns
	}
	if o.Spacing != nil {
		cfg.Spacing = o.Spacing
	}
	if o.Anchor != "" {
		cfg.Anchor = o.Anchor
	}
	if o.MinItemWidth != 0 {
		cfg.MinItemWidth = o.MinItemWidth
	}
	return cfg
}

// ContainerWidth resolves the width the layout is proposed: the override,
// then the scene canvas, then [DefaultWidth]. Unbounded wins over all of them.
func (o *Options) ContainerWidth(s *scene.Scene) geom.Extent {
	switch {
	case o.Unbounded:
		return geom.Unbounded()
	case o.Width > 0:
		return geom.Bounded(o.Width)
	case s != nil && s.Canvas.Width > 0:
		return geom.Bounded(s.Canvas.Width)
	default:
		return geom.Bounded(DefaultWidth)
	}
}

// SVGOptions translates the render options for [render.RenderSVG].
func (o *Options) SVGOptions() ([]render.SVGOption, error) {
	style, err := render.StyleByName(o.Style)
	if err != nil {
		return nil, err
	}
	opts := []render.SVGOption{render.WithStyle(style)}
	if o.Guides {
		opts = append(opts, render.WithGuides())
	}
	if o.Padding != nil {
		opts = append(opts, render.WithPadding(*o.Padding))
	}
	if o.Background != "" {
		opts = append(opts, render.WithBackground(o.Background))
	}
	return opts, nil
}
