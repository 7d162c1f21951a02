package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/observability"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// Runner executes pipeline stages with logging and observability hooks.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with different
// options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the charmbracelet default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the layout → render pipeline for a parsed input. When the
// input is a stored layout, the layout stage is skipped.
func (r *Runner) Execute(ctx context.Context, in Input, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{Scene: in.Scene}

	// Stage 1: Layout
	switch {
	case in.Layout != nil:
		result.Layout = *in.Layout
		opts.Logger.Debug("using stored layout", "strategy", in.Layout.Strategy, "items", len(in.Layout.Items))
	case in.Scene != nil:
		layoutStart := time.Now()
		l, err := r.Layout(ctx, in.Scene, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		result.Layout = l
		result.Stats.LayoutTime = time.Since(layoutStart)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "input has neither a scene nor a layout")
	}

	stats := LayoutStats(result.Layout)
	stats.LayoutTime = result.Stats.LayoutTime
	result.Stats = stats

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, result.Layout, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Layout computes a layout, emitting hooks and logging the outcome.
func (r *Runner) Layout(ctx context.Context, s *scene.Scene, opts Options) (scene.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return scene.Result{}, err
	}

	strategy := opts.LayoutConfig(s).Strategy
	observability.Pipeline().OnLayoutStart(ctx, strategy, len(s.Items))
	start := time.Now()

	res, err := ComputeLayout(s, opts)

	duration := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, strategy, duration, err)
	if err != nil {
		return scene.Result{}, err
	}

	opts.Logger.Info("computed layout",
		"strategy", res.Strategy,
		"items", len(res.Items),
		"tracks", res.TrackCount(),
		"size", fmt.Sprintf("%gx%g", res.Width, res.Height),
		"duration", duration)
	return res, nil
}

// Render renders artifacts, emitting hooks and logging the outcome.
func (r *Runner) Render(ctx context.Context, res scene.Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := Render(ctx, res, opts)

	duration := time.Since(start)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, duration, err)
	if err != nil {
		return nil, err
	}

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", duration)
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
