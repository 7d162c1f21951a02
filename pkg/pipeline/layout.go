package pipeline

import (
	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout measures and places the scene's items.
//
// The layout is proposed the container width from [Options.ContainerWidth].
// Items are placed into bounds anchored at the canvas origin, as wide as the
// container (or the measured width when unbounded) and as tall as the
// measured height or the canvas height, whichever is larger.
func ComputeLayout(s *scene.Scene, opts Options) (scene.Result, error) {
	if s == nil {
		return scene.Result{}, errors.New(errors.ErrCodeInvalidInput, "no scene to lay out")
	}
	l, err := grid.New(opts.LayoutConfig(s))
	if err != nil {
		return scene.Result{}, err
	}

	items := s.GridItems()
	width := opts.ContainerWidth(s)
	p := geom.Proposal{Width: width}

	size := l.Measure(items, p)
	bounds := geom.Rect{
		Origin: s.Canvas.Origin(),
		Size:   geom.Sz(width.Or(size.Width), max(size.Height, s.Canvas.Height)),
	}
	placements := l.Place(items, bounds, p)

	return scene.NewResult(describe(l), size, bounds, s.Items, placements)
}

// describe records the parameters of a constructed layout.
func describe(l grid.Layout) scene.Describe {
	switch l := l.(type) {
	case *grid.FlowWrap:
		return scene.Describe{Strategy: l.String(), Spacing: l.Spacing(), Anchor: l.Anchor()}
	case *grid.Columns:
		return scene.Describe{Strategy: l.String(), Columns: l.Count(), Spacing: l.Spacing(), Anchor: l.Anchor()}
	default:
		return scene.Describe{Strategy: "custom", Anchor: geom.TopLeading}
	}
}

// LayoutStats summarizes the shape of a computed layout.
func LayoutStats(r scene.Result) Stats {
	heights := r.TrackHeights()
	return Stats{
		ItemCount:    len(r.Items),
		TrackCount:   r.TrackCount(),
		TrackHeights: heights,
		Spread:       grid.Spread(heights),
	}
}
