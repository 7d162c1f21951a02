package pipeline

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

func boxes(sizes ...[2]float64) []scene.ItemSpec {
	specs := make([]scene.ItemSpec, len(sizes))
	for i, s := range sizes {
		specs[i] = scene.ItemSpec{ID: fmt.Sprintf("b%d", i), Kind: scene.KindBox, Width: s[0], Height: s[1]}
	}
	return specs
}

func repeat(n int, size [2]float64) [][2]float64 {
	out := make([][2]float64, n)
	for i := range out {
		out[i] = size
	}
	return out
}

func tracks(r scene.Result) []int {
	out := make([]int, len(r.Items))
	for i, it := range r.Items {
		out[i] = it.Track
	}
	return out
}

func TestComputeLayout_Flow(t *testing.T) {
	s := &scene.Scene{
		Canvas: scene.Canvas{Width: 120, OriginX: 10, OriginY: 5},
		Layout: grid.Config{Strategy: "flow", Spacing: grid.Float(10)},
		Items:  boxes(repeat(5, [2]float64{50, 20})...),
	}

	r, err := ComputeLayout(s, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}

	if got, want := tracks(r), []int{0, 0, 1, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("tracks = %v, want %v", got, want)
	}
	if r.Width != 110 || r.Height != 80 {
		t.Errorf("size = %vx%v, want 110x80", r.Width, r.Height)
	}
	if r.Bounds != (scene.Box{X: 10, Y: 5, Width: 120, Height: 80}) {
		t.Errorf("Bounds = %+v", r.Bounds)
	}
	if it := r.Items[1]; it.X != 70 || it.Y != 5 {
		t.Errorf("item 1 at (%v,%v), want (70,5)", it.X, it.Y)
	}
	if it := r.Items[4]; it.X != 10 || it.Y != 65 {
		t.Errorf("item 4 at (%v,%v), want (10,65)", it.X, it.Y)
	}
	if r.Strategy != "flow" || r.Spacing != 10 || r.Anchor != "top-leading" {
		t.Errorf("describe = %q/%v/%q", r.Strategy, r.Spacing, r.Anchor)
	}
}

func TestComputeLayout_Unbounded(t *testing.T) {
	s := &scene.Scene{
		Canvas: scene.Canvas{Width: 120},
		Items:  boxes(repeat(5, [2]float64{50, 20})...),
	}

	r, err := ComputeLayout(s, Options{Unbounded: true, Spacing: grid.Float(10)})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.TrackCount(); got != 1 {
		t.Errorf("unbounded flow used %d rows, want 1", got)
	}
	if r.Width != 290 || r.Bounds.Width != 290 {
		t.Errorf("width = %v, bounds width = %v, want 290", r.Width, r.Bounds.Width)
	}
}

func TestComputeLayout_Columns(t *testing.T) {
	heights := [][2]float64{{10, 10}, {10, 20}, {10, 5}, {10, 5}, {10, 5}, {10, 5}}

	tests := map[string]struct {
		strategy string
		heights  []float64
		spread   float64
	}{
		"round robin": {"columns", []float64{20, 30}, 10},
		"balanced":    {"balanced", []float64{25, 25}, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := &scene.Scene{Canvas: scene.Canvas{Width: 100}, Items: boxes(heights...)}
			r, err := ComputeLayout(s, Options{Strategy: tt.strategy, Columns: 2})
			if err != nil {
				t.Fatal(err)
			}
			stats := LayoutStats(r)
			if !reflect.DeepEqual(stats.TrackHeights, tt.heights) {
				t.Errorf("TrackHeights = %v, want %v", stats.TrackHeights, tt.heights)
			}
			if stats.Spread != tt.spread {
				t.Errorf("Spread = %v, want %v", stats.Spread, tt.spread)
			}
			if stats.ItemCount != 6 || stats.TrackCount != 2 {
				t.Errorf("stats = %+v", stats)
			}
			if r.Columns != 2 || r.Width != 100 {
				t.Errorf("Columns/Width = %d/%v", r.Columns, r.Width)
			}
		})
	}
}

func TestComputeLayout_Errors(t *testing.T) {
	tests := map[string]struct {
		scene *scene.Scene
		opts  Options
		code  errors.Code
	}{
		"no scene": {
			code: errors.ErrCodeInvalidInput,
		},
		"unknown strategy": {
			scene: &scene.Scene{Layout: grid.Config{Strategy: "spiral"}},
			code:  errors.ErrCodeInvalidStrategy,
		},
		"negative columns in scene": {
			scene: &scene.Scene{Layout: grid.Config{Strategy: "columns", Columns: -2}},
			code:  errors.ErrCodeInvalidConfiguration,
		},
		"bad anchor in scene": {
			scene: &scene.Scene{Layout: grid.Config{Anchor: "nowhere"}},
			code:  errors.ErrCodeInvalidAnchor,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeLayout(tt.scene, tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("ComputeLayout() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestComputeLayout_EmptyScene(t *testing.T) {
	r, err := ComputeLayout(&scene.Scene{}, Options{Strategy: "balanced"})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Items) != 0 || r.Height != 0 {
		t.Errorf("empty layout = %+v", r)
	}
	if r.Width != DefaultWidth {
		t.Errorf("empty columns width = %v, want %v", r.Width, DefaultWidth)
	}
}

func TestComputeLayout_StrategyName(t *testing.T) {
	s := &scene.Scene{
		Canvas: scene.Canvas{Width: 100},
		Layout: grid.Config{Strategy: "columns", Columns: 2, Anchor: "center"},
		Items:  boxes(repeat(3, [2]float64{40, 20})...),
	}

	r, err := ComputeLayout(s, Options{})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if r.Strategy != grid.StrategyColumns {
		t.Errorf("Strategy = %q, want %q", r.Strategy, grid.StrategyColumns)
	}

	r, err = ComputeLayout(s, Options{Strategy: "centered", Anchor: "top-leading"})
	if err != nil {
		t.Fatalf("ComputeLayout() error = %v", err)
	}
	if r.Strategy != grid.StrategyCentered {
		t.Errorf("Strategy = %q, want %q", r.Strategy, grid.StrategyCentered)
	}
}
