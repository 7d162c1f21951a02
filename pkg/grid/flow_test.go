package grid

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

func repeat(n int, s geom.Size) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Fixed(s)
	}
	return items
}

func mustFlow(t *testing.T, opts ...Option) *FlowWrap {
	t.Helper()
	f, err := NewFlowWrap(opts...)
	if err != nil {
		t.Fatalf("NewFlowWrap() error = %v", err)
	}
	return f
}

func TestFlowWrap_FiveItemsThreeRows(t *testing.T) {
	f := mustFlow(t, WithSpacing(10))
	items := repeat(5, geom.Sz(50, 20))
	p := geom.FixedWidth(120)

	if got, want := f.Measure(items, p), geom.Sz(110, 80); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}

	ps := f.Place(items, geom.R(0, 0, 120, 80), p)
	if got, want := Tracks(ps), [][]int{{0, 1}, {2, 3}, {4}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tracks() = %v, want %v", got, want)
	}

	wantAt := []geom.Point{{X: 0, Y: 0}, {X: 60, Y: 0}, {X: 0, Y: 30}, {X: 60, Y: 30}, {X: 0, Y: 60}}
	for i, p := range ps {
		if p.Index != i {
			t.Errorf("placement %d has Index %d", i, p.Index)
		}
		if p.At != wantAt[i] {
			t.Errorf("item %d At = %+v, want %+v", i, p.At, wantAt[i])
		}
		if p.Anchor != geom.TopLeading {
			t.Errorf("item %d Anchor = %v, want top-leading", i, p.Anchor)
		}
	}
}

func TestFlowWrap_Measure(t *testing.T) {
	type tc struct {
		sizes   []geom.Size
		spacing float64
		p       geom.Proposal
		want    geom.Size
	}

	tests := map[string]tc{
		"empty": {
			sizes: nil,
			p:     geom.FixedWidth(100),
			want:  geom.Size{},
		},
		"single item": {
			sizes: []geom.Size{{Width: 30, Height: 12}},
			p:     geom.FixedWidth(100),
			want:  geom.Sz(30, 12),
		},
		"unbounded never wraps": {
			sizes:   []geom.Size{{Width: 50, Height: 20}, {Width: 50, Height: 20}, {Width: 50, Height: 20}, {Width: 50, Height: 20}, {Width: 50, Height: 20}},
			spacing: 10,
			p:       geom.Unspecified(),
			want:    geom.Sz(290, 20),
		},
		"exact fit stays on row": {
			sizes:   []geom.Size{{Width: 50, Height: 10}, {Width: 50, Height: 30}, {Width: 50, Height: 20}},
			spacing: 10,
			p:       geom.FixedWidth(110),
			want:    geom.Sz(110, 60),
		},
		"row height is tallest item": {
			sizes: []geom.Size{{Width: 40, Height: 5}, {Width: 40, Height: 25}, {Width: 40, Height: 10}, {Width: 40, Height: 15}},
			p:     geom.FixedWidth(80),
			want:  geom.Sz(80, 40),
		},
		"oversized item stands alone": {
			sizes: []geom.Size{{Width: 30, Height: 10}, {Width: 150, Height: 10}, {Width: 30, Height: 10}},
			p:     geom.FixedWidth(100),
			want:  geom.Sz(150, 30),
		},
		"zero width wraps everything": {
			sizes:   []geom.Size{{Width: 10, Height: 10}, {Width: 10, Height: 10}},
			spacing: 2,
			p:       geom.FixedWidth(0),
			want:    geom.Sz(10, 22),
		},
		"negative sizes are clamped": {
			sizes: []geom.Size{{Width: -10, Height: 5}, {Width: 20, Height: -5}},
			p:     geom.FixedWidth(100),
			want:  geom.Sz(20, 5),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := mustFlow(t, WithSpacing(tt.spacing))
			if got := f.Measure(FixedItems(tt.sizes...), tt.p); got != tt.want {
				t.Errorf("Measure() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFlowWrap_OversizedItemRows(t *testing.T) {
	f := mustFlow(t, WithSpacing(0))
	p := geom.FixedWidth(100)

	tests := map[string]struct {
		sizes []geom.Size
		want  [][]int
	}{
		"middle":  {[]geom.Size{{Width: 30, Height: 10}, {Width: 150, Height: 10}, {Width: 30, Height: 10}}, [][]int{{0}, {1}, {2}}},
		"first":   {[]geom.Size{{Width: 150, Height: 10}, {Width: 30, Height: 10}, {Width: 30, Height: 10}}, [][]int{{0}, {1, 2}}},
		"last":    {[]geom.Size{{Width: 30, Height: 10}, {Width: 30, Height: 10}, {Width: 150, Height: 10}}, [][]int{{0, 1}, {2}}},
		"all big": {[]geom.Size{{Width: 150, Height: 10}, {Width: 150, Height: 10}}, [][]int{{0}, {1}}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ps := f.Place(FixedItems(tt.sizes...), geom.R(0, 0, 100, 100), p)
			if got := Tracks(ps); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tracks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFlowWrap_PlaceAnchors(t *testing.T) {
	items := FixedItems(geom.Sz(50, 10), geom.Sz(50, 30))
	bounds := geom.R(5, 7, 200, 100)
	p := geom.FixedWidth(200)

	tests := map[string]struct {
		anchor geom.Anchor
		at     []geom.Point
		frames []geom.Rect
	}{
		"top-leading": {
			anchor: geom.TopLeading,
			at:     []geom.Point{{X: 5, Y: 7}, {X: 55, Y: 7}},
			frames: []geom.Rect{geom.R(5, 7, 50, 10), geom.R(55, 7, 50, 30)},
		},
		"center": {
			anchor: geom.Center,
			at:     []geom.Point{{X: 30, Y: 22}, {X: 80, Y: 22}},
			frames: []geom.Rect{geom.R(5, 17, 50, 10), geom.R(55, 7, 50, 30)},
		},
		"bottom": {
			anchor: geom.Bottom,
			at:     []geom.Point{{X: 30, Y: 37}, {X: 80, Y: 37}},
			frames: []geom.Rect{geom.R(5, 27, 50, 10), geom.R(55, 7, 50, 30)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := mustFlow(t, WithSpacing(0), WithAnchor(tt.anchor))
			ps := f.Place(items, bounds, p)
			for i, pl := range ps {
				if pl.At != tt.at[i] {
					t.Errorf("item %d At = %+v, want %+v", i, pl.At, tt.at[i])
				}
				if got := pl.Frame(); got != tt.frames[i] {
					t.Errorf("item %d Frame() = %+v, want %+v", i, got, tt.frames[i])
				}
			}
		})
	}
}

func TestFlowWrap_MinItemWidth(t *testing.T) {
	f := mustFlow(t, WithSpacing(0), WithMinItemWidth(40))
	items := repeat(3, geom.Sz(10, 10))
	p := geom.FixedWidth(100)

	if got, want := f.Measure(items, p), geom.Sz(80, 20); got != want {
		t.Errorf("Measure() = %+v, want %+v", got, want)
	}

	ps := f.Place(items, geom.R(0, 0, 100, 20), p)
	if ps[1].At.X != 40 {
		t.Errorf("item 1 x = %v, want 40", ps[1].At.X)
	}
	if ps[1].Size != geom.Sz(10, 10) {
		t.Errorf("item 1 Size = %+v, want intrinsic size", ps[1].Size)
	}
}

func TestFlowWrap_ProposalReachesItems(t *testing.T) {
	f := mustFlow(t)
	p := geom.FixedWidth(64)

	var seen []geom.Proposal
	item := ItemFunc(func(got geom.Proposal) geom.Size {
		seen = append(seen, got)
		return geom.Sz(10, 10)
	})

	f.Measure([]Item{item, item}, p)
	ps := f.Place([]Item{item}, geom.R(0, 0, 64, 10), p)

	if len(seen) != 3 {
		t.Fatalf("items measured %d times, want 3", len(seen))
	}
	for i, got := range seen {
		if got != p {
			t.Errorf("call %d proposal = %+v, want %+v", i, got, p)
		}
	}
	if ps[0].Proposal != p {
		t.Errorf("Placement.Proposal = %+v, want %+v", ps[0].Proposal, p)
	}
}

func TestFlowWrap_RowsFitProposal(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(30)
		limit := 40 + rng.Float64()*200
		spacing := float64(rng.IntN(12))
		sizes := make([]geom.Size, n)
		for i := range sizes {
			sizes[i] = geom.Sz(1+rng.Float64()*120, 1+rng.Float64()*40)
		}

		f := mustFlow(t, WithSpacing(spacing))
		ps := f.Place(FixedItems(sizes...), geom.R(0, 0, limit, 0), geom.FixedWidth(limit))
		if len(ps) != n {
			t.Fatalf("trial %d: %d placements for %d items", trial, len(ps), n)
		}

		for r, row := range Tracks(ps) {
			if len(row) == 0 {
				t.Fatalf("trial %d: row %d is empty", trial, r)
			}
			first, last := ps[row[0]].Frame(), ps[row[len(row)-1]].Frame()
			width := last.MaxX() - first.MinX()
			if len(row) > 1 && width > limit+1e-9 {
				t.Errorf("trial %d: row %d width %v exceeds %v", trial, r, width, limit)
			}
			if len(row) == 1 && width > limit && sizes[row[0]].Width <= limit {
				t.Errorf("trial %d: lone item in row %d overflows without being oversized", trial, r)
			}
		}
	}
}

func TestFlowWrap_Idempotent(t *testing.T) {
	f := mustFlow(t, WithSpacing(4), WithAnchor(geom.Center))
	items := FixedItems(geom.Sz(30, 10), geom.Sz(70, 20), geom.Sz(25, 5), geom.Sz(90, 40))
	p := geom.FixedWidth(120)
	bounds := geom.R(0, 0, 120, 100)

	if a, b := f.Measure(items, p), f.Measure(items, p); a != b {
		t.Errorf("Measure() not stable: %+v then %+v", a, b)
	}
	if a, b := f.Place(items, bounds, p), f.Place(items, bounds, p); !reflect.DeepEqual(a, b) {
		t.Errorf("Place() not stable:\n%+v\n%+v", a, b)
	}
}

func TestFlowWrap_MeasureMatchesPlacedBounds(t *testing.T) {
	f := mustFlow(t, WithSpacing(6))
	items := repeat(7, geom.Sz(33, 12))
	p := geom.FixedWidth(100)

	size := f.Measure(items, p)
	got := Bounds(f.Place(items, geom.R(0, 0, 100, size.Height), p))
	if got.Size != size {
		t.Errorf("placed bounds %+v, measured %+v", got.Size, size)
	}
}

func TestFlowWrap_InvalidOptions(t *testing.T) {
	tests := map[string][]Option{
		"negative spacing":   {WithSpacing(-1)},
		"nan anchor":         {WithAnchor(geom.Anchor{X: nan(), Y: 0})},
		"negative min width": {WithMinItemWidth(-5)},
	}

	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFlowWrap(opts...)
			if !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
				t.Errorf("NewFlowWrap() error = %v, want %s", err, errors.ErrCodeInvalidConfiguration)
			}
		})
	}
}

func TestFlowWrap_Defaults(t *testing.T) {
	f := mustFlow(t)
	if f.Spacing() != DefaultFlowSpacing {
		t.Errorf("Spacing() = %v, want %v", f.Spacing(), DefaultFlowSpacing)
	}
	if f.Anchor() != geom.TopLeading {
		t.Errorf("Anchor() = %v, want top-leading", f.Anchor())
	}
	if f.String() != StrategyFlow {
		t.Errorf("String() = %q", f.String())
	}
	if ps := f.Place(nil, geom.R(0, 0, 10, 10), geom.FixedWidth(10)); len(ps) != 0 {
		t.Errorf("Place(nil) = %v, want empty", ps)
	}
}
