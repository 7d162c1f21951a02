package render

import "github.com/matzehuels/adaptivegrid/pkg/scene"

// twoColumns is a 100x40 two-column result: "a" over "c" on the left, a
// tall red "b" on the right.
func twoColumns() scene.Result {
	return scene.Result{
		Strategy: "columns",
		Columns:  2,
		Anchor:   "top-leading",
		Width:    100,
		Height:   40,
		Bounds:   scene.Box{Width: 100, Height: 40},
		Items: []scene.Placed{
			{ID: "a", Label: "alpha", Kind: "box", Track: 0, X: 0, Y: 0, Width: 50, Height: 20},
			{ID: "b", Label: "beta", Kind: "box", Color: "#ff0000", Track: 1, X: 50, Y: 0, Width: 50, Height: 40},
			{ID: "c", Label: "<c&d>", Kind: "text", Track: 0, X: 0, Y: 20, Width: 50, Height: 20},
		},
	}
}

// threeRows is a flow result with one item per row.
func threeRows() scene.Result {
	return scene.Result{
		Strategy: "flow",
		Spacing:  6,
		Anchor:   "top-leading",
		Width:    30,
		Height:   42,
		Bounds:   scene.Box{Width: 30, Height: 42},
		Items: []scene.Placed{
			{ID: "r0", Label: "r0", Track: 0, X: 0, Y: 0, Width: 30, Height: 10},
			{ID: "r1", Label: "r1", Track: 1, X: 0, Y: 16, Width: 30, Height: 10},
			{ID: "r2", Label: "r2", Track: 2, X: 0, Y: 32, Width: 30, Height: 10},
		},
	}
}
