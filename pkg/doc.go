// Package pkg provides the core libraries for adaptivegrid.
//
// # Overview
//
// Adaptivegrid places a list of items inside a container. Items only answer
// one question, "how big would you be if offered this much space?", and a
// layout turns the answers into positions. The pkg directory is organized
// into these areas:
//
//  1. [geom] - Points, sizes, rects, size proposals and anchors
//  2. [grid] - The layouts: flow-wrap rows and fixed, balanced or centered columns
//  3. [scene] - Scene files (TOML or JSON) and the serialized layout result
//  4. [render] - SVG, Graphviz (PNG/JPG/DOT), terminal and table output
//  5. [pipeline] - Orchestration (parse → layout → render) for the CLI and API
//  6. [observability] - Pipeline and HTTP hooks, with OpenTelemetry tracing
//  7. [errors] - Coded errors shared by every package
//
// # Architecture
//
// The typical data flow:
//
//	scene.toml / scene.json
//	         ↓
//	    [scene] package (decode, normalize, validate items)
//	         ↓
//	    [grid] package (measure under a proposal, place into bounds)
//	         ↓
//	    [scene.Result] (serializable placement, *.layout.json)
//	         ↓
//	    [render] package (SVG/PNG/JPG/DOT/TXT)
//
// # Quick Start
//
// Lay out five boxes in rows no wider than 120:
//
//	flow, _ := grid.NewFlowWrap(grid.WithSpacing(10))
//	items := grid.FixedItems(geom.Sz(50, 20), geom.Sz(50, 20), geom.Sz(50, 20))
//	p := geom.FixedWidth(120)
//
//	size := flow.Measure(items, p)
//	placements := flow.Place(items, geom.Rect{Size: size}, p)
//
// Or run the whole pipeline on a scene file:
//
//	in, _ := pipeline.Parse("gallery.toml")
//	result, _ := pipeline.NewRunner(logger).Execute(ctx, in, pipeline.Options{
//	    Strategy: grid.StrategyBalanced,
//	    Columns:  3,
//	    Formats:  []string{"svg", "png"},
//	})
//
// # Layouts
//
// [grid.FlowWrap] fills rows left to right and wraps when the next item would
// overflow the proposed width. Rows are as tall as their tallest item.
//
// [grid.Columns] splits the width into equal columns. Items go round-robin
// ("columns"), to the currently shortest column ("balanced"), or round-robin
// and centered within their column ("centered").
//
// Both measure with [grid.Layout.Measure] and place with
// [grid.Layout.Place]; neither ever fails once constructed.
//
// # Testing
//
// Run tests:
//
//	go test ./...                    # All tests
//	go test ./pkg/grid/...           # Specific package
//	go test -run Example ./pkg/...   # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/geom
// [grid]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/grid
// [scene]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/scene
// [scene.Result]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/scene#Result
// [render]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/errors
// [grid.FlowWrap]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/grid#FlowWrap
// [grid.Columns]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/grid#Columns
// [grid.Layout.Measure]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/grid#Layout
// [grid.Layout.Place]: https://pkg.go.dev/github.com/matzehuels/adaptivegrid/pkg/grid#Layout
package pkg
