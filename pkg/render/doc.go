// Package render turns a computed layout into pictures.
//
// # Overview
//
// Every renderer consumes a [scene.Result], the serialized outcome of a
// layout pass, so layouts can be rendered long after they were computed:
//
//   - [RenderSVG] hand-assembles an SVG document, one rect and label per item
//   - [ToDOT] and [RenderGraphviz] export the placement as a pinned-position
//     Graphviz graph and rasterize it to PNG or JPG (or Graphviz's own SVG)
//   - [RenderTerminal] and [RenderText] draw a scaled character canvas
//   - [RenderTable] prints a placement table
//
// # SVG Styles
//
// The SVG output is drawn by a [Style]. Two are built in:
//
//   - "simple": filled boxes coloured by track, labels centered
//   - "outline": stroked boxes without fill, for overlaying on other artwork
//
// Items that set a color in the scene file keep it in both styles.
//
// # Graphviz
//
// [ToDOT] pins every node with pos="x,y!" and disables translation, so the
// neato engine reproduces the computed layout instead of inventing its own.
// [RenderGraphviz] runs Graphviz in-process via [github.com/goccy/go-graphviz];
// no external binaries are needed.
//
//	dot := render.ToDOT(result)
//	png, err := render.RenderGraphviz(ctx, dot, render.FormatPNG)
//
// [scene.Result]: github.com/matzehuels/adaptivegrid/pkg/scene.Result
package render
