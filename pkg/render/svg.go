package render

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/adaptivegrid/pkg/geom"
	"github.com/matzehuels/adaptivegrid/pkg/grid"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// DefaultPadding is the margin drawn around the layout bounds.
const DefaultPadding = 8.0

const itemInteractionCSS = `
    .item { transition: stroke-width 0.2s ease; }
    .item:hover { stroke-width: 3; }
    .guide { stroke: #999999; stroke-width: 0.5; stroke-dasharray: 4 3; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style      Style
	guides     bool
	padding    float64
	background string
}

func WithStyle(s Style) SVGOption       { return func(r *svgRenderer) { r.style = s } }
func WithGuides() SVGOption             { return func(r *svgRenderer) { r.guides = true } }
func WithPadding(p float64) SVGOption   { return func(r *svgRenderer) { r.padding = max(0, p) } }
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// RenderSVG draws the result as a standalone SVG document. Blocks are drawn
// in track order, then by id, so the output is stable for a given result.
func RenderSVG(res scene.Result, opts ...SVGOption) []byte {
	r := svgRenderer{style: Simple{}, padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}

	blocks := buildBlocks(res)
	slices.SortStableFunc(blocks, func(a, b Block) int {
		return cmp.Or(cmp.Compare(a.Track, b.Track), cmp.Compare(a.ID, b.ID))
	})

	frame := frameOf(res).Inset(-r.padding)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frame.MinX(), frame.MinY(), frame.Width(), frame.Height(), frame.Width(), frame.Height())
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", itemInteractionCSS)
	r.style.RenderDefs(&buf)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect class="background" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			frame.MinX(), frame.MinY(), frame.Width(), frame.Height(), EscapeXML(r.background))
	}
	if r.guides {
		renderGuides(&buf, res)
	}
	for _, b := range blocks {
		r.style.RenderBlock(&buf, b)
	}
	for _, b := range blocks {
		r.style.RenderText(&buf, b)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func buildBlocks(res scene.Result) []Block {
	blocks := make([]Block, len(res.Items))
	for i, it := range res.Items {
		f := it.Frame()
		blocks[i] = Block{
			ID:    it.ID,
			Label: it.Label,
			Color: itemColor(it.Color, it.Track),
			Track: it.Track,
			X:     f.MinX(), Y: f.MinY(),
			W: f.Width(), H: f.Height(),
			CX: f.MidX(), CY: f.MidY(),
		}
	}
	return blocks
}

// frameOf is the area the drawing must cover: the bounds, stretched to the
// measured size and to any item that overflows them.
func frameOf(res scene.Result) geom.Rect {
	b := res.Bounds.Rect()
	frame := geom.R(b.MinX(), b.MinY(), max(b.Width(), res.Width), max(b.Height(), res.Height))
	for _, it := range res.Items {
		frame = frame.Union(it.Frame())
	}
	return frame
}

// renderGuides draws the column separators of columnar results and the row
// tops of flow results.
func renderGuides(buf *bytes.Buffer, res scene.Result) {
	b := res.Bounds.Rect()
	frame := frameOf(res)

	if res.Columns > 0 {
		colW := b.Width() / float64(res.Columns)
		for k := 1; k < res.Columns; k++ {
			x := b.MinX() + float64(k)*colW
			fmt.Fprintf(buf, `  <line class="guide" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
				x, frame.MinY(), x, frame.MaxY())
		}
		return
	}

	for _, y := range rowTops(res)[1:] {
		fmt.Fprintf(buf, `  <line class="guide" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>`+"\n",
			frame.MinX(), y, frame.MaxX(), y)
	}
}

// rowTops returns the top edge of every track, in track order. The first
// entry is always the bounds top.
func rowTops(res scene.Result) []float64 {
	tops := []float64{res.Bounds.Y}
	ps := make([]grid.Placement, len(res.Items))
	for i, it := range res.Items {
		ps[i] = grid.Placement{Index: i, Track: it.Track}
	}
	tracks := grid.Tracks(ps)
	for k, track := range tracks {
		if k == 0 || len(track) == 0 {
			continue
		}
		top := res.Items[track[0]].Y
		for _, i := range track {
			top = min(top, res.Items[i].Y)
		}
		tops = append(tops, top)
	}
	return tops
}
