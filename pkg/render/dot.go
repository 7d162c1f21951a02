package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// Graphviz output formats accepted by [RenderGraphviz].
const (
	FormatPNG = "png"
	FormatJPG = "jpg"
	FormatSVG = "svg"
)

// pointsPerInch converts layout units (treated as points) to the inches
// Graphviz uses for pos, width and height.
const pointsPerInch = 72.0

// ToDOT converts a result to Graphviz DOT source. Every node is pinned to its
// computed center so neato keeps the layout as is. Graphviz's y axis points
// up, so y coordinates are flipped around the frame.
func ToDOT(res scene.Result) string {
	frame := frameOf(res)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  outputorder=nodesfirst;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fixedsize=true, fontname=\"sans-serif\", fontsize=10, fontcolor=white, color=\"#333333\", penwidth=0.5, margin=0];\n")
	buf.WriteString("\n")

	for _, it := range res.Items {
		f := it.Frame()
		cx := f.MidX()
		cy := frame.MaxY() - f.MidY()
		attrs := []string{
			"label="+dotQuote(it.Label),
			fmt.Sprintf("pos=\"%s,%s!\"", inches(cx), inches(cy)),
			fmt.Sprintf("width=%s", inches(max(f.Width(), 1))),
			fmt.Sprintf("height=%s", inches(max(f.Height(), 1))),
			"fillcolor="+dotQuote(itemColor(it.Color, it.Track)),
			fmt.Sprintf("group=\"track%d\"", it.Track),
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", dotQuote(it.ID), strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// dotQuote quotes s as a DOT string, escaping only backslashes and double
// quotes. Other characters, control characters included, pass through.
func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func inches(v float64) string {
	return strconv.FormatFloat(v/pointsPerInch, 'f', 4, 64)
}

// RenderGraphviz renders DOT source with the neato engine in-process.
// format is one of png, jpg or svg.
func RenderGraphviz(ctx context.Context, dot, format string) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case FormatPNG:
		gvFormat = graphviz.PNG
	case FormatJPG, "jpeg":
		gvFormat = graphviz.JPG
	case FormatSVG:
		gvFormat = graphviz.SVG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "graphviz cannot render %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	if gvFormat == graphviz.SVG {
		return normalizeViewBox(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root <svg> tag, which sizes the image
// in pt, with one sized in user units.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
