package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/adaptivegrid/pkg/errors"
)

// Style defines the visual appearance of rendered items.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBlock writes the SVG for a single item box.
	RenderBlock(buf *bytes.Buffer, b Block)
	// RenderText writes the SVG for an item's label.
	RenderText(buf *bytes.Buffer, b Block)
}

// Block contains all data needed to render a single item.
type Block struct {
	ID         string  // Item identifier
	Label      string  // Display text
	Color      string  // Fill or stroke color
	Track      int     // Row or column index
	X, Y, W, H float64 // Frame
	CX, CY     float64 // Center coordinates (for text)
}

// Style names accepted by [StyleByName].
const (
	StyleSimple  = "simple"
	StyleOutline = "outline"
)

// StyleNames lists the built-in styles.
var StyleNames = []string{StyleSimple, StyleOutline}

// StyleByName returns a built-in style. An empty name selects "simple".
func StyleByName(name string) (Style, error) {
	switch strings.ToLower(name) {
	case "", StyleSimple:
		return Simple{}, nil
	case StyleOutline:
		return Outline{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidStyle, "unknown style %q (valid: %s)", name, strings.Join(StyleNames, ", "))
	}
}

// IsStyle reports whether name is a built-in style.
func IsStyle(name string) bool { return slices.Contains(StyleNames, strings.ToLower(name)) }

// Simple draws filled rounded boxes with white labels.
type Simple struct{}

func (Simple) RenderDefs(buf *bytes.Buffer) {}

func (Simple) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect id="item-%s" class="item" data-track="%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s" stroke="#333333" stroke-width="0.5"/>`+"\n",
		EscapeXML(b.ID), b.Track, b.X, b.Y, b.W, b.H, EscapeXML(b.Color))
}

func (Simple) RenderText(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, "#ffffff")
}

// Outline draws stroked boxes without fill.
type Outline struct{}

func (Outline) RenderDefs(buf *bytes.Buffer) {
	buf.WriteString(`  <defs><style>.item { vector-effect: non-scaling-stroke; }</style></defs>` + "\n")
}

func (Outline) RenderBlock(buf *bytes.Buffer, b Block) {
	fmt.Fprintf(buf, `  <rect id="item-%s" class="item" data-track="%d" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
		EscapeXML(b.ID), b.Track, b.X, b.Y, b.W, b.H, EscapeXML(b.Color))
}

func (Outline) RenderText(buf *bytes.Buffer, b Block) {
	renderLabel(buf, b, b.Color)
}

func renderLabel(buf *bytes.Buffer, b Block, fill string) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	label := TruncateLabel(b)
	if label == "" {
		return
	}
	fmt.Fprintf(buf, `  <text class="item-text" data-item="%s" x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		EscapeXML(b.ID), b.CX, b.CY, FontSize(b), EscapeXML(fill), EscapeXML(label))
}

// EscapeXML escapes s for use in SVG text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
