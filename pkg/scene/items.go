package scene

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// aspectItem keeps a fixed width/height ratio and shrinks to the proposal.
type aspectItem struct {
	width float64
	ratio float64
}

func (a aspectItem) SizeThatFits(p geom.Proposal) geom.Size {
	w := math.Min(a.width, p.Width.Value())
	return geom.Sz(w, w/a.ratio)
}

// textItem is a word-wrapped label measured in character cells.
type textItem struct {
	text       string
	charWidth  float64
	lineHeight float64
}

func (t textItem) SizeThatFits(p geom.Proposal) geom.Size {
	maxCells := math.MaxInt
	if p.Width.IsBounded() {
		if c := p.Width.Value() / t.charWidth; c < float64(math.MaxInt) {
			maxCells = max(1, int(c))
		}
	}
	lines := WrapText(t.text, maxCells)
	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	return geom.Sz(float64(widest)*t.charWidth, float64(len(lines))*t.lineHeight)
}

// WrapText breaks text into lines of at most maxCells display cells at word
// boundaries. A word longer than maxCells gets a line of its own.
func WrapText(text string, maxCells int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var (
		lines []string
		line  strings.Builder
		cells int
	)
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if cells > 0 && cells+1+ww > maxCells {
			lines = append(lines, line.String())
			line.Reset()
			cells = 0
		}
		if cells > 0 {
			line.WriteByte(' ')
			cells++
		}
		line.WriteString(w)
		cells += ww
	}
	return append(lines, line.String())
}
