package render

import "github.com/mattn/go-runewidth"

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 24.0
)

// FontSize picks a label size that fits the block.
func FontSize(b Block) float64 {
	n := max(1, runewidth.StringWidth(b.Label))
	byHeight := b.H * fontHeightRatio
	byWidth := (b.W * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, byHeight, byWidth))
}

// TruncateLabel shortens the label so it fits the block at [FontSize].
func TruncateLabel(b Block) string {
	charWidth := FontSize(b) * fontCharWidth
	maxCells := max(3, int(b.W*fontWidthRatio/charWidth))
	return runewidth.Truncate(b.Label, maxCells, "..")
}
