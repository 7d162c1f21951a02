package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/adaptivegrid/pkg/scene"
)

// DefaultTermColumns is the canvas width used when none is given.
const DefaultTermColumns = 80

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

const (
	boxTopLeft     = '┌'
	boxTopRight    = '┐'
	boxBottomLeft  = '└'
	boxBottomRight = '┘'
	boxHorizontal  = '─'
	boxVertical    = '│'
	boxFill        = '█'
)

type cell struct {
	r     rune
	track int // -1 for background
	color string
}

// canvas is a character grid. A wide rune occupies its cell and marks the
// next one with r == 0.
type canvas [][]cell

// RenderText draws the result as plain text, cols characters wide.
func RenderText(res scene.Result, cols int) string {
	return drawCanvas(res, cols).String(false)
}

// RenderTerminal draws the result like RenderText, with each item coloured
// by lipgloss.
func RenderTerminal(res scene.Result, cols int) string {
	return drawCanvas(res, cols).String(true)
}

func drawCanvas(res scene.Result, cols int) canvas {
	if cols <= 0 {
		cols = DefaultTermColumns
	}
	frame := frameOf(res)
	if frame.Width() <= 0 {
		return newCanvas(cols, 1)
	}
	sx := float64(cols) / frame.Width()
	sy := sx / cellAspect
	rows := max(1, int(math.Ceil(frame.Height()*sy)))

	c := newCanvas(cols, rows)
	for _, it := range res.Items {
		f := it.Frame()
		x0 := int(math.Floor((f.MinX() - frame.MinX()) * sx))
		y0 := int(math.Floor((f.MinY() - frame.MinY()) * sy))
		x1 := max(x0+1, int(math.Round((f.MaxX()-frame.MinX())*sx)))
		y1 := max(y0+1, int(math.Round((f.MaxY()-frame.MinY())*sy)))
		c.box(x0, y0, x1, y1, it.Label, it.Track, itemColor(it.Color, it.Track))
	}
	return c
}

func newCanvas(cols, rows int) canvas {
	c := make(canvas, rows)
	for y := range c {
		c[y] = make([]cell, cols)
		for x := range c[y] {
			c[y][x] = cell{r: ' ', track: -1}
		}
	}
	return c
}

func (c canvas) set(x, y int, r rune, track int, color string) {
	if y < 0 || y >= len(c) || x < 0 || x >= len(c[y]) {
		return
	}
	c[y][x] = cell{r: r, track: track, color: color}
}

// box draws the cell rectangle [x0,x1) × [y0,y1). Boxes too small for a
// border are filled solid.
func (c canvas) box(x0, y0, x1, y1 int, label string, track int, color string) {
	w, h := x1-x0, y1-y0
	if w < 2 || h < 2 {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				c.set(x, y, boxFill, track, color)
			}
		}
		return
	}

	for x := x0 + 1; x < x1-1; x++ {
		c.set(x, y0, boxHorizontal, track, color)
		c.set(x, y1-1, boxHorizontal, track, color)
	}
	for y := y0 + 1; y < y1-1; y++ {
		c.set(x0, y, boxVertical, track, color)
		c.set(x1-1, y, boxVertical, track, color)
		for x := x0 + 1; x < x1-1; x++ {
			c.set(x, y, ' ', track, color)
		}
	}
	c.set(x0, y0, boxTopLeft, track, color)
	c.set(x1-1, y0, boxTopRight, track, color)
	c.set(x0, y1-1, boxBottomLeft, track, color)
	c.set(x1-1, y1-1, boxBottomRight, track, color)

	if h < 3 || w < 3 {
		return
	}
	c.text(x0+1, y0+(h-1)/2, w-2, label, track, color)
}

// text writes label centered in a span of width cells starting at x.
func (c canvas) text(x, y, width int, label string, track int, color string) {
	label = runewidth.Truncate(label, width, "…")
	x += (width - runewidth.StringWidth(label)) / 2
	for _, r := range label {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		c.set(x, y, r, track, color)
		if rw == 2 {
			c.set(x+1, y, 0, track, color)
		}
		x += rw
	}
}

// String joins the canvas rows. With styled set, runs of cells from the
// same item are coloured together.
func (c canvas) String(styled bool) string {
	var b strings.Builder
	for y, row := range c {
		if y > 0 {
			b.WriteByte('\n')
		}
		var (
			run      strings.Builder
			runColor string
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if styled && runColor != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.r == 0 {
				continue
			}
			if cl.color != runColor {
				flush()
				runColor = cl.color
			}
			run.WriteRune(cl.r)
		}
		flush()
	}
	return b.String()
}
