package grid

import "math"

// rowAccumulator tracks the row being filled during one flow pass.
type rowAccumulator struct {
	start  int
	count  int
	width  float64
	height float64
}

// span is a committed row: items [start, end) with their extent.
type span struct {
	start, end    int
	width, height float64
}

func (a *rowAccumulator) fits(w, spacing, limit float64) bool {
	return a.count == 0 || a.width+spacing+w <= limit
}

func (a *rowAccumulator) add(w, h, spacing float64) {
	if a.count > 0 {
		a.width += spacing
	}
	a.width += w
	a.height = math.Max(a.height, h)
	a.count++
}

func (a *rowAccumulator) commit(end int) span {
	s := span{start: a.start, end: end, width: a.width, height: a.height}
	*a = rowAccumulator{start: end}
	return s
}

// columnAccumulator holds per-column running heights during one column pass.
type columnAccumulator struct {
	heights []float64
	counts  []int
	spacing float64
}

func newColumnAccumulator(n int, spacing float64) *columnAccumulator {
	return &columnAccumulator{
		heights: make([]float64, n),
		counts:  make([]int, n),
		spacing: spacing,
	}
}

// push stacks an item of height h onto column k and returns the y offset
// at which it starts.
func (a *columnAccumulator) push(k int, h float64) float64 {
	if a.counts[k] > 0 {
		a.heights[k] += a.spacing
	}
	y := a.heights[k]
	a.heights[k] += h
	a.counts[k]++
	return y
}

func (a *columnAccumulator) tallest() float64 {
	var m float64
	for _, h := range a.heights {
		m = math.Max(m, h)
	}
	return m
}

// shortest returns the column with the least height. When several columns
// tie, the first of them at or after rotate (cyclically) wins, which makes
// equal columns fill in round-robin order.
func (a *columnAccumulator) shortest(rotate int) int {
	n := len(a.heights)
	best, ties := 0, 1
	for k := 1; k < n; k++ {
		switch {
		case a.heights[k] < a.heights[best]:
			best, ties = k, 1
		case a.heights[k] == a.heights[best]:
			ties++
		}
	}
	if ties == 1 {
		return best
	}
	low := a.heights[best]
	for j := 0; j < n; j++ {
		if k := (rotate + j) % n; a.heights[k] == low {
			return k
		}
	}
	return best
}
