package grid

import (
	"math"

	"github.com/matzehuels/adaptivegrid/pkg/geom"
)

// Tracks groups placement indices by track, preserving input order within
// each track.
func Tracks(ps []Placement) [][]int {
	var tracks [][]int
	for _, p := range ps {
		for len(tracks) <= p.Track {
			tracks = append(tracks, nil)
		}
		tracks[p.Track] = append(tracks[p.Track], p.Index)
	}
	return tracks
}

// TrackExtents returns, per track, how far its items reach below top. For
// columns this is the column height; for flows it is the bottom of each row.
func TrackExtents(ps []Placement, top float64) []float64 {
	var ext []float64
	for _, p := range ps {
		for len(ext) <= p.Track {
			ext = append(ext, 0)
		}
		ext[p.Track] = math.Max(ext[p.Track], p.Frame().MaxY()-top)
	}
	return ext
}

// Spread is max minus min of vals, the balance metric for column heights.
func Spread(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	lo, hi := vals[0], vals[0]
	for _, v := range vals[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return hi - lo
}

// Bounds returns the union of every placed frame.
func Bounds(ps []Placement) geom.Rect {
	var r geom.Rect
	for _, p := range ps {
		r = r.Union(p.Frame())
	}
	return r
}
