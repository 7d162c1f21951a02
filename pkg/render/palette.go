package render

// palette is used to colour tracks that have no explicit item color.
var palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// TrackColor returns the palette color for a track index.
func TrackColor(track int) string {
	if track < 0 {
		track = -track
	}
	return palette[track%len(palette)]
}

func itemColor(color string, track int) string {
	if color != "" {
		return color
	}
	return TrackColor(track)
}
