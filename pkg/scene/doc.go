// Package scene reads layout scenes from disk and writes layout results.
//
// A scene is a canvas, a layout configuration and an ordered list of items.
// Scenes are written in TOML or JSON:
//
//	[canvas]
//	width = 320
//
//	[layout]
//	strategy = "balanced"
//	columns  = 3
//	spacing  = 4
//
//	[[items]]
//	id     = "hero"
//	width  = 120
//	height = 80
//
//	[[items]]
//	id   = "caption"
//	kind = "text"
//	text = "Sunset over the bay"
//
// # Item Kinds
//
//   - box: a fixed width × height that ignores the proposal.
//   - aspect: a natural width and an aspect ratio; under a narrower
//     proposal it shrinks to fit and keeps its ratio.
//   - text: a label measured in terminal cells (East Asian wide runes count
//     double), wrapped at word boundaries to the proposed width.
//
// # Results
//
// A [Result] is the serialized outcome of laying out a scene: the measured
// size, the container bounds and one [Placed] record per item, in scene
// order. Results are JSON only and are what `adaptivegrid layout` writes and
// `adaptivegrid render` reads back.
package scene
