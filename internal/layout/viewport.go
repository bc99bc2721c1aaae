// Package layout places skill nodes around an ellipse sized to the usable
// part of the browser window.
package layout

// Sizing limits for the skill graph, in CSS pixels.
const (
	// MaxWidth caps the usable width on wide windows.
	MaxWidth = 800
	// MaxHeight caps the usable height on tall windows.
	MaxHeight = 600
	// MarginX is reserved horizontally for page padding.
	MarginX = 40
	// MarginY is reserved vertically for the fixed header and the section title.
	MarginY = 200
)

// Viewport is the usable drawing area of the skill graph.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// Usable derives the graph viewport from the raw window size. Both
// dimensions are capped at MaxWidth/MaxHeight and floored at zero, so a
// window smaller than the margins collapses the graph instead of producing
// negative geometry.
func Usable(windowWidth, windowHeight float64) Viewport {
	return Viewport{
		Width:  clamp(windowWidth-MarginX, MaxWidth),
		Height: clamp(windowHeight-MarginY, MaxHeight),
	}
}

func clamp(v, upper float64) float64 {
	if v != v || v < 0 { // NaN or negative
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}
