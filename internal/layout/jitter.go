package layout

import "time"

// Jitter animation parameters. The offsets only ever decorate the rendered
// lines; node positions are never moved.
const (
	JitterAmplitude = 5.0
	JitterPeriod    = 10 * time.Second
)

// LineKeyframes holds the animated values of one line's endpoints.
type LineKeyframes struct {
	X1, Y1, X2, Y2 []float64
}

// Jitter returns the forward keyframes for a line from a to b. Each
// endpoint wobbles in the opposite direction to the other one and comes
// back to its base position on the last frame.
func Jitter(a, b Point) LineKeyframes {
	d := JitterAmplitude
	return LineKeyframes{
		X1: []float64{a.X, a.X + d, a.X - d, a.X},
		Y1: []float64{a.Y, a.Y - d, a.Y + d, a.Y},
		X2: []float64{b.X, b.X - d, b.X + d, b.X},
		Y2: []float64{b.Y, b.Y + d, b.Y - d, b.Y},
	}
}

// Mirrored appends the reversed frames so a single looping animation
// plays forward then backward, starting and ending at the base position.
func Mirrored(frames []float64) []float64 {
	if len(frames) < 2 {
		return append([]float64(nil), frames...)
	}
	out := make([]float64, 0, 2*len(frames)-1)
	out = append(out, frames...)
	for i := len(frames) - 2; i >= 0; i-- {
		out = append(out, frames[i])
	}
	return out
}
