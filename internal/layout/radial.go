package layout

import "math"

// RadiusFraction is the share of each usable dimension between the center
// and a node.
const RadiusFraction = 0.35

// Point is a position in SVG user units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Angle returns the polar angle of node i out of n, in radians.
func Angle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n) * 2 * math.Pi
}

// Positions lays n nodes out evenly around the viewport center. The radius
// is applied per axis, so the nodes sit on an ellipse whenever the viewport
// is not square. It returns nil when n <= 0.
func Positions(n int, vp Viewport) []Point {
	if n <= 0 {
		return nil
	}
	c := vp.Center()
	rx := vp.Width * RadiusFraction
	ry := vp.Height * RadiusFraction

	points := make([]Point, n)
	for i := range points {
		a := Angle(i, n)
		points[i] = Point{
			X: c.X + rx*math.Cos(a),
			Y: c.Y + ry*math.Sin(a),
		}
	}
	return points
}

// NodeRadius maps a proficiency level to the drawn circle radius.
func NodeRadius(level int) float64 {
	return 10 + float64(level)/10
}
