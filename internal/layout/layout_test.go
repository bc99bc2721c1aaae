package layout

import (
	"math"
	"reflect"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestUsable(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          Viewport
	}{
		{name: "capped", width: 1000, height: 800, want: Viewport{Width: 800, Height: 600}},
		{name: "narrow window", width: 500, height: 800, want: Viewport{Width: 460, Height: 600}},
		{name: "short window", width: 1920, height: 500, want: Viewport{Width: 800, Height: 300}},
		{name: "smaller than margins", width: 10, height: 10, want: Viewport{}},
		{name: "exactly margins", width: MarginX, height: MarginY, want: Viewport{}},
		{name: "nan", width: math.NaN(), height: 700, want: Viewport{Width: 0, Height: 500}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Usable(tt.width, tt.height); got != tt.want {
				t.Fatalf("Usable(%v, %v) = %+v, want %+v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestPositionsCount(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	for n := 0; n <= 12; n++ {
		if got := len(Positions(n, vp)); got != n {
			t.Fatalf("Positions(%d) returned %d points", n, got)
		}
	}
	if got := Positions(-3, vp); got != nil {
		t.Fatalf("expected nil for negative count, got %v", got)
	}
}

func TestPositionsAngleAndRadius(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	c := vp.Center()
	for _, n := range []int{1, 3, 7, 10} {
		for i, p := range Positions(n, vp) {
			a := Angle(i, n)
			dx := (p.X - c.X) / (vp.Width * RadiusFraction)
			dy := (p.Y - c.Y) / (vp.Height * RadiusFraction)
			if !near(dx, math.Cos(a)) || !near(dy, math.Sin(a)) {
				t.Fatalf("n=%d i=%d: point %+v not at angle %v", n, i, p, a)
			}
			if !near(dx*dx+dy*dy, 1) {
				t.Fatalf("n=%d i=%d: point %+v off the ellipse", n, i, p)
			}
		}
	}
}

func TestPositionsEightNodes(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	c := vp.Center()
	points := Positions(8, vp)

	if !near(points[0].X, c.X+280) || !near(points[0].Y, c.Y) {
		t.Fatalf("node 0 = %+v, want (%v, %v)", points[0], c.X+280, c.Y)
	}
	if !near(points[4].X, c.X-280) || !near(points[4].Y, c.Y) {
		t.Fatalf("node 4 = %+v, want (%v, %v)", points[4], c.X-280, c.Y)
	}
	if !near(points[2].X, c.X) || !near(points[2].Y, c.Y+210) {
		t.Fatalf("node 2 = %+v, want (%v, %v)", points[2], c.X, c.Y+210)
	}
}

func TestPositionsDegenerateViewport(t *testing.T) {
	for _, p := range Positions(5, Usable(0, 0)) {
		if p != (Point{}) {
			t.Fatalf("expected nodes collapsed at origin, got %+v", p)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	skills := []Skill{{"Go", 90}, {"SQL", 80}, {"Security", 85}}
	vp := Viewport{Width: 460, Height: 600}
	a := Build(skills, vp)
	b := Build(skills, vp)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Build is not deterministic:\n%+v\n%+v", a, b)
	}
}

func TestBuildNodes(t *testing.T) {
	g := Build([]Skill{{"Mentoring", 92}, {"React", 88}}, Viewport{Width: 800, Height: 600})
	if len(g.Nodes) != 2 || len(g.Edges) != 2 {
		t.Fatalf("got %d nodes and %d edges", len(g.Nodes), len(g.Edges))
	}
	if !near(g.Nodes[0].Radius, 19.2) {
		t.Fatalf("radius = %v, want 19.2", g.Nodes[0].Radius)
	}
	if l := g.Nodes[1].Label(); !near(l.Y, g.Nodes[1].Center.Y+LabelOffset) {
		t.Fatalf("label anchor = %+v", l)
	}
}

func TestBuildEmptyAndSingle(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}
	if g := Build(nil, vp); len(g.Nodes) != 0 || len(g.Edges) != 0 {
		t.Fatalf("empty graph has %d nodes and %d edges", len(g.Nodes), len(g.Edges))
	}
	g := Build([]Skill{{"Go", 50}}, vp)
	if len(g.Nodes) != 1 || len(g.Edges) != 0 {
		t.Fatalf("single graph has %d nodes and %d edges", len(g.Nodes), len(g.Edges))
	}
	if c := vp.Center(); !near(g.Nodes[0].Center.X, c.X+280) {
		t.Fatalf("single node at %+v", g.Nodes[0].Center)
	}
}

func TestEdges(t *testing.T) {
	for n := 0; n <= 10; n++ {
		edges := Edges(n)
		if len(edges) != EdgeCount(n) {
			t.Fatalf("n=%d: len(Edges)=%d, EdgeCount=%d", n, len(edges), EdgeCount(n))
		}
		if n >= 1 && len(edges) != n*(n-1) {
			t.Fatalf("n=%d: got %d edges", n, len(edges))
		}
		seen := make(map[Edge]bool)
		for _, e := range edges {
			if e.From == e.To {
				t.Fatalf("n=%d: self edge %+v", n, e)
			}
			if seen[e] {
				t.Fatalf("n=%d: duplicate edge %+v", n, e)
			}
			seen[e] = true
		}
		for _, e := range edges {
			if !seen[Edge{From: e.To, To: e.From}] {
				t.Fatalf("n=%d: missing reverse of %+v", n, e)
			}
		}
	}
}

func TestOutgoing(t *testing.T) {
	g := Build([]Skill{{"a", 1}, {"b", 2}, {"c", 3}, {"d", 4}}, Viewport{Width: 100, Height: 100})
	for i := range g.Nodes {
		out := g.Outgoing(i)
		if len(out) != 3 {
			t.Fatalf("node %d has %d outgoing edges", i, len(out))
		}
		for _, e := range out {
			if e.From != i {
				t.Fatalf("node %d: edge %+v does not start at the node", i, e)
			}
		}
	}
	if g.Outgoing(4) != nil || g.Outgoing(-1) != nil {
		t.Fatal("out of range index should have no edges")
	}
}

func TestJitter(t *testing.T) {
	a, b := Point{X: 10, Y: 20}, Point{X: 30, Y: 40}
	k := Jitter(a, b)
	want := LineKeyframes{
		X1: []float64{10, 15, 5, 10},
		Y1: []float64{20, 15, 25, 20},
		X2: []float64{30, 25, 35, 30},
		Y2: []float64{40, 45, 35, 40},
	}
	if !reflect.DeepEqual(k, want) {
		t.Fatalf("Jitter = %+v, want %+v", k, want)
	}
}

func TestMirrored(t *testing.T) {
	got := Mirrored([]float64{1, 2, 3, 1})
	want := []float64{1, 2, 3, 1, 3, 2, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Mirrored = %v, want %v", got, want)
	}
	if got := Mirrored([]float64{4}); !reflect.DeepEqual(got, []float64{4}) {
		t.Fatalf("Mirrored single = %v", got)
	}
}
