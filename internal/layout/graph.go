package layout

// LabelOffset is the vertical distance between a node center and its label.
const LabelOffset = 25

// Skill is the input of one node.
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Node is a skill placed on the graph.
type Node struct {
	Name   string  `json:"name"`
	Level  int     `json:"level"`
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Label returns the anchor of the node's text label.
func (n Node) Label() Point {
	return Point{X: n.Center.X, Y: n.Center.Y + LabelOffset}
}

// Graph is the base, unjittered layout for a skill list and viewport.
type Graph struct {
	Viewport Viewport `json:"viewport"`
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
}

// Build lays the skills out in order. It is deterministic: the same skills
// and viewport always give the same graph.
func Build(skills []Skill, vp Viewport) Graph {
	points := Positions(len(skills), vp)
	nodes := make([]Node, len(skills))
	for i, s := range skills {
		nodes[i] = Node{
			Name:   s.Name,
			Level:  s.Level,
			Center: points[i],
			Radius: NodeRadius(s.Level),
		}
	}
	return Graph{
		Viewport: vp,
		Nodes:    nodes,
		Edges:    Edges(len(skills)),
	}
}

// Outgoing returns the edges leaving node i.
func (g Graph) Outgoing(i int) []Edge {
	n := len(g.Nodes)
	if i < 0 || i >= n || n < 2 {
		return nil
	}
	start := i * (n - 1)
	return g.Edges[start : start+n-1]
}
