// Package skillgraph draws a layout.Graph as an animated SVG.
package skillgraph

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/sdorani/portfolio/internal/layout"
)

// Colors of the page palette used by the graph.
const (
	NodeColor  = "#64ffda"
	LabelColor = "#ccd6f6"
)

// easeInOut matches the CSS ease-in-out timing function.
const easeInOut = "0.42 0 0.58 1"

// SVG renders the graph. Every node gets its own group with the lines that
// leave it, its circle and its label. Line endpoints wobble forever; the
// static attributes always hold the base layout.
func SVG(graph layout.Graph) g.Node {
	vp := graph.Viewport
	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("class", "skill-graph"),
		g.Attr("width", num(vp.Width)),
		g.Attr("height", num(vp.Height)),
		g.Attr("viewBox", "0 0 "+num(vp.Width)+" "+num(vp.Height)),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Skill graph"),
	}
	for i, node := range graph.Nodes {
		children = append(children, nodeGroup(graph, i, node))
	}
	return g.El("svg", children...)
}

// String renders the graph to markup.
func String(graph layout.Graph) (string, error) {
	var b strings.Builder
	if err := SVG(graph).Render(&b); err != nil {
		return "", fmt.Errorf("rendering skill graph: %w", err)
	}
	return b.String(), nil
}

// DebugInfo is the caption shown under the graph.
func DebugInfo(windowWidth, windowHeight float64, vp layout.Viewport) string {
	return fmt.Sprintf("Window: %sx%s, Graph: %sx%s",
		num(windowWidth), num(windowHeight), num(vp.Width), num(vp.Height))
}

func nodeGroup(graph layout.Graph, i int, node layout.Node) g.Node {
	children := []g.Node{
		g.Attr("class", "skill-node"),
		g.Attr("data-skill", node.Name),
	}
	for _, e := range graph.Outgoing(i) {
		children = append(children, line(node.Center, graph.Nodes[e.To].Center))
	}
	label := node.Label()
	children = append(children,
		g.El("circle",
			g.Attr("cx", num(node.Center.X)),
			g.Attr("cy", num(node.Center.Y)),
			g.Attr("r", num(node.Radius)),
			g.Attr("fill", NodeColor),
		),
		g.El("text",
			g.Attr("x", num(label.X)),
			g.Attr("y", num(label.Y)),
			g.Attr("text-anchor", "middle"),
			g.Attr("fill", LabelColor),
			g.Attr("font-size", "12"),
			g.Attr("font-weight", "bold"),
			g.Text(node.Name),
		),
	)
	return g.El("g", children...)
}

func line(a, b layout.Point) g.Node {
	k := layout.Jitter(a, b)
	return g.El("line",
		g.Attr("x1", num(a.X)),
		g.Attr("y1", num(a.Y)),
		g.Attr("x2", num(b.X)),
		g.Attr("y2", num(b.Y)),
		g.Attr("stroke", NodeColor),
		g.Attr("stroke-width", "1"),
		g.Attr("opacity", "0.5"),
		animate("x1", k.X1),
		animate("y1", k.Y1),
		animate("x2", k.X2),
		animate("y2", k.Y2),
	)
}

// animate loops the keyframes forward then backward, one JitterPeriod each
// way.
func animate(attr string, frames []float64) g.Node {
	values := layout.Mirrored(frames)
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = num(v)
	}
	dur := 2 * layout.JitterPeriod
	return g.El("animate",
		g.Attr("attributeName", attr),
		g.Attr("values", strings.Join(parts, ";")),
		g.Attr("keyTimes", keyTimes(len(values))),
		g.Attr("keySplines", keySplines(len(values)-1)),
		g.Attr("calcMode", "spline"),
		g.Attr("dur", strconv.FormatFloat(dur.Seconds(), 'f', -1, 64)+"s"),
		g.Attr("repeatCount", "indefinite"),
	)
}

func keyTimes(n int) string {
	if n < 2 {
		return "0"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = strconv.FormatFloat(float64(i)/float64(n-1), 'f', 4, 64)
	}
	return strings.Join(parts, ";")
}

func keySplines(intervals int) string {
	parts := make([]string, intervals)
	for i := range parts {
		parts[i] = easeInOut
	}
	return strings.Join(parts, ";")
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	if math.Abs(v) < 0.005 {
		return "0"
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
