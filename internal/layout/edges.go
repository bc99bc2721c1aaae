package layout

// Edge is a directed connection between two node indexes.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Edges returns every ordered pair of distinct nodes, grouped by source in
// index order. Both directions are kept: the graph draws each one with the
// same stroke, so the duplicates are visually harmless.
func Edges(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, 0, n*(n-1))
	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from == to {
				continue
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	return edges
}

// EdgeCount is len(Edges(n)) without allocating.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1)
}
