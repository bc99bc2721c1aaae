package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sdorani/portfolio/internal/content"
	"github.com/sdorani/portfolio/internal/layout"
	"github.com/sdorani/portfolio/internal/skillgraph"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#64ffda"))
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ccd6f6"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8892b0"))
)

func newLayoutCmd() *cobra.Command {
	var width, height float64

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the skill graph layout for a window size",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, site, err := setup()
			if err != nil {
				return err
			}
			return PrintLayout(cmd.OutOrStdout(), site, width, height)
		},
	}

	cmd.Flags().Float64Var(&width, "width", 1280, "window width in CSS pixels")
	cmd.Flags().Float64Var(&height, "height", 800, "window height in CSS pixels")
	return cmd
}

// PrintLayout writes the usable viewport and every node position.
func PrintLayout(w io.Writer, site *content.Site, windowWidth, windowHeight float64) error {
	vp := layout.Usable(windowWidth, windowHeight)
	g := layout.Build(site.SkillNodes(), vp)

	var b strings.Builder
	b.WriteString(titleStyle.Render(skillgraph.DebugInfo(windowWidth, windowHeight, vp)))
	b.WriteString("\n")
	b.WriteString(headStyle.Render(fmt.Sprintf("%-3s %-30s %5s %9s %9s %6s", "#", "skill", "level", "x", "y", "r")))
	b.WriteString("\n")
	for i, n := range g.Nodes {
		fmt.Fprintf(&b, "%-3d %-30s %5d %9.2f %9.2f %6.1f\n",
			i, n.Name, n.Level, n.Center.X, n.Center.Y, n.Radius)
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d nodes, %d edges", len(g.Nodes), len(g.Edges))))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
