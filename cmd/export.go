package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sdorani/portfolio/internal/content"
	"github.com/sdorani/portfolio/internal/logger"
	"github.com/sdorani/portfolio/internal/server"
	"github.com/sdorani/portfolio/web"
)

func newExportCmd() *cobra.Command {
	var (
		out          string
		windowWidth  float64
		windowHeight float64
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the page and its assets as static files",
		Long: `Render the page into a directory that any static file host can serve.

The output holds index.html and static/. Copy images/ and the wasm build
next to them to get the profile photo and scroll highlighting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, site, err := setup()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("window-width") {
				windowWidth = cfg.DefaultWindowWidth
			}
			if !cmd.Flags().Changed("window-height") {
				windowHeight = cfg.DefaultWindowHeight
			}
			if err := Export(out, site, windowWidth, windowHeight); err != nil {
				return err
			}
			logger.Get().Info().Str("dir", out).Msg("exported page")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist/site", "output directory")
	cmd.Flags().Float64Var(&windowWidth, "window-width", 0, "window width the graph is first drawn for")
	cmd.Flags().Float64Var(&windowHeight, "window-height", 0, "window height the graph is first drawn for")
	return cmd
}

// Export renders index.html with relative asset paths and copies the
// embedded static assets into dir.
func Export(dir string, site *content.Site, windowWidth, windowHeight float64) error {
	renderer, err := server.NewRenderer(site)
	if err != nil {
		return err
	}
	data, err := renderer.Page(windowWidth, windowHeight, "")
	if err != nil {
		return err
	}
	// No server to redraw the graph from.
	data.GraphURL = ""

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index.html: %w", err)
	}
	if err := renderer.WritePage(f, data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing index.html: %w", err)
	}

	return fs.WalkDir(web.FS, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(web.FS, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if err := os.WriteFile(target, b, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", target, err)
		}
		return nil
	})
}
