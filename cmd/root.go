// Package cmd implements the portfolio command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdorani/portfolio/internal/config"
	"github.com/sdorani/portfolio/internal/content"
	"github.com/sdorani/portfolio/internal/logger"
)

var (
	contentFile string
	logLevel    string
	logFormat   string
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve or export the portfolio page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&contentFile, "content", "", "YAML file overlaying the built-in page content (env CONTENT_FILE)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: console or json (env LOG_FORMAT)")

	root.AddCommand(newServeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newLayoutCmd())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration and content, applying flag overrides, and
// installs the logger.
func setup() (config.Config, *content.Site, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}

	if err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return config.Config{}, nil, err
	}

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading content: %w", err)
	}
	return cfg, site, nil
}
