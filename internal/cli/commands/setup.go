package commands

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/standexlabs/standex/internal/catalog"
	"github.com/standexlabs/standex/internal/cli/output"
	"github.com/standexlabs/standex/internal/config"
	"github.com/standexlabs/standex/internal/engine"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Renderer *output.Renderer
}

// NewCommandContext builds the engine and renderer for a command from the
// loaded configuration.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := config.FromContext(cmd.Context())
	logger := config.LoggerFromContext(cmd.Context())

	subjects, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	eng := engine.New(engine.Config{
		SourcesDir: cfg.SourcesDir,
		OutputDir:  cfg.OutputDir,
		Subjects:   subjects,
		Logger:     logger,
	})

	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{Cfg: cfg, Logger: logger, Engine: eng, Renderer: r}, nil
}

// loadCatalog returns the subjects from the configured catalog file, or the
// built-in catalog when none is set.
func loadCatalog(cfg *config.Config) ([]catalog.Subject, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}

// splitSelection parses a comma-separated key list.
func splitSelection(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
