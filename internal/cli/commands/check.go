package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/standexlabs/standex/internal/cli/output"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that every catalog source document resolves",
		Long: `Check each catalog entry's source document for existence and
readability without extracting anything. Exits non-zero if any source is
missing, so the command can gate a pipeline run.`,
		Example: `  # Check the built-in catalog against ./pdfs
  standex check

  # Check a custom catalog
  standex check --catalog catalog.yaml --sources-dir ./docs`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

func runCheck(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer

	type entry struct {
		Key    string `json:"key"`
		Path   string `json:"path"`
		Exists bool   `json:"exists"`
	}
	var entries []entry
	missing := 0
	for _, s := range cmdCtx.Engine.Subjects() {
		path := cmdCtx.Engine.SourcePath(s)
		_, statErr := os.Stat(path)
		exists := statErr == nil
		if !exists {
			missing++
		}
		entries = append(entries, entry{Key: s.Key, Path: path, Exists: exists})
	}

	if r.Mode() == output.ModeJSON {
		if err := r.JSON(entries); err != nil {
			return err
		}
	} else {
		var tableRows [][]string
		for _, e := range entries {
			status := "ok"
			if !e.Exists {
				status = "missing"
			}
			tableRows = append(tableRows, []string{e.Key, e.Path, status})
		}
		r.Table([]string{"Subject", "Source", "Status"}, tableRows)
		if missing == 0 {
			r.Successf("All %d source documents found", len(entries))
		} else {
			r.Warnf("%d of %d source documents missing", missing, len(entries))
		}
	}

	if missing > 0 {
		return fmt.Errorf("%d source documents missing", missing)
	}
	return nil
}
