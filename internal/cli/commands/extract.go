package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/standexlabs/standex/internal/cli/output"
	"github.com/standexlabs/standex/internal/engine"
)

// ExtractOptions holds options for the extract command.
type ExtractOptions struct {
	Select string
}

// NewExtractCommand creates the extract command.
func NewExtractCommand() *cobra.Command {
	opts := &ExtractOptions{}

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract standards from the subject catalog",
		Long: `Run the extraction pipeline over the subject catalog.

Each subject's source document becomes one JSON artifact mapping grade or
Key Stage labels to sorted (code, description) records. Missing source
documents are reported and skipped; the rest of the catalog continues.`,
		Example: `  # Extract every subject
  standex extract

  # Extract specific subjects
  standex extract --select mathematics,ela

  # JSON summary for scripts
  standex extract --output json`,
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExtract(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Select, "select", "s", "", "Comma-separated list of subject keys to extract")

	return cmd
}

func runExtract(cmd *cobra.Command, opts *ExtractOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := cmdCtx.Engine.Run(splitSelection(opts.Select))
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if r.Mode() == output.ModeJSON {
		if err := r.JSON(result); err != nil {
			return err
		}
	} else {
		renderRunResult(r, result, time.Since(start))
	}

	if failed := result.CountByStatus(engine.StatusFailed); failed > 0 {
		return fmt.Errorf("%d subjects failed", failed)
	}
	return nil
}

func renderRunResult(r *output.Renderer, result *engine.RunResult, elapsed time.Duration) {
	var tableRows [][]string
	for _, s := range result.Subjects {
		grades, records := "", ""
		if s.Status == engine.StatusWritten {
			grades = strconv.Itoa(s.Grades)
			records = strconv.Itoa(s.Records)
		}
		tableRows = append(tableRows, []string{s.Key, string(s.Status), grades, records, s.Artifact})
	}
	r.Table([]string{"Subject", "Status", "Grades", "Records", "Artifact"}, tableRows)

	written := result.CountByStatus(engine.StatusWritten)
	missing := result.CountByStatus(engine.StatusMissing)
	failed := result.CountByStatus(engine.StatusFailed)
	summary := fmt.Sprintf("Wrote %d artifacts (%d missing, %d failed) in %s",
		written, missing, failed, elapsed.Round(time.Millisecond))
	if failed > 0 {
		r.Errorf("%s", summary)
	} else if missing > 0 {
		r.Warnf("%s", summary)
	} else {
		r.Successf("%s", summary)
	}
}
