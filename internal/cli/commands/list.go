package commands

import (
	"github.com/spf13/cobra"

	"github.com/standexlabs/standex/internal/cli/output"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the subject catalog",
		Long: `List every subject in the catalog with its source document, output
region, and whether its document carries native codes.`,
		Example: `  # List all subjects
  standex list

  # List subjects as JSON
  standex list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	subjects := cmdCtx.Engine.Subjects()
	r := cmdCtx.Renderer

	if r.Mode() == output.ModeJSON {
		type entry struct {
			Key     string `json:"key"`
			Source  string `json:"source"`
			Region  string `json:"region"`
			Uncoded bool   `json:"uncoded"`
		}
		out := make([]entry, 0, len(subjects))
		for _, s := range subjects {
			out = append(out, entry{Key: s.Key, Source: s.Source, Region: string(s.Region()), Uncoded: s.Uncoded()})
		}
		return r.JSON(out)
	}

	var tableRows [][]string
	for _, s := range subjects {
		coded := "yes"
		if s.Uncoded() {
			coded = "no"
		}
		tableRows = append(tableRows, []string{s.Key, s.Source, string(s.Region()), coded})
	}
	r.Table([]string{"Subject", "Source", "Region", "Coded"}, tableRows)
	return nil
}
