package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bracketpress/bracketpress/internal/project"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(app *AppContext) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tournaments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, app *AppContext, opts *listOptions) error {
	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("list", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	tournaments := reg.List()
	if len(tournaments) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tournaments yet.")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'bracketpress new <name>' to create your first one.")
		return nil
	}

	sort.Slice(tournaments, func(i, j int) bool {
		return tournaments[i].Name < tournaments[j].Name
	})

	if opts.jsonOutput {
		return renderListJSON(cmd, tournaments)
	}
	return renderListTable(cmd, tournaments)
}

func renderListTable(cmd *cobra.Command, tournaments []project.Tournament) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	useUnicode := supportsUnicode(cmd.OutOrStdout())

	fmt.Fprintln(writer, "ID\tNAME\tSLUG\tSTATUS\tSTARTS")
	for _, t := range tournaments {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			t.ID,
			t.Name,
			t.Slug,
			formatStatus(t.Status, useUnicode),
			formatDate(t.StartDate),
		)
	}
	return writer.Flush()
}

type listJSONPayload struct {
	Version     string               `json:"version"`
	Count       int                  `json:"count"`
	Tournaments []project.Tournament `json:"tournaments"`
}

func renderListJSON(cmd *cobra.Command, tournaments []project.Tournament) error {
	payload := listJSONPayload{
		Version:     "1.0",
		Count:       len(tournaments),
		Tournaments: tournaments,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func formatStatus(status project.Status, useUnicode bool) string {
	if status == project.StatusPublished {
		if useUnicode {
			return "● published"
		}
		return "[P] published"
	}
	if useUnicode {
		return "○ draft"
	}
	return "[d] draft"
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return "unscheduled"
	}
	return ts.Format("2006-01-02")
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
