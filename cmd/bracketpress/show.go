package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/binder"
	"github.com/bracketpress/bracketpress/internal/project"
	"github.com/bracketpress/bracketpress/internal/store"
)

func newShowCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <tournament-id>",
		Short: "Show a tournament's record and page outline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, app, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, app *AppContext, id string) error {
	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("show", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record, err := reg.Get(id)
	if err != nil {
		return newCommandError("show", fmt.Sprintf("looking up tournament %q", id), err, "Run 'bracketpress list' to view registered tournaments.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:        %s\n", record.Name)
	fmt.Fprintf(out, "Slug:        %s\n", record.Slug)
	fmt.Fprintf(out, "Status:      %s\n", record.Status)
	fmt.Fprintf(out, "Description: %s\n", valueOrFallback(record.Description, "(none)"))
	fmt.Fprintf(out, "Starts:      %s\n", formatDate(record.StartDate))
	fmt.Fprintf(out, "Ends:        %s\n", formatDate(record.EndDate))

	doc, ok := project.LoadDocument(app.DocumentPath(record.Slug), app.Log)
	if !ok {
		fmt.Fprintln(out, "\nNo page document yet.")
		return nil
	}

	s := store.New(app.Log)
	s.ImportState(doc.State)

	slots := binder.Plan(s)
	fmt.Fprintf(out, "\nPage outline (%d visible sections):\n", len(slots))
	for _, slot := range slots {
		layout := slot.Layout
		if layout == "" {
			layout = "-"
		}
		fmt.Fprintf(out, "  %2d. %-14s %s\n", slot.Index+1, slot.Label, layout)
	}
	if len(doc.Assets) > 0 {
		fmt.Fprintf(out, "\nAssets: %d uploaded\n", len(doc.Assets))
	}
	return nil
}
