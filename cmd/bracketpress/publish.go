package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/project"
)

func newPublishCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish <tournament-id>",
		Short: "Make a tournament resolvable on the public route",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, app, args[0])
		},
	}

	return cmd
}

func runPublish(cmd *cobra.Command, app *AppContext, id string) error {
	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("publish", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record, err := reg.Get(id)
	if err != nil {
		return newCommandError("publish", fmt.Sprintf("looking up tournament %q", id), err, "Run 'bracketpress list' to view registered tournaments.")
	}

	// A published slug with no page behind it would 404 anyway; catch it
	// here where the user can act on it.
	if _, statErr := os.Stat(app.DocumentPath(record.Slug)); statErr != nil {
		return newCommandError("publish", "checking page document", errors.New("no page document exists"), fmt.Sprintf("Run 'bracketpress edit %s' and save before publishing.", id))
	}

	if err := reg.SetStatus(id, project.StatusPublished); err != nil {
		return newCommandError("publish", "updating status", err, "Run 'bracketpress list' to view registered tournaments.")
	}
	if err := reg.Save(); err != nil {
		return newCommandError("publish", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Published '%s' at /t/%s\n", record.Name, record.Slug)
	return nil
}

func newUnpublishCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpublish <tournament-id>",
		Short: "Take a tournament back to draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpublish(cmd, app, args[0])
		},
	}

	return cmd
}

func runUnpublish(cmd *cobra.Command, app *AppContext, id string) error {
	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("unpublish", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record, err := reg.Get(id)
	if err != nil {
		return newCommandError("unpublish", fmt.Sprintf("looking up tournament %q", id), err, "Run 'bracketpress list' to view registered tournaments.")
	}

	if err := reg.SetStatus(id, project.StatusDraft); err != nil {
		return newCommandError("unpublish", "updating status", err, "Run 'bracketpress list' to view registered tournaments.")
	}
	if err := reg.Save(); err != nil {
		return newCommandError("unpublish", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ '%s' is a draft again; /t/%s now returns 404\n", record.Name, record.Slug)
	return nil
}
