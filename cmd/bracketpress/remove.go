package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type removeOptions struct {
	force    bool
	keepPage bool
}

func newRemoveCmd(app *AppContext) *cobra.Command {
	opts := &removeOptions{}

	cmd := &cobra.Command{
		Use:   "remove <tournament-id>",
		Short: "Remove a tournament from the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Remove without confirmation")
	cmd.Flags().BoolVar(&opts.keepPage, "keep-page", false, "Keep the page document on disk")

	return cmd
}

func runRemove(cmd *cobra.Command, app *AppContext, id string, opts *removeOptions) error {
	if strings.TrimSpace(id) == "" {
		return newCommandError("remove", "validating tournament ID", errors.New("tournament ID cannot be empty"), "Provide the ID you wish to remove.")
	}

	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("remove", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record, err := reg.Get(id)
	if err != nil {
		return newCommandError("remove", fmt.Sprintf("looking up tournament %q", id), err, "Run 'bracketpress list' to view registered tournaments.")
	}

	if !opts.force {
		confirmed, err := confirmRemoval(cmd, id, record.Name)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	if err := reg.Remove(id); err != nil {
		return newCommandError("remove", fmt.Sprintf("removing tournament %q", id), err, "Verify it still exists using 'bracketpress list'.")
	}
	if err := reg.Save(); err != nil {
		return newCommandError("remove", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	docPath := app.DocumentPath(record.Slug)
	if !opts.keepPage {
		if err := os.Remove(docPath); err != nil && !os.IsNotExist(err) {
			app.Log.WithFields(map[string]any{"path": docPath}).Warn("could not delete page document")
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Removed '%s'\n", record.Name)
	if opts.keepPage {
		fmt.Fprintf(cmd.OutOrStdout(), "\nThe page document at %s was kept.\n", docPath)
	}
	return nil
}

func confirmRemoval(cmd *cobra.Command, id, name string) (bool, error) {
	if !isTerminal(cmd.InOrStdin()) {
		return false, newCommandError("remove", "prompting for confirmation", errors.New("not a terminal"), "Use --force when running in non-interactive environments.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Remove '%s' (%s) and its page? [y/N]: ", name, id)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
	return answer == "y" || answer == "yes", nil
}

func isTerminal(reader any) bool {
	if file, ok := reader.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
