package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/presets"
)

func newPresetsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List available theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresets(cmd, app)
		},
	}

	cmd.AddCommand(newPresetsImportCmd(app))

	return cmd
}

func runPresets(cmd *cobra.Command, app *AppContext) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tPRIMARY\tSOURCE\tDESCRIPTION")

	for _, p := range palette.BuiltinPresets() {
		fmt.Fprintf(writer, "%s\t%s\tbuiltin\t%s\n", p.Name, p.Colors.Primary, p.Description)
	}
	for _, p := range presets.LoadDir(app.Config.PresetsDir, app.Log) {
		fmt.Fprintf(writer, "%s\t%s\tuser\t%s\n", p.Name, p.Colors.Primary, p.Description)
	}

	return writer.Flush()
}

func newPresetsImportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <git-url>",
		Short: "Import theme presets from a git repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetsImport(cmd, app, args[0])
		},
	}

	return cmd
}

func runPresetsImport(cmd *cobra.Command, app *AppContext, gitURL string) error {
	n, err := presets.Import(cmd.Context(), gitURL, app.Config.PresetsDir, app.Log)
	if err != nil {
		return newCommandError("import presets", fmt.Sprintf("cloning %q", gitURL), err, "Check the URL and your network connection.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Imported %d preset(s) into %s\n", n, app.Config.PresetsDir)
	return nil
}
