package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/presets"
	"github.com/bracketpress/bracketpress/internal/project"
	"github.com/bracketpress/bracketpress/internal/store"
	"github.com/bracketpress/bracketpress/internal/tui/builder"
)

func newEditCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <tournament-id>",
		Short: "Open the interactive page builder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(app, args[0])
		},
	}

	return cmd
}

func runEdit(app *AppContext, id string) error {
	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("edit", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record, err := reg.Get(id)
	if err != nil {
		return newCommandError("edit", fmt.Sprintf("looking up tournament %q", id), err, "Run 'bracketpress list' to view registered tournaments.")
	}

	s := store.New(app.Log)
	assetReg := assets.NewRegistry(app.Log)

	docPath := app.DocumentPath(record.Slug)
	if doc, ok := project.LoadDocument(docPath, app.Log); ok {
		doc.Apply(s, assetReg)
	} else {
		s.SetBaseColors(record.Colors)
	}

	userPresets := presets.LoadDir(app.Config.PresetsDir, app.Log)

	m := builder.NewModel(builder.Options{
		Store:       s,
		Assets:      assetReg,
		ProjectName: record.Name,
		ProjectPath: docPath,
		Presets:     userPresets,
		Unicode:     app.Config.Unicode,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run builder: %w", err)
	}

	// Persist on exit so a forgotten ctrl+s does not lose the session.
	doc := project.NewDocument(record.Name, s, assetReg)
	if err := project.SaveDocument(docPath, doc); err != nil {
		return newCommandError("edit", "saving page document", err, "Check disk space and data directory permissions.")
	}

	// Keep the record's seed colors in sync with the edited theme.
	record.Colors = s.BaseColors()
	if err := reg.Update(record); err == nil {
		_ = reg.Save()
	}

	return nil
}
