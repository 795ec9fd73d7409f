package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/project"
	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

type newOptions struct {
	description string
	startDate   string
	endDate     string
	preset      string
}

func newNewCmd(app *AppContext) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a new tournament site as a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Short description shown on the public listing")
	cmd.Flags().StringVar(&opts.startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "Builtin theme preset to seed the colors from")

	return cmd
}

func runNew(cmd *cobra.Command, app *AppContext, name string, opts *newOptions) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return newCommandError("new", "validating name", errors.New("name cannot be empty"), "Provide a display name, e.g. 'Winter Cup'.")
	}

	base := palette.DefaultBase()
	if opts.preset != "" {
		preset, ok := palette.BuiltinPreset(opts.preset)
		if !ok {
			return newCommandError("new", fmt.Sprintf("looking up preset %q", opts.preset), errors.New("unknown preset"), "Run 'bracketpress presets' to list available presets.")
		}
		base = preset.Colors
	}

	start, err := parseDate(opts.startDate)
	if err != nil {
		return newCommandError("new", "parsing start date", err, "Use the YYYY-MM-DD format.")
	}
	end, err := parseDate(opts.endDate)
	if err != nil {
		return newCommandError("new", "parsing end date", err, "Use the YYYY-MM-DD format.")
	}

	reg, err := app.OpenRegistry()
	if err != nil {
		return newCommandError("new", "loading tournament registry", err, "Check data directory permissions and try again.")
	}

	record := project.Tournament{
		ID:           uuid.NewString()[:8],
		Name:         name,
		Description:  opts.description,
		StartDate:    start,
		EndDate:      end,
		Colors:       base,
		Status:       project.StatusDraft,
		RegisteredAt: time.Now().UTC(),
	}

	if err := reg.Add(record); err != nil {
		return newCommandError("new", fmt.Sprintf("registering %q", name), err, "Pick a name whose slug is not already taken.")
	}

	record, err = reg.Get(record.ID)
	if err != nil {
		return newCommandError("new", "reading back record", err, "Retry the command.")
	}

	// Seed the page: navigation, hero, and footer visible, everything else
	// waiting in the catalog.
	s := store.New(app.Log)
	s.SetBaseColors(base)
	for _, id := range []section.ID{section.Navigation, section.Hero, section.Footer} {
		s.SetVisible(id, true)
	}

	docPath := app.DocumentPath(record.Slug)
	doc := project.NewDocument(name, s, assets.NewRegistry(app.Log))
	if err := project.SaveDocument(docPath, doc); err != nil {
		return newCommandError("new", "writing page document", err, "Check disk space and data directory permissions.")
	}

	if err := reg.Save(); err != nil {
		return newCommandError("new", "saving registry", err, "Check disk space and file permissions, then retry.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Created '%s' (id %s, slug %s)\n", name, record.ID, record.Slug)
	fmt.Fprintf(cmd.OutOrStdout(), "\nEdit it with 'bracketpress edit %s'. It stays a draft until you publish.\n", record.ID)
	return nil
}

func parseDate(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", value)
}
