// Package binder turns builder state into an ordered render plan: one slot
// per visible section, densely indexed top to bottom. Hidden sections do
// not appear in the plan at all; the rendering layer never has to skip
// them.
package binder

import (
	"fmt"

	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

// Slot binds one visible section's settings to its position on the page.
type Slot struct {
	Index    int
	ID       section.ID
	Label    string
	Layout   string
	Settings *section.Settings
}

// Plan walks the store's order and emits a slot for each visible section.
// Indices are dense: the first visible section is 0 regardless of how many
// hidden sections precede it.
func Plan(s *store.Store) []Slot {
	var slots []Slot
	for _, id := range s.Order() {
		if !s.Visible(id) {
			continue
		}
		settings := s.Settings(id)
		if settings == nil {
			continue
		}
		slots = append(slots, Slot{
			Index:    len(slots),
			ID:       id,
			Label:    section.Label(id),
			Layout:   settings.Layout(),
			Settings: settings,
		})
	}
	return slots
}

// Anchor returns the in-page link target for a section, used by menu items
// and call-to-action buttons.
func Anchor(id section.ID) string {
	return fmt.Sprintf("#%s", id)
}
