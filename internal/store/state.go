package store

import (
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
)

// State is the serialisable snapshot of a store, used by the project
// document for persistence.
type State struct {
	Order    []section.ID                     `json:"order"`
	Visible  map[section.ID]bool              `json:"visible"`
	Base     palette.BaseColors               `json:"base_colors"`
	Sections map[section.ID]*section.Settings `json:"sections"`
}

// ExportState deep-copies the current state for persistence.
func (s *Store) ExportState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := State{
		Order:    make([]section.ID, len(s.order)),
		Visible:  make(map[section.ID]bool, len(s.visible)),
		Base:     s.base,
		Sections: make(map[section.ID]*section.Settings, len(s.settings)),
	}
	copy(out.Order, s.order)
	for id, v := range s.visible {
		out.Visible[id] = v
	}
	for id, st := range s.settings {
		clone, err := st.Clone()
		if err != nil {
			s.log.Error(err, "clone settings for export")
			clone = section.DefaultSettings(id, s.pal)
		}
		out.Sections[id] = clone
	}
	return out
}

// ImportState replaces the store's state with a loaded snapshot, repairing
// whatever a hand-edited or stale document broke: the order is rebuilt as a
// permutation of the catalog (unknown ids dropped, missing ids appended in
// catalog order), the visibility map is made total, missing settings fall
// back to fresh defaults, and colors are normalized.
func (s *Store) ImportState(in State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.base = in.Base.Normalized()
	s.pal = palette.Derive(s.base)

	seen := make(map[section.ID]bool, len(in.Order))
	order := make([]section.ID, 0, len(section.Catalog()))
	for _, id := range in.Order {
		if section.IsValid(id) && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for _, id := range section.DefaultOrder() {
		if !seen[id] {
			order = append(order, id)
		}
	}
	s.order = order

	s.visible = make(map[section.ID]bool, len(order))
	s.settings = make(map[section.ID]*section.Settings, len(order))
	for _, id := range order {
		s.visible[id] = in.Visible[id]
		if st, ok := in.Sections[id]; ok && st != nil && st.Kind == id {
			clone, err := st.Clone()
			if err == nil {
				s.settings[id] = clone
				continue
			}
			s.log.Error(err, "clone imported settings")
		}
		s.settings[id] = section.DefaultSettings(id, s.pal)
	}
}
