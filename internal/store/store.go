package store

import (
	"encoding/json"
	"sync"

	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
)

// Store holds all builder state for one project: the section order, the
// visibility map, the base colors with their derived palette, and one
// settings record per section. Every mutation is a synchronous data
// transformation; degenerate inputs (bad indices, unknown ids) are no-ops
// rather than errors so the live editor never crashes.
type Store struct {
	mu       sync.RWMutex
	order    []section.ID
	visible  map[section.ID]bool
	settings map[section.ID]*section.Settings
	base     palette.BaseColors
	pal      palette.Palette
	log      *logger.Logger
}

// New creates a store populated with catalog defaults: catalog order, all
// sections hidden, default base colors, fresh default settings per section.
func New(log *logger.Logger) *Store {
	s := &Store{log: log}
	s.reset()
	return s
}

// reset reinitialises all state. Caller holds no lock (construction) or the
// write lock.
func (s *Store) reset() {
	s.base = palette.DefaultBase()
	s.pal = palette.Derive(s.base)
	s.order = section.DefaultOrder()
	s.visible = make(map[section.ID]bool, len(s.order))
	s.settings = make(map[section.ID]*section.Settings, len(s.order))
	for _, id := range s.order {
		s.visible[id] = false
		s.settings[id] = section.DefaultSettings(id, s.pal)
	}
}

// Order returns a copy of the current section order.
func (s *Store) Order() []section.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]section.ID, len(s.order))
	copy(out, s.order)
	return out
}

// Reorder removes the section at from and reinserts it at to. Out-of-bounds
// or equal indices leave the order unchanged. Reports whether the order
// changed.
func (s *Store) Reorder(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if from == to || from < 0 || to < 0 || from >= len(s.order) || to >= len(s.order) {
		return false
	}
	id := s.order[from]
	s.order = append(s.order[:from], s.order[from+1:]...)
	s.order = append(s.order[:to], append([]section.ID{id}, s.order[to:]...)...)
	return true
}

// MoveSection handles a reorder intent by id: the dragged section lands at
// the position the target section currently occupies. Unknown ids are a
// no-op.
func (s *Store) MoveSection(fromID, toID section.ID) bool {
	s.mu.Lock()
	from, to := -1, -1
	for i, id := range s.order {
		switch id {
		case fromID:
			from = i
		case toID:
			to = i
		}
	}
	s.mu.Unlock()

	if from < 0 || to < 0 {
		return false
	}
	return s.Reorder(from, to)
}

// Visible reports whether a section is shown.
func (s *Store) Visible(id section.ID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[id]
}

// VisibilityMap returns a copy of the visibility map. A key exists for
// every catalog id.
func (s *Store) VisibilityMap() map[section.ID]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[section.ID]bool, len(s.visible))
	for id, v := range s.visible {
		out[id] = v
	}
	return out
}

// SetVisible shows or hides one section. Unknown ids are ignored so the map
// stays total over the catalog.
func (s *Store) SetVisible(id section.ID, visible bool) {
	if !section.IsValid(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible[id] = visible
}

// Toggle flips one section's visibility.
func (s *Store) Toggle(id section.ID) {
	if !section.IsValid(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible[id] = !s.visible[id]
}

// ToggleAll shows or hides every section at once.
func (s *Store) ToggleAll(visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id := range s.visible {
		s.visible[id] = visible
	}
}

// Settings returns the live settings record for a section, or nil for
// unknown ids. The returned pointer is owned by the store: read it for
// rendering, mutate only through Update or Patch.
func (s *Store) Settings(id section.ID) *section.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings[id]
}

// Update applies fn to a section's settings in one step. Unknown ids are a
// no-op. Reports whether fn was invoked.
func (s *Store) Update(id section.ID, fn func(*section.Settings)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settings[id]
	if !ok || st == nil {
		return false
	}
	fn(st)
	return true
}

// Patch deep-merges a partial settings record into the section's settings.
// Sibling fields at every touched level are preserved; arrays replace
// wholesale. Unknown ids and empty patches are no-ops.
func (s *Store) Patch(id section.ID, partial map[string]any) bool {
	if len(partial) == 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.settings[id]
	if !ok || st == nil {
		return false
	}

	body, err := st.EncodeBody()
	if err != nil {
		s.log.Error(err, "encode settings for patch")
		return false
	}
	var current map[string]any
	if err := json.Unmarshal(body, &current); err != nil {
		s.log.Error(err, "decode settings for patch")
		return false
	}

	merged, err := json.Marshal(deepMerge(current, partial))
	if err != nil {
		s.log.Error(err, "encode merged settings")
		return false
	}
	if err := st.DecodeBody(merged); err != nil {
		s.log.Error(err, "apply settings patch")
		return false
	}
	return true
}

// ApplyFormat merges the named format preset into the section's settings.
// Fields the format does not name keep their current values. Unknown
// sections or format names are a no-op.
func (s *Store) ApplyFormat(id section.ID, name string) bool {
	format, ok := section.FindFormat(id, name)
	if !ok {
		return false
	}
	return s.Patch(id, format.Overrides)
}

// SetLayoutVariant switches the section's layout discriminant and cascades
// the variant's default overrides as a merge. Unknown variants are a no-op.
func (s *Store) SetLayoutVariant(id section.ID, name string) bool {
	variant, ok := section.FindVariant(id, name)
	if !ok {
		return false
	}
	if !s.Update(id, func(st *section.Settings) { st.SetLayout(name) }) {
		return false
	}
	if len(variant.Overrides) > 0 {
		s.Patch(id, variant.Overrides)
	}
	return true
}

// ResetSection restores one section's settings to a fresh default graph.
// Order and visibility are untouched.
func (s *Store) ResetSection(id section.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.settings[id]; !ok {
		return false
	}
	s.settings[id] = section.DefaultSettings(id, s.pal)
	return true
}

// ResetAll restores the default permutation, hides every section, and
// rebuilds every settings record from defaults.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}
