package store

import (
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
)

// BaseColors returns the current base color seed.
func (s *Store) BaseColors() palette.BaseColors {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.base
}

// Palette returns the current derived palette.
func (s *Store) Palette() palette.Palette {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pal
}

// SetBaseColors replaces the base color seed, rederives the palette, and
// runs one propagation pass: every section field still holding the previous
// palette's value for its linked role is rewritten to the next palette's
// value, while user-overridden fields are left alone. Returns the ids of
// sections whose settings changed so unchanged sections skip re-render.
func (s *Store) SetBaseColors(base palette.BaseColors) []section.ID {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := palette.Derive(base)
	prev := s.pal
	s.base = base.Normalized()
	s.pal = next

	if prev == next {
		return nil
	}

	var dirty []section.ID
	for _, id := range s.order {
		if st := s.settings[id]; st != nil && st.SyncPalette(prev, next) {
			dirty = append(dirty, id)
		}
	}
	return dirty
}

// BaseColorRole names one editable seed color.
type BaseColorRole string

const (
	BasePrimary    BaseColorRole = "primary"
	BaseSecondary  BaseColorRole = "secondary"
	BaseAccent     BaseColorRole = "accent"
	BaseBackground BaseColorRole = "background"
	BaseText       BaseColorRole = "text"
	BaseSurface    BaseColorRole = "surface"
	BaseSurfaceAlt BaseColorRole = "surface_alt"
)

// BaseColorRoles lists the editable seed roles in display order.
func BaseColorRoles() []BaseColorRole {
	return []BaseColorRole{
		BasePrimary, BaseSecondary, BaseAccent, BaseBackground,
		BaseText, BaseSurface, BaseSurfaceAlt,
	}
}

// SetBaseColor updates a single seed role. The value is normalized first;
// garbage becomes black rather than an error. Unknown roles are a no-op.
func (s *Store) SetBaseColor(role BaseColorRole, hex string) []section.ID {
	base := s.BaseColors()
	value := palette.Normalize(hex)

	switch role {
	case BasePrimary:
		base.Primary = value
	case BaseSecondary:
		base.Secondary = value
	case BaseAccent:
		base.Accent = value
	case BaseBackground:
		base.Background = value
	case BaseText:
		base.Text = value
	case BaseSurface:
		base.Surface = value
	case BaseSurfaceAlt:
		base.SurfaceAlt = value
	default:
		return nil
	}
	return s.SetBaseColors(base)
}

// BaseColor reads a single seed role.
func (s *Store) BaseColor(role BaseColorRole) string {
	base := s.BaseColors()
	switch role {
	case BasePrimary:
		return base.Primary
	case BaseSecondary:
		return base.Secondary
	case BaseAccent:
		return base.Accent
	case BaseBackground:
		return base.Background
	case BaseText:
		return base.Text
	case BaseSurface:
		return base.Surface
	case BaseSurfaceAlt:
		return base.SurfaceAlt
	default:
		return ""
	}
}

// ApplyThemePreset swaps in a named preset's seed colors and propagates.
func (s *Store) ApplyThemePreset(p palette.Preset) []section.ID {
	return s.SetBaseColors(p.Colors)
}
