package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bracketpress/bracketpress/internal/section"
)

func TestViewListsSections(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Winter Cup")
	assert.Contains(t, out, section.Label(section.Navigation))
	assert.Contains(t, out, section.Label(section.Footer))
}

func TestViewPreviewShowsVisibleSlots(t *testing.T) {
	m := newTestModel(t)
	assert.Contains(t, m.View(), "Nothing visible yet")

	m.store.SetVisible(section.Hero, true)
	out := m.View()
	assert.NotContains(t, out, "Nothing visible yet")
}

func TestViewThemePaneShowsPreset(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab")

	out := m.View()
	assert.Contains(t, out, "Preset:")
	assert.Contains(t, out, "#")
}

func TestViewHelp(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "?")

	out := m.View()
	assert.Contains(t, out, "Toggle section visibility")
}
