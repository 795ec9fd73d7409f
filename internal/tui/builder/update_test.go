package builder

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/section"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestUpdateWindowSize(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got, ok := next.(Model)
	require.True(t, ok)
	assert.Equal(t, 120, got.width)
	assert.Equal(t, 40, got.height)
}

func TestSpaceTogglesVisibility(t *testing.T) {
	m := newTestModel(t)
	id, _ := m.SelectedSection()
	assert.False(t, m.store.Visible(id))

	m = press(t, m, " ")
	assert.True(t, m.store.Visible(id))

	m = press(t, m, " ")
	assert.False(t, m.store.Visible(id))
}

func TestShiftJKReorders(t *testing.T) {
	m := newTestModel(t)
	first := m.store.Order()[0]
	second := m.store.Order()[1]

	m = press(t, m, "J")
	assert.Equal(t, second, m.store.Order()[0])
	assert.Equal(t, first, m.store.Order()[1])
	assert.Equal(t, 1, m.cursor, "cursor follows the moved section")

	m = press(t, m, "K")
	assert.Equal(t, first, m.store.Order()[0])
	assert.Equal(t, 0, m.cursor)
}

func TestShiftKAtTopIsNoop(t *testing.T) {
	m := newTestModel(t)
	before := m.store.Order()

	m = press(t, m, "K")
	assert.Equal(t, before, m.store.Order())
	assert.Equal(t, 0, m.cursor)
}

func TestSelectAllAndNone(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "a")
	assert.Equal(t, len(m.store.Order()), m.VisibleCount())

	m = press(t, m, "n")
	assert.Equal(t, 0, m.VisibleCount())
}

func TestVariantCycling(t *testing.T) {
	m := newTestModel(t)

	// Move cursor to hero, which has layout variants.
	order := m.store.Order()
	for i, id := range order {
		if id == section.Hero {
			m.cursor = i
			break
		}
	}

	before := m.store.Settings(section.Hero).Layout()
	m = press(t, m, "v")
	after := m.store.Settings(section.Hero).Layout()
	assert.NotEqual(t, before, after)

	// Cycling through every variant returns to the start.
	for i := 1; i < len(section.Variants(section.Hero)); i++ {
		m = press(t, m, "v")
	}
	assert.Equal(t, before, m.store.Settings(section.Hero).Layout())
}

func TestTabCyclesPanes(t *testing.T) {
	m := newTestModel(t)

	m = press(t, m, "tab")
	assert.Equal(t, ViewTheme, m.GetViewMode())
	m = press(t, m, "tab")
	assert.Equal(t, ViewAssets, m.GetViewMode())
	m = press(t, m, "tab")
	assert.Equal(t, ViewSections, m.GetViewMode())
}

func TestThemePresetApply(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab") // theme pane

	m = press(t, m, "l") // next preset
	preset, ok := m.CurrentPreset()
	require.True(t, ok)

	m = press(t, m, "enter")
	assert.Equal(t, preset.Colors.Normalized(), m.store.BaseColors())
}

func TestHelpOverlayRestoresPane(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "tab") // theme pane
	m = press(t, m, "?")
	assert.Equal(t, ViewHelp, m.GetViewMode())

	m = press(t, m, "esc")
	assert.Equal(t, ViewTheme, m.GetViewMode())
}

func TestErrorBannerLifecycle(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(ErrorMsg{Message: "boom"})
	m = next.(Model)
	assert.True(t, m.showError)

	next, _ = m.Update(ClearErrorMsg{})
	m = next.(Model)
	assert.False(t, m.showError)
}

func TestAssetUploadedMessageSetsStatus(t *testing.T) {
	m := newTestModel(t)

	asset, err := m.assets.Upload("logo.png", readerOf("fake"))
	require.NoError(t, err)

	next, _ := m.Update(AssetUploadedMsg{Asset: asset})
	m = next.(Model)
	assert.Contains(t, m.statusMsg, "logo.png")
}

func TestAssignWithoutImageSlotShowsError(t *testing.T) {
	m := newTestModel(t)

	_, err := m.assets.Upload("logo.png", readerOf("fake"))
	require.NoError(t, err)

	// Park the section cursor on FAQ, which has no image slot.
	for i, id := range m.store.Order() {
		if id == section.FAQ {
			m.cursor = i
			break
		}
	}
	m = press(t, m, "tab", "tab") // assets pane
	m = press(t, m, "enter")
	assert.True(t, m.showError)
}

func TestAssignToHeroBackground(t *testing.T) {
	m := newTestModel(t)

	_, err := m.assets.Upload("bg.png", readerOf("fake"))
	require.NoError(t, err)

	for i, id := range m.store.Order() {
		if id == section.Hero {
			m.cursor = i
			break
		}
	}
	m = press(t, m, "tab", "tab")
	m = press(t, m, "enter")

	assert.NotEmpty(t, m.store.Settings(section.Hero).Hero.BackgroundImage)
	list := m.assets.List()
	require.Len(t, list, 1)
	assert.Contains(t, list[0].UsedIn, "Hero background")
}

func TestRenameAsset(t *testing.T) {
	m := newTestModel(t)

	a, err := m.assets.Upload("logo.png", readerOf("fake"))
	require.NoError(t, err)

	m = press(t, m, "tab", "tab")
	m = press(t, m, "R")
	assert.True(t, m.renaming)
	assert.Equal(t, "logo.png", m.rename.Value())

	m = press(t, m, "2", "enter")
	assert.False(t, m.renaming)

	got, ok := m.assets.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "logo.png2", got.Name)
}

func TestRenameCancelKeepsName(t *testing.T) {
	m := newTestModel(t)

	a, err := m.assets.Upload("logo.png", readerOf("fake"))
	require.NoError(t, err)

	m = press(t, m, "tab", "tab")
	m = press(t, m, "R", "x", "esc")
	assert.False(t, m.renaming)

	got, ok := m.assets.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, "logo.png", got.Name)
}
