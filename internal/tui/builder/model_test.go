package builder

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/assets"
	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	log, err := logger.New(logger.Options{Writer: io.Discard})
	require.NoError(t, err)

	return NewModel(Options{
		Store:       store.New(log),
		Assets:      assets.NewRegistry(log),
		ProjectName: "Winter Cup",
		Unicode:     true,
	})
}

func readerOf(s string) io.Reader {
	return strings.NewReader(s)
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, ViewSections, m.GetViewMode())
	assert.Equal(t, 0, m.cursor)

	id, ok := m.SelectedSection()
	require.True(t, ok)
	assert.Equal(t, section.Navigation, id)
}

func TestNewModelIncludesBuiltinPresets(t *testing.T) {
	m := newTestModel(t)
	assert.GreaterOrEqual(t, len(m.presets), len(palette.BuiltinPresets()))

	preset, ok := m.CurrentPreset()
	require.True(t, ok)
	assert.NotEmpty(t, preset.Name)
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel(t)

	m.MoveCursorUp()
	assert.Equal(t, len(m.store.Order())-1, m.cursor)

	m.MoveCursorDown()
	assert.Equal(t, 0, m.cursor)
}

func TestVisibleCount(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 0, m.VisibleCount())

	m.store.SetVisible(section.Hero, true)
	m.store.SetVisible(section.Footer, true)
	assert.Equal(t, 2, m.VisibleCount())
}

func TestSelectedAssetEmptyRegistry(t *testing.T) {
	m := newTestModel(t)
	_, ok := m.SelectedAsset()
	assert.False(t, ok)
}

func TestImageTargets(t *testing.T) {
	m := newTestModel(t)

	for _, id := range []section.ID{section.Navigation, section.Hero, section.About} {
		_, ok := m.imageTarget(id)
		assert.True(t, ok, string(id))
	}
	_, ok := m.imageTarget(section.FAQ)
	assert.False(t, ok)
}

func TestImageTargetWritesSetting(t *testing.T) {
	m := newTestModel(t)

	target, ok := m.imageTarget(section.Hero)
	require.True(t, ok)
	target.Set("data:image/png;base64,Zm9v")

	assert.Equal(t, "data:image/png;base64,Zm9v", m.store.Settings(section.Hero).Hero.BackgroundImage)
}
