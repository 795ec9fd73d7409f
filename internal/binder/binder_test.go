package binder

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/logger"
	"github.com/bracketpress/bracketpress/internal/section"
	"github.com/bracketpress/bracketpress/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	log, err := logger.New(logger.Options{Writer: io.Discard})
	require.NoError(t, err)
	return store.New(log)
}

func TestPlanExcludesHiddenSections(t *testing.T) {
	s := newTestStore(t)
	assert.Empty(t, Plan(s), "all sections start hidden")

	s.SetVisible(section.Hero, true)
	s.SetVisible(section.Footer, true)

	slots := Plan(s)
	require.Len(t, slots, 2)
	assert.Equal(t, section.Hero, slots[0].ID)
	assert.Equal(t, section.Footer, slots[1].ID)
}

func TestPlanIndicesAreDense(t *testing.T) {
	s := newTestStore(t)
	s.SetVisible(section.About, true)
	s.SetVisible(section.Stream, true)
	s.SetVisible(section.Footer, true)

	for i, slot := range Plan(s) {
		assert.Equal(t, i, slot.Index)
	}
}

func TestPlanFollowsReorder(t *testing.T) {
	s := newTestStore(t)
	s.SetVisible(section.Hero, true)
	s.SetVisible(section.Footer, true)

	require.True(t, s.MoveSection(section.Footer, section.Navigation))

	slots := Plan(s)
	require.Len(t, slots, 2)
	assert.Equal(t, section.Footer, slots[0].ID)
	assert.Equal(t, section.Hero, slots[1].ID)
}

func TestPlanCarriesLayoutDiscriminant(t *testing.T) {
	s := newTestStore(t)
	s.SetVisible(section.Hero, true)
	s.SetLayoutVariant(section.Hero, "story-left")

	slots := Plan(s)
	require.Len(t, slots, 1)
	assert.Equal(t, "story-left", slots[0].Layout)
	assert.Equal(t, "Hero", slots[0].Label)
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "#hero", Anchor(section.Hero))
}
