package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bracketpress/bracketpress/internal/palette"
	"github.com/bracketpress/bracketpress/internal/section"
)

func TestSetBaseColorPropagatesToLinkedFields(t *testing.T) {
	s := newTestStore(t)
	prev := s.Palette()

	dirty := s.SetBaseColor(BaseSurface, "#401020")
	next := s.Palette()
	require.NotEqual(t, prev.NavBackground, next.NavBackground)

	assert.Contains(t, dirty, section.Navigation)
	assert.Equal(t, next.NavBackground, s.Settings(section.Navigation).Navigation.BackgroundColor)
}

func TestSetBaseColorLeavesOverriddenFieldsAlone(t *testing.T) {
	s := newTestStore(t)

	s.Update(section.Footer, func(st *section.Settings) {
		st.Footer.BackgroundColor = "#ff0055" // manual override
	})

	s.SetBaseColor(BaseSurfaceAlt, "#224466")
	next := s.Palette()

	footer := s.Settings(section.Footer).Footer
	assert.Equal(t, "#ff0055", footer.BackgroundColor)
	// Fields that were never touched still follow the theme.
	assert.Equal(t, next.FooterText, footer.TextColor)
}

func TestDirtySetSkipsUntouchedSections(t *testing.T) {
	s := newTestStore(t)

	// Accent only feeds accent_soft, accent_strong, footer_link, badge.
	dirty := s.SetBaseColor(BaseAccent, "#112233")

	assert.Contains(t, dirty, section.Program)
	assert.Contains(t, dirty, section.Stats)
	assert.Contains(t, dirty, section.Footer)
	assert.NotContains(t, dirty, section.Navigation)
	assert.NotContains(t, dirty, section.Stream)
}

func TestSetBaseColorsNoChangeReturnsNothing(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.SetBaseColors(s.BaseColors()))
}

func TestSetBaseColorNormalizesGarbage(t *testing.T) {
	s := newTestStore(t)

	s.SetBaseColor(BaseText, "definitely not a color")
	assert.Equal(t, "#000000", s.BaseColor(BaseText))

	assert.Nil(t, s.SetBaseColor("chartreuse", "#123456"))
	assert.Equal(t, "", s.BaseColor("chartreuse"))
}

func TestCoincidentalValueIsSweptForward(t *testing.T) {
	s := newTestStore(t)
	prev := s.Palette()

	// The user types the exact palette hex by hand. Value-equality link
	// tracking cannot tell this apart from a linked field, so the next
	// theme change sweeps it forward. Accepted behavior, not a bug.
	s.Update(section.Stream, func(st *section.Settings) {
		st.Stream.FrameColor = prev.SurfaceBorder
	})

	s.SetBaseColor(BaseSurface, "#311144")
	next := s.Palette()
	assert.Equal(t, next.SurfaceBorder, s.Settings(section.Stream).Stream.FrameColor)
}

func TestApplyThemePreset(t *testing.T) {
	s := newTestStore(t)
	preset, ok := palette.BuiltinPreset("scarlet")
	require.True(t, ok)

	dirty := s.ApplyThemePreset(preset)
	assert.NotEmpty(t, dirty)
	assert.Equal(t, preset.Colors, s.BaseColors())
	assert.Equal(t, palette.Derive(preset.Colors), s.Palette())
}

func TestPropagationIsSingleLogicalStep(t *testing.T) {
	s := newTestStore(t)

	// Two linked fields of the same section must both move in one call.
	s.SetBaseColor(BaseText, "#eeeeff")
	next := s.Palette()
	faq := s.Settings(section.FAQ).FAQ
	assert.Equal(t, next.Heading, faq.QuestionColor)
	assert.Equal(t, next.MutedText, faq.AnswerColor)
}
