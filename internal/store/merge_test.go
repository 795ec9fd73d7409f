package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeepMergeNestedMaps(t *testing.T) {
	t.Parallel()

	dst := map[string]any{
		"padding": map[string]any{"top": 16, "bottom": 16},
		"heading": "About",
	}
	out := deepMerge(dst, map[string]any{
		"padding": map[string]any{"top": 4},
	})

	padding := out["padding"].(map[string]any)
	assert.Equal(t, 4, padding["top"])
	assert.Equal(t, 16, padding["bottom"])
	assert.Equal(t, "About", out["heading"])
}

func TestDeepMergeExplicitZeroWins(t *testing.T) {
	t.Parallel()

	out := deepMerge(
		map[string]any{"cta": map[string]any{"enabled": true, "label": "Go"}},
		map[string]any{"cta": map[string]any{"enabled": false}},
	)
	cta := out["cta"].(map[string]any)
	assert.Equal(t, false, cta["enabled"])
	assert.Equal(t, "Go", cta["label"])
}

func TestDeepMergeReplacesArraysWholesale(t *testing.T) {
	t.Parallel()

	out := deepMerge(
		map[string]any{"items": []any{"a", "b", "c"}},
		map[string]any{"items": []any{"z"}},
	)
	assert.Equal(t, []any{"z"}, out["items"])
}

func TestDeepMergeTypeMismatchReplaces(t *testing.T) {
	t.Parallel()

	out := deepMerge(
		map[string]any{"value": "scalar"},
		map[string]any{"value": map[string]any{"nested": 1}},
	)
	assert.Equal(t, map[string]any{"nested": 1}, out["value"])
}

func TestDeepMergeNilDestination(t *testing.T) {
	t.Parallel()

	out := deepMerge(nil, map[string]any{"a": 1})
	assert.Equal(t, 1, out["a"])
}
