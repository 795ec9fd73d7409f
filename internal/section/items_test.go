package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuList() []MenuItem {
	return []MenuItem{
		{ID: "a", Label: "Home"},
		{ID: "b", Label: "Bracket"},
		{ID: "c", Label: "Teams"},
		{ID: "d", Label: "Watch"},
	}
}

func ids(list []MenuItem) []string {
	out := make([]string, len(list))
	for i, m := range list {
		out[i] = m.ID
	}
	return out
}

func TestNewItemIDIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewItemID()
		require.Len(t, id, 8)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestRemoveItemPreservesRelativeOrder(t *testing.T) {
	t.Parallel()

	out := RemoveItem(menuList(), "b")
	assert.Equal(t, []string{"a", "c", "d"}, ids(out))
}

func TestRemoveItemUnknownIDIsNoop(t *testing.T) {
	t.Parallel()

	list := menuList()
	assert.Equal(t, ids(list), ids(RemoveItem(list, "zz")))
}

func TestAddThenRemoveUnrelatedKeepsSurvivorIDs(t *testing.T) {
	t.Parallel()

	list := AppendItem(menuList(), MenuItem{ID: "e", Label: "Extra"})
	list = RemoveItem(list, "e")
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(list))
}

func TestMoveItemThenBackRestoresOrder(t *testing.T) {
	t.Parallel()

	orig := menuList()
	moved := MoveItem(orig, 0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(moved))
	restored := MoveItem(moved, 2, 0)
	assert.Equal(t, ids(orig), ids(restored))
}

func TestMoveItemDegenerateInputs(t *testing.T) {
	t.Parallel()

	list := menuList()
	assert.Equal(t, ids(list), ids(MoveItem(list, 1, 1)))
	assert.Equal(t, ids(list), ids(MoveItem(list, -1, 2)))
	assert.Equal(t, ids(list), ids(MoveItem(list, 0, 99)))
}

func TestUpdateItemTargetsExactlyOne(t *testing.T) {
	t.Parallel()

	list := menuList()
	ok := UpdateItem(list, "c", func(m *MenuItem) { m.Label = "Rosters" })
	require.True(t, ok)
	assert.Equal(t, "Rosters", list[2].Label)
	assert.Equal(t, "Home", list[0].Label)

	assert.False(t, UpdateItem(list, "zz", func(m *MenuItem) { m.Label = "x" }))
}

func TestFindItem(t *testing.T) {
	t.Parallel()

	list := menuList()
	item, ok := FindItem(list, "d")
	require.True(t, ok)
	assert.Equal(t, "Watch", item.Label)

	_, ok = FindItem(list, "zz")
	assert.False(t, ok)
}
