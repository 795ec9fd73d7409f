package section

import "github.com/google/uuid"

// NewItemID generates a fresh id for a child-list item. Ids are stable for
// the life of the item: reorders and edits never reassign them.
func NewItemID() string {
	return uuid.NewString()[:8]
}

// Item is implemented by every child-list element (menu items, bullets,
// rounds, teams, FAQ entries, ...).
type Item interface {
	ItemID() string
}

// AppendItem adds an item to the end of a list.
func AppendItem[T Item](list []T, item T) []T {
	return append(list, item)
}

// RemoveItem removes exactly the item with the given id, preserving the
// relative order of the rest. Unknown ids leave the list untouched.
func RemoveItem[T Item](list []T, id string) []T {
	for i, it := range list {
		if it.ItemID() == id {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			return append(out, list[i+1:]...)
		}
	}
	return list
}

// MoveItem removes the element at from and reinserts it at to. Out-of-bounds
// or equal indices are a no-op.
func MoveItem[T any](list []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(list) || to >= len(list) {
		return list
	}
	out := make([]T, 0, len(list))
	out = append(out, list...)
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}

// UpdateItem applies fn to the item with the given id, in place. Unknown ids
// are a no-op. Reports whether an item was updated.
func UpdateItem[T Item](list []T, id string, fn func(*T)) bool {
	for i := range list {
		if list[i].ItemID() == id {
			fn(&list[i])
			return true
		}
	}
	return false
}

// FindItem returns a pointer to the item with the given id.
func FindItem[T Item](list []T, id string) (*T, bool) {
	for i := range list {
		if list[i].ItemID() == id {
			return &list[i], true
		}
	}
	return nil, false
}
