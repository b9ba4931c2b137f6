package store

import "github.com/idilsaglam/packlist/internal/model"

// List is an immutable snapshot of the packing list in insertion order.
// Every operation returns a new List; the receiver is never modified.
// Operations that change nothing return the receiver itself.
type List struct {
	items []model.Item
}

// Len returns the number of items.
func (l List) Len() int { return len(l.items) }

// Items returns a copy of the items in insertion order.
func (l List) Items() []model.Item {
	out := make([]model.Item, len(l.items))
	copy(out, l.items)
	return out
}

// Find returns the item with the given id.
func (l List) Find(id string) (model.Item, bool) {
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	return model.Item{}, false
}

// Same reports whether o is the very same snapshot as l, i.e. nothing changed
// between them.
func (l List) Same(o List) bool {
	if len(l.items) != len(o.items) {
		return false
	}
	if len(l.items) == 0 {
		return true
	}
	return &l.items[0] == &o.items[0]
}

// Append returns a new List with it at the end.
func (l List) Append(it model.Item) List {
	out := make([]model.Item, len(l.items), len(l.items)+1)
	copy(out, l.items)
	return List{items: append(out, it)}
}

// Delete returns a new List without the item matching id.
func (l List) Delete(id string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := make([]model.Item, 0, len(l.items)-1)
	out = append(out, l.items[:i]...)
	out = append(out, l.items[i+1:]...)
	return List{items: out}
}

// Toggle returns a new List with the Packed flag of the item matching id inverted.
func (l List) Toggle(id string) List {
	i := l.index(id)
	if i < 0 {
		return l
	}
	out := l.Items()
	out[i].Packed = !out[i].Packed
	return List{items: out}
}

// Clear returns the empty List.
func (l List) Clear() List { return List{} }

func (l List) index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}
