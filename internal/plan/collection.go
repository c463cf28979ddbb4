package plan

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// Identifiable is an item that can be stored in a Collection.
type Identifiable interface {
	Identifier() uuid.UUID
}

// Collection is an ordered list of items keyed by their identifier.
// Collections are immutable: every mutation returns a new Collection and leaves the receiver untouched.
type Collection[T Identifiable] struct {
	items []T
}

func NewCollection[T Identifiable](items ...T) Collection[T] {
	return Collection[T]{items: slices.Clone(items)}
}

// Items returns a copy of the items in insertion order.
func (c Collection[T]) Items() []T {
	if c.items == nil {
		return []T{}
	}
	return slices.Clone(c.items)
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

func (c Collection[T]) Get(id uuid.UUID) (T, error) {
	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, NewErrItemNotFound(id)
	}
	return c.items[i], nil
}

// Add appends item. The identifier must not be in the collection already.
func (c Collection[T]) Add(item T) (Collection[T], error) {
	if c.indexOf(item.Identifier()) >= 0 {
		return c, NewErrDuplicateItem(item.Identifier())
	}
	items := make([]T, 0, len(c.items)+1)
	items = append(items, c.items...)
	return Collection[T]{items: append(items, item)}, nil
}

// Update replaces the item with id by the result of fn, keeping its position.
// fn must not change the identifier.
func (c Collection[T]) Update(id uuid.UUID, fn func(T) T) (Collection[T], error) {
	i := c.indexOf(id)
	if i < 0 {
		return c, NewErrItemNotFound(id)
	}
	updated := fn(c.items[i])
	if updated.Identifier() != id {
		return c, NewErrIdentifierChanged(id, updated.Identifier())
	}
	items := slices.Clone(c.items)
	items[i] = updated
	return Collection[T]{items: items}, nil
}

func (c Collection[T]) Remove(id uuid.UUID) (Collection[T], error) {
	i := c.indexOf(id)
	if i < 0 {
		return c, NewErrItemNotFound(id)
	}
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:i]...)
	return Collection[T]{items: append(items, c.items[i+1:]...)}, nil
}

func (c Collection[T]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.Identifier() == id
	})
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	c.items = items
	return nil
}
