// Package store owns the packing list for the lifetime of a session.
//
// A Store is not safe for concurrent use. The presentation layer drives it from a
// single goroutine and every call completes before the next one starts.
package store

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/packlist/internal/model"
)

// Store holds the current List and publishes every change to its subscribers.
type Store struct {
	list   List
	newID  func() string
	log    *zap.Logger
	subs   []subscription
	nextID int
}

type subscription struct {
	id int
	fn func(List)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithIDFunc replaces the id generator. Generated ids must never repeat.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		newID: uuid.NewString,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current List.
func (s *Store) Snapshot() List { return s.list }

// Add appends a new unpacked item. A blank description is ignored and the
// current snapshot is returned unchanged.
func (s *Store) Add(description string, quantity int) List {
	description = strings.TrimSpace(description)
	if description == "" {
		s.log.Debug("add ignored: empty description")
		return s.list
	}
	it := model.Item{
		ID:          s.newID(),
		Description: description,
		Quantity:    model.ClampQuantity(quantity),
	}
	return s.commit(s.list.Append(it), "item added",
		zap.String("id", it.ID),
		zap.String("description", it.Description),
		zap.Int("quantity", it.Quantity))
}

// Delete removes the item with the given id. Unknown ids are ignored.
func (s *Store) Delete(id string) List {
	return s.commit(s.list.Delete(id), "item deleted", zap.String("id", id))
}

// Toggle flips the packed flag of the item with the given id. Unknown ids are ignored.
func (s *Store) Toggle(id string) List {
	next := s.list.Toggle(id)
	it, _ := next.Find(id)
	return s.commit(next, "item toggled", zap.String("id", id), zap.Bool("packed", it.Packed))
}

// Clear empties the list.
func (s *Store) Clear() List {
	return s.commit(s.list.Clear(), "list cleared", zap.Int("removed", s.list.Len()))
}

// Subscribe registers fn to be called after every change. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(List)) (cancel func()) {
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// commit installs next as the current snapshot and notifies subscribers.
// No-op operations hand back the current snapshot and publish nothing.
func (s *Store) commit(next List, msg string, fields ...zap.Field) List {
	if next.Same(s.list) {
		return s.list
	}
	s.list = next
	s.log.Debug(msg, fields...)
	for _, sub := range s.subs {
		sub.fn(next)
	}
	return next
}
