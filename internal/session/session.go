// Package session turns user intents into store mutations and produces the
// frame a presentation layer renders.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/view"
)

// ErrUnknownEvent is returned by Apply for event types it cannot handle.
var ErrUnknownEvent = errors.New("unknown event")

// Event is a user intent.
type Event interface{ isEvent() }

// Add submits the add form.
type Add struct {
	Description string
	Quantity    int
}

// Delete removes one item.
type Delete struct{ ID string }

// Toggle flips one item's packed flag.
type Toggle struct{ ID string }

// Clear empties the list.
type Clear struct{}

// ChangeSort switches the display order.
type ChangeSort struct{ Order view.SortOrder }

func (Add) isEvent()        {}
func (Delete) isEvent()     {}
func (Toggle) isEvent()     {}
func (Clear) isEvent()      {}
func (ChangeSort) isEvent() {}

// Frame is everything needed to draw the screen once.
type Frame struct {
	Items []model.Item   `json:"items"`
	Order view.SortOrder `json:"-"`
	Sort  string         `json:"sort"`
	Stats view.Stats     `json:"stats"`
	// Message is the footer line; never a NaN or a percentage of nothing.
	Message string `json:"message"`
}

// Session pairs a Store with the transient sort order.
type Session struct {
	store *store.Store
	order view.SortOrder
	log   *zap.Logger

	// rev counts published store snapshots plus sort changes.
	rev    int
	cancel func()
}

// New wraps st and subscribes to its changes. A nil logger is replaced by a
// no-op one.
func New(st *store.Store, order view.SortOrder, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{store: st, order: order, log: log}
	s.cancel = st.Subscribe(func(l store.List) {
		s.rev++
		s.log.Debug("list changed", zap.Int("items", l.Len()), zap.Int("rev", s.rev))
	})
	return s
}

// Close stops following the store. Later store changes no longer count.
func (s *Session) Close() { s.cancel() }

// Revision increases every time something visible changes.
func (s *Session) Revision() int { return s.rev }

// Store returns the underlying store.
func (s *Session) Store() *store.Store { return s.store }

// Order returns the current display order.
func (s *Session) Order() view.SortOrder { return s.order }

// Apply handles ev and reports whether anything visible changed.
func (s *Session) Apply(ev Event) (bool, error) {
	before := s.rev
	switch e := ev.(type) {
	case Add:
		s.store.Add(e.Description, e.Quantity)
	case Delete:
		s.store.Delete(e.ID)
	case Toggle:
		s.store.Toggle(e.ID)
	case Clear:
		s.store.Clear()
	case ChangeSort:
		if e.Order != s.order {
			s.log.Debug("sort changed", zap.Stringer("from", s.order), zap.Stringer("to", e.Order))
			s.order = e.Order
			s.rev++
		}
	default:
		return false, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
	}
	return s.rev != before, nil
}

// Dispatch is Apply for callers that have nothing to do with the error.
func (s *Session) Dispatch(ev Event) bool {
	changed, err := s.Apply(ev)
	if err != nil {
		s.log.Warn("dispatch", zap.Error(err))
	}
	return changed
}

// Frame computes the current view.
func (s *Session) Frame() Frame {
	items := s.store.Snapshot().Items()
	stats := view.Compute(items)
	return Frame{
		Items:   view.Sort(items, s.order),
		Order:   s.order,
		Sort:    s.order.String(),
		Stats:   stats,
		Message: stats.Message(),
	}
}
