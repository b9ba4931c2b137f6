package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packlist/internal/store"
	"github.com/idilsaglam/packlist/internal/view"
)

type bogus struct{ Event }

func newSession() *Session {
	return New(store.New(), view.SortInput, nil)
}

func idOf(t *testing.T, s *Session, desc string) string {
	t.Helper()
	for _, it := range s.Frame().Items {
		if it.Description == desc {
			return it.ID
		}
	}
	t.Fatalf("no item %q", desc)
	return ""
}

func TestSession_Scenario(t *testing.T) {
	s := newSession()

	assert.True(t, s.Dispatch(Add{Description: "Passport", Quantity: 1}))
	assert.True(t, s.Dispatch(Add{Description: "Sunscreen", Quantity: 2}))
	assert.True(t, s.Dispatch(Toggle{ID: idOf(t, s, "Passport")}))

	f := s.Frame()
	assert.Equal(t, 1, f.Stats.Packed)
	assert.Equal(t, 50, f.Stats.Percentage)

	assert.True(t, s.Dispatch(Delete{ID: idOf(t, s, "Sunscreen")}))
	assert.Len(t, s.Frame().Items, 1)

	assert.True(t, s.Dispatch(Clear{}))
	f = s.Frame()
	assert.Empty(t, f.Items)
	assert.True(t, f.Stats.Empty())
}

func TestSession_NoopsReportNoChange(t *testing.T) {
	s := newSession()
	assert.False(t, s.Dispatch(Add{Description: "", Quantity: 1}))
	assert.False(t, s.Dispatch(Delete{ID: "gone"}))
	assert.False(t, s.Dispatch(Toggle{ID: "gone"}))
	assert.False(t, s.Dispatch(Clear{}))
	assert.False(t, s.Dispatch(ChangeSort{Order: view.SortInput}))
}

func TestSession_SortAffectsOnlyTheFrame(t *testing.T) {
	s := newSession()
	for _, d := range []string{"Socks", "Hat", "Boots"} {
		s.Dispatch(Add{Description: d, Quantity: 1})
	}

	require.True(t, s.Dispatch(ChangeSort{Order: view.SortDescription}))
	assert.Equal(t, view.SortDescription, s.Order())
	assert.Equal(t, "description", s.Frame().Sort)
	assert.Equal(t, []string{"Boots", "Hat", "Socks"}, descs(s.Frame()))

	stored := s.Store().Snapshot().Items()
	assert.Equal(t, "Socks", stored[0].Description)

	s.Dispatch(ChangeSort{Order: view.SortInput})
	assert.Equal(t, []string{"Socks", "Hat", "Boots"}, descs(s.Frame()))
}

func TestSession_UnknownEvent(t *testing.T) {
	s := newSession()
	changed, err := s.Apply(bogus{})
	require.ErrorIs(t, err, ErrUnknownEvent)
	assert.False(t, changed)
	assert.False(t, s.Dispatch(bogus{}))
}

func descs(f Frame) []string {
	out := make([]string, 0, len(f.Items))
	for _, it := range f.Items {
		out = append(out, it.Description)
	}
	return out
}

func TestSession_FollowsStoreChanges(t *testing.T) {
	st := store.New()
	s := New(st, view.SortInput, nil)
	assert.Equal(t, 0, s.Revision())

	// changes made straight on the store still count
	st.Add("Passport", 1)
	assert.Equal(t, 1, s.Revision())
	s.Dispatch(ChangeSort{Order: view.SortDescription})
	assert.Equal(t, 2, s.Revision())
	s.Dispatch(Toggle{ID: "gone"})
	assert.Equal(t, 2, s.Revision())

	s.Close()
	st.Add("Hat", 1)
	assert.Equal(t, 2, s.Revision())
	assert.Len(t, s.Frame().Items, 2)
}
