// Package replay drives a session from a YAML script without a terminal UI.
package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/idilsaglam/packlist/internal/session"
	"github.com/idilsaglam/packlist/internal/view"
)

// Runner dispatches script steps against a session.
type Runner struct {
	sess *session.Session
	log  *zap.Logger
	refs map[string]string // ref -> item id
}

// NewRunner wraps sess.
func NewRunner(sess *session.Session, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{sess: sess, log: log, refs: map[string]string{}}
}

// Run applies every step in order. Steps naming an unknown ref are no-ops, the
// same as a stale id.
func (r *Runner) Run(s *Script) error {
	if s.Sort != "" {
		o, err := view.ParseSortOrder(s.Sort)
		if err != nil {
			return fmt.Errorf("script sort: %w", err)
		}
		r.sess.Dispatch(session.ChangeSort{Order: o})
	}
	for i, st := range s.Events {
		if err := r.step(st); err != nil {
			return fmt.Errorf("event %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *Runner) step(st Step) error {
	switch {
	case st.Add != nil:
		before := r.sess.Store().Snapshot().Len()
		if !r.sess.Dispatch(session.Add{Description: st.Add.Description, Quantity: st.Add.Quantity}) {
			r.log.Debug("replay: add skipped", zap.String("ref", st.Add.Ref))
			return nil
		}
		if st.Add.Ref != "" {
			r.refs[st.Add.Ref] = r.sess.Store().Snapshot().Items()[before].ID
		}
	case st.Toggle != "":
		r.sess.Dispatch(session.Toggle{ID: r.refs[st.Toggle]})
	case st.Delete != "":
		r.sess.Dispatch(session.Delete{ID: r.refs[st.Delete]})
	case st.Sort != "":
		o, err := view.ParseSortOrder(st.Sort)
		if err != nil {
			return err
		}
		r.sess.Dispatch(session.ChangeSort{Order: o})
	case st.Clear:
		r.sess.Dispatch(session.Clear{})
	}
	return nil
}

// WriteJSON encodes the frame as indented JSON.
func WriteJSON(w io.Writer, f session.Frame) error {
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
