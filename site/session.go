package site

import (
	"time"

	"github.com/google/uuid"
)

// Session is one visitor's page state. Sessions are never shared; the Site
// and its catalog are.
type Session struct {
	ID      string
	Started time.Time
	State   State
}

// NewSession starts a session on the profile page.
func NewSession() *Session {
	return &Session{
		ID:      uuid.Must(uuid.NewV7()).String(),
		Started: time.Now(),
		State:   State{Page: PageProfile},
	}
}

// Navigate switches page. Inputs entered on other pages are kept.
func (s *Session) Navigate(p Page) {
	s.State.Page = p
}

// Serve renders the session's current state.
func (s *Site) Serve(sess *Session) *View {
	s.logger.Debugw("serve", "session", sess.ID, "page", sess.State.Page.Slug())
	return s.Render(sess.State)
}
