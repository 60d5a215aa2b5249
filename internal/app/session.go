package app

import (
	"sync/atomic"

	"backoffice_console/internal/domain"
)

// SessionManager holds the current immutable Session and swaps it
// atomically. Readers get a value copy; there is nothing to lock.
type SessionManager struct {
	cur atomic.Pointer[domain.Session]
}

func NewSessionManager(s domain.Session) *SessionManager {
	m := &SessionManager{}
	m.cur.Store(&s)
	return m
}

func (m *SessionManager) Current() domain.Session {
	return *m.cur.Load()
}

// Swap replaces the session wholesale (login, company switch, locale
// change).
func (m *SessionManager) Swap(s domain.Session) {
	m.cur.Store(&s)
}

// Reset clears the stored identity. This is the one cross-cutting side
// effect of an unauthorized upstream response; company and locale survive
// so the login screen keeps its vocabulary.
func (m *SessionManager) Reset() {
	s := m.Current()
	s.Identity = ""
	m.cur.Store(&s)
}
