package service

import (
	"sync"

	"github.com/citizenchain/citizenauth/core"
)

// SessionHolder keeps the single active login session of the process.
// Only LoginService writes to it: successful logins replace the session and
// logout clears it.
type SessionHolder struct {
	mu      sync.RWMutex
	session *core.LoginSession
}

// NewSessionHolder creates an empty holder
func NewSessionHolder() *SessionHolder {
	return &SessionHolder{}
}

// Current returns the active session, if any
func (h *SessionHolder) Current() (core.LoginSession, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.session == nil {
		return core.LoginSession{}, false
	}
	return *h.session, true
}

func (h *SessionHolder) set(session core.LoginSession) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.session = &session
}

func (h *SessionHolder) clear() (core.LoginSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		return core.LoginSession{}, false
	}
	prev := *h.session
	h.session = nil
	return prev, true
}
