// Package session holds the in-memory map of live chat sessions. Sessions
// never touch the database: a process restart forces re-authentication.
package session

import (
	"sync"

	"factory-backend/internal/models"
)

// Flow is the current dialog position of a session. Concrete variants are
// defined by the dialog package; each carries only the fields its own step
// has collected.
type Flow interface {
	Name() string
}

// AccountRef is the resolved account attached to a session after a
// successful login.
type AccountRef struct {
	Login string
	Name  string
	Role  string
}

// IsAdmin reports whether the attached account holds the admin role
func (a *AccountRef) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// Session is one identity's live dialog state.
type Session struct {
	Identity int64
	Account  *AccountRef // nil until authenticated
	Flow     Flow
}

// Registry maps chat identities to live sessions. Lookup/insert/delete are
// guarded so the dispatch loop can be parallelised later; individual
// session mutation stays single-owner per identity.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]*Session)}
}

// Lookup returns the live session for an identity, if any
func (r *Registry) Lookup(identity int64) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[identity]
	return s, ok
}

// Create inserts a fresh session for an identity, replacing any previous one
func (r *Registry) Create(identity int64, flow Flow) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := &Session{Identity: identity, Flow: flow}
	r.sessions[identity] = s
	return s
}

// Evict removes an identity's session
func (r *Registry) Evict(identity int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, identity)
}

// AdminIdentities returns the identities of all authenticated admin sessions
func (r *Registry) AdminIdentities() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []int64
	for id, s := range r.sessions {
		if s.Account != nil && s.Account.IsAdmin() {
			ids = append(ids, id)
		}
	}
	return ids
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
