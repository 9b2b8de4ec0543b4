package server

import (
	"sync"

	"github.com/miya9209-prog/ms-blog-maker-V1/generator"
)

// Session is one browser tab's latest result: the request that produced it and
// the finished post. Regeneration replaces the whole value; there is no
// history to merge.
type Session struct {
	ID      string            `json:"session_id"`
	Request generator.Request `json:"request"`
	Post    generator.Post    `json:"post"`
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

func (s *sessionStore) set(id string, sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}
