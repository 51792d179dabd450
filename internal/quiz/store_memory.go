package quiz

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore keeps sessions in process memory. Last writer wins on a
// racing double-submit, which is the accepted semantics for a single
// exam-taker.
func NewMemoryStore() SessionStore {
	return &memoryStore{sessions: map[string]Session{}}
}

func (m *memoryStore) Get(_ context.Context, id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNoSession
	}
	return cloneSession(s), nil
}

func (m *memoryStore) Put(_ context.Context, s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = cloneSession(s)
	return nil
}

// cloneSession detaches the answers map so callers never write into stored
// state outside the store's lock; without the copy a mutation between Get
// and Put would reach the shared map unsynchronized.
func cloneSession(s Session) Session {
	answers := make(map[int64][]string, len(s.Answers))
	for id, vals := range s.Answers {
		answers[id] = append([]string(nil), vals...)
	}
	s.Answers = answers
	return s
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
