package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"resumelens/internal/errors"
)

// MemoryStore keeps sessions in a mutex-guarded map. It is the default
// driver; sessions are lost on restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]ResumeSession
}

// Ensure MemoryStore implements Store
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[uuid.UUID]ResumeSession),
	}
}

// CreateSession stores a new session, assigning an ID and timestamps
// when they are unset.
func (s *MemoryStore) CreateSession(_ context.Context, session *ResumeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	now := time.Now().UTC()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	if _, exists := s.sessions[session.ID]; exists {
		return errors.NewStorageError(errors.ErrCodeStorageFailed,
			fmt.Sprintf("Session already exists: %s", session.ID), nil)
	}

	s.sessions[session.ID] = *session
	return nil
}

// GetSession returns a copy of the stored session.
func (s *MemoryStore) GetSession(_ context.Context, id uuid.UUID) (*ResumeSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.NewStorageError(errors.ErrCodeSessionNotFound,
			fmt.Sprintf("Session not found: %s", id), nil)
	}
	return &session, nil
}

// UpdateSession replaces an existing session.
func (s *MemoryStore) UpdateSession(_ context.Context, session *ResumeSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return errors.NewStorageError(errors.ErrCodeSessionNotFound,
			fmt.Sprintf("Session not found: %s", session.ID), nil)
	}

	session.UpdatedAt = time.Now().UTC()
	s.sessions[session.ID] = *session
	return nil
}

// ListSessions returns all sessions, newest first.
func (s *MemoryStore) ListSessions(_ context.Context) ([]ResumeSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]ResumeSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
