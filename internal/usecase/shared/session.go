package shared

import (
	"context"
	"sync"

	"boat-scheduler/internal/domain/confirm"
	"boat-scheduler/internal/domain/schedule"
	"boat-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNilStore = errs.New("session mutation returned no store")

// Session is one operator's working schedule and confirmation gate. Every intent runs under
// the session lock, so requests from the same operator are serialized.
type Session struct {
	mu         sync.Mutex
	operatorID uuid.UUID
	store      *schedule.Store
	gate       *confirm.Gate
}

func NewSession(operatorID uuid.UUID, store *schedule.Store, gate *confirm.Gate) *Session {
	return &Session{
		operatorID: operatorID,
		store:      store,
		gate:       gate,
	}
}

func (s *Session) OperatorID() uuid.UUID {
	return s.operatorID
}

func (s *Session) Gate() *confirm.Gate {
	return s.gate
}

// Snapshot returns the published store. Published stores are never mutated, so the caller
// may read it without holding the lock.
func (s *Session) Snapshot() *schedule.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store
}

// Apply runs fn against the current store and publishes the store it returns.
// When fn fails the current store stays published.
func Apply[T any](s *Session, fn func(current *schedule.Store) (*schedule.Store, T, error)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	next, result, err := fn(s.store)
	if err != nil {
		return zero, err
	}
	if next == nil {
		return zero, ErrNilStore
	}
	s.store = next
	return result, nil
}

// SessionRepository hands out sessions keyed by operator id.
type SessionRepository interface {
	// Acquire returns the operator's session, loading a fresh schedule when there is none.
	Acquire(ctx context.Context, operatorID uuid.UUID) (*Session, error)
	// Drop forgets the session and disarms its gate.
	Drop(operatorID uuid.UUID) bool
}
