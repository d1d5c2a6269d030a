// Package inmemory provides the in-process implementation of the ordering
// session port: a single mutex around the process-wide OrderingSystem.
package inmemory

import (
	"context"
	"sync"

	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"
)

// SerializedSystem wraps the shared OrderingSystem behind one mutex so that
// concurrent callers are reduced to the single logical actor the domain
// assumes. It implements both ports.SessionFactory and ports.OrderingSession;
// sessions share the same lock, so every operation is fully serialized.
type SerializedSystem struct {
	mu     sync.Mutex
	system *services.OrderingSystem
}

// NewSerializedSystem creates a serialized wrapper around the given system.
func NewSerializedSystem(system *services.OrderingSystem) *SerializedSystem {
	return &SerializedSystem{system: system}
}

// Create returns a session bound to the shared system.
func (s *SerializedSystem) Create() ports.OrderingSession {
	return s
}

// Execute runs op under the system-wide lock.
// A context already cancelled before the lock is acquired aborts the
// operation; once op starts it runs to completion.
func (s *SerializedSystem) Execute(ctx context.Context, op func(system *services.OrderingSystem) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return op(s.system)
}
