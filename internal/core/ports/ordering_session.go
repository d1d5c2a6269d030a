// Package ports defines the contracts between the application core and the
// surrounding infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// OrderingSession provides access to the shared OrderingSystem for one
// logical operation. The domain performs no internal locking, so the session
// is the boundary where a multi-actor deployment (HTTP handlers, background
// jobs) gets serialized down to the single logical actor the core assumes.
type OrderingSession interface {
	// Execute runs op against the ordering system. The system must not be
	// retained or touched after op returns; all reads and writes happen
	// inside the callback.
	Execute(ctx context.Context, op func(system *services.OrderingSystem) error) error
}

// SessionFactory creates sessions for command and query handlers.
// Handlers acquire a fresh session per operation rather than holding one,
// keeping operations independent.
type SessionFactory interface {
	Create() OrderingSession
}
