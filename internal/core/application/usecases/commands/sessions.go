// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, session acquisition,
// and a single atomic operation against the ordering system.
package commands

import (
	"restaurant/internal/core/ports"
)

// SessionFactory creates ordering sessions for command handlers.
// Every Handle call acquires a fresh session, so each command runs as one
// serialized operation against the shared ordering system.
type SessionFactory interface {
	Create() ports.OrderingSession
}
