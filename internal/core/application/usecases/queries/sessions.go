// Package queries contains read-only operations over system state.
// Implements the Query side of the CQRS architecture: handlers snapshot data
// through a session and never mutate the ordering system.
package queries

import (
	"restaurant/internal/core/ports"
)

// SessionFactory creates ordering sessions for query handlers. Reads go
// through the same serialized session as writes, so a query always observes a
// consistent snapshot.
type SessionFactory interface {
	Create() ports.OrderingSession
}
