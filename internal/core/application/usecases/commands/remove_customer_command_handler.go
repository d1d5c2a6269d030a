package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// RemoveCustomerCommandHandler handles customer removal by phone.
type RemoveCustomerCommandHandler struct {
	sessionFactory SessionFactory
}

// NewRemoveCustomerCommandHandler creates a handler for customer removal.
func NewRemoveCustomerCommandHandler(sessionFactory SessionFactory) RemoveCustomerCommandHandler {
	return RemoveCustomerCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle removes every customer whose phone matches exactly.
// Reports whether any entry was removed; a miss is not an error.
func (h *RemoveCustomerCommandHandler) Handle(ctx context.Context, cmd RemoveCustomerCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var removed bool
	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		removed = system.RemoveCustomerByPhone(cmd.Phone())
		return nil
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}
