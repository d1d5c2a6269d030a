package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// CancelOrderCommandHandler handles cancellation of the queue head.
// A successful cancellation moves the order to the closed-order list; a
// domain rejection leaves it open at the head, unchanged.
type CancelOrderCommandHandler struct {
	sessionFactory SessionFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(sessionFactory SessionFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle cancels the head order. The boolean is false when the queue is
// empty; domain failures (blank reason, already delivered) propagate as
// errors.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	var cancelled bool
	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		var opErr error
		cancelled, opErr = system.CancelFirstOrder(cmd.Reason())
		return opErr
	})
	if err != nil {
		return false, err
	}

	return cancelled, nil
}
