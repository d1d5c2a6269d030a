package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// AdvanceOrderStatusCommandHandler handles status advancement of the queue
// head. An order reaching Delivered is moved to the closed-order list.
type AdvanceOrderStatusCommandHandler struct {
	sessionFactory SessionFactory
}

// NewAdvanceOrderStatusCommandHandler creates a handler for status advancement.
func NewAdvanceOrderStatusCommandHandler(sessionFactory SessionFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle advances the head order and returns its new status.
// The boolean is false when the queue is empty.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) (order.Status, bool, error) {
	if err := cmd.Validate(); err != nil {
		return order.Unknown, false, err
	}

	var (
		status order.Status
		found  bool
	)
	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		status, found = system.AdvanceFirstOrderStatus()
		return nil
	})
	if err != nil {
		return order.Unknown, false, err
	}

	return status, found, nil
}
