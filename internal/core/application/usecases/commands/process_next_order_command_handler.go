package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// ProcessedOrder summarizes an order that just left the queue.
type ProcessedOrder struct {
	ID     kernel.UUID
	Status order.Status
	Total  kernel.Money
}

// ProcessNextOrderCommandHandler handles queue processing: the head order is
// removed, closed, and archived in the closed-order list.
type ProcessNextOrderCommandHandler struct {
	sessionFactory SessionFactory
}

// NewProcessNextOrderCommandHandler creates a handler for queue processing.
func NewProcessNextOrderCommandHandler(sessionFactory SessionFactory) ProcessNextOrderCommandHandler {
	return ProcessNextOrderCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle processes the head of the queue. Returns nil when the queue is
// empty: an empty queue is absence, not a failure.
func (h *ProcessNextOrderCommandHandler) Handle(ctx context.Context, cmd ProcessNextOrderCommand) (*ProcessedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var processed *ProcessedOrder
	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		o := system.ProcessNextOrder()
		if o == nil {
			return nil
		}

		processed = &ProcessedOrder{
			ID:     o.ID(),
			Status: o.Status(),
			Total:  o.Total(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return processed, nil
}
