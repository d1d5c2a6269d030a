package commands

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. Resolves each requested
// line against the menu catalog, builds the order aggregate, and enqueues it
// at the tail of the kitchen queue.
type PlaceOrderCommandHandler struct {
	sessionFactory SessionFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(sessionFactory SessionFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle places the order and returns its generated ID.
// A line referencing a description absent from the catalog fails the whole
// command with an ObjectNotFoundError; nothing is enqueued in that case.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()

	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		o, err := order.NewOrder(orderID, cmd.Customer(), time.Now(), cmd.Address())
		if err != nil {
			return err
		}

		catalog := system.Menu()
		for _, req := range cmd.Lines() {
			item, found := findMenuItem(catalog, req.MenuItemDescription)
			if !found {
				return errs.NewObjectNotFoundError("menuItem", req.MenuItemDescription)
			}

			line, err := order.NewOrderLine(item, req.Quantity, req.Note)
			if err != nil {
				return err
			}

			if err := o.AddLine(line); err != nil {
				return err
			}
		}

		return system.EnqueueOrder(o)
	})
	if err != nil {
		return kernel.UUID{}, err
	}

	return orderID, nil
}

// findMenuItem resolves a description to the first matching catalog entry.
func findMenuItem(catalog []menu.MenuItem, description string) (menu.MenuItem, bool) {
	for _, item := range catalog {
		if item.Description() == description {
			return item, true
		}
	}
	return menu.MenuItem{}, false
}
