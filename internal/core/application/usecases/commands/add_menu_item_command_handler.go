package commands

import (
	"context"

	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/services"
)

// AddMenuItemCommandHandler handles menu catalog additions.
type AddMenuItemCommandHandler struct {
	sessionFactory SessionFactory
}

// NewAddMenuItemCommandHandler creates a handler for menu additions.
func NewAddMenuItemCommandHandler(sessionFactory SessionFactory) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle appends the item to the catalog. The catalog keeps insertion order
// and permits duplicate descriptions.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session := h.sessionFactory.Create()
	return session.Execute(ctx, func(system *services.OrderingSystem) error {
		item, err := menu.NewMenuItem(cmd.Description(), cmd.Price())
		if err != nil {
			return err
		}

		return system.AddMenuItem(item)
	})
}
