package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/services"
)

// RegisterCustomerCommandHandler handles customer registration.
// Builds the Customer value object and adds it to the system's directory.
type RegisterCustomerCommandHandler struct {
	sessionFactory SessionFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(sessionFactory SessionFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle processes the registration command. Duplicate registrations are
// permitted; the directory keeps every entry.
func (h *RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session := h.sessionFactory.Create()
	return session.Execute(ctx, func(system *services.OrderingSystem) error {
		c, err := customer.NewCustomer(cmd.Name(), cmd.Phone(), cmd.Email())
		if err != nil {
			return err
		}

		return system.AddCustomer(c)
	})
}
