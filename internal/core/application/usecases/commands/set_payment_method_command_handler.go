package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
)

// SetPaymentMethodCommandHandler handles payment method selection for the
// queue head.
type SetPaymentMethodCommandHandler struct {
	sessionFactory SessionFactory
}

// NewSetPaymentMethodCommandHandler creates a handler for payment selection.
func NewSetPaymentMethodCommandHandler(sessionFactory SessionFactory) SetPaymentMethodCommandHandler {
	return SetPaymentMethodCommandHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle sets the payment method on the head order and returns the
// normalized method. The boolean is false when the queue is empty; an
// unrecognized method or a terminal order propagates as an error.
func (h *SetPaymentMethodCommandHandler) Handle(ctx context.Context, cmd SetPaymentMethodCommand) (order.PaymentMethod, bool, error) {
	if err := cmd.Validate(); err != nil {
		return order.UnknownPaymentMethod, false, err
	}

	var (
		method order.PaymentMethod
		found  bool
	)
	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		var opErr error
		method, found, opErr = system.SetFirstOrderPaymentMethod(cmd.RawMethod())
		return opErr
	})
	if err != nil {
		return order.UnknownPaymentMethod, found, err
	}

	return method, found, nil
}
