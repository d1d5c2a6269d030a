package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

// SetPaymentMethodCommand selects the payment method for the order at the
// head of the queue. The raw value is normalized and validated by the domain,
// which keeps the closed set of accepted methods in one place.
type SetPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	rawMethod string

	guard guard.ConstructorGuard
}

var (
	ErrSetPaymentMethodCommandIsNotConstructed = errors.New(
		"SetPaymentMethodCommand must be created via NewSetPaymentMethodCommand constructor",
	)
)

// NewSetPaymentMethodCommand creates a command to set the head order's
// payment method from a raw user-supplied string.
func NewSetPaymentMethodCommand(rawMethod string) SetPaymentMethodCommand {
	command := SetPaymentMethodCommand{
		rawMethod: rawMethod,
		guard:     guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *SetPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrSetPaymentMethodCommandIsNotConstructed)
}

// RawMethod returns the payment method string as supplied by the caller.
func (c SetPaymentMethodCommand) RawMethod() string {
	return c.rawMethod
}
