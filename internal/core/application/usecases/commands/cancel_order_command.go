package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

// CancelOrderCommand cancels the order at the head of the queue, recording a
// reason. Reason content is not validated here: the order aggregate owns the
// "reason must be non-blank" rule, so a bad reason fails inside the session
// and leaves the order untouched at the head.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	reason string

	guard guard.ConstructorGuard
}

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// NewCancelOrderCommand creates a command to cancel the head order.
func NewCancelOrderCommand(reason string) CancelOrderCommand {
	command := CancelOrderCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Reason returns the cancellation reason as given, untrimmed.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
