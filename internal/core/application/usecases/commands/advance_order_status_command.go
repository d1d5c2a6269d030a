package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

// AdvanceOrderStatusCommand moves the head order one step along the
// preparation pipeline. Parameterless: only the queue head ever advances.
type AdvanceOrderStatusCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// NewAdvanceOrderStatusCommand creates a command to advance the head order.
func NewAdvanceOrderStatusCommand() AdvanceOrderStatusCommand {
	command := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}
