package commands

import (
	"errors"

	"restaurant/internal/pkg/guard"
)

// ProcessNextOrderCommand pops the head of the kitchen queue and closes it.
// This is a parameterless command: FIFO sequencing means the queue itself
// decides which order is next.
//
// Example:
//
//	cmd := NewProcessNextOrderCommand()
//	handler := NewProcessNextOrderCommandHandler(sessionFactory)
//
//	processed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if processed == nil {
//	    fmt.Println("queue is empty")
//	}
type ProcessNextOrderCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrProcessNextOrderCommandIsNotConstructed = errors.New(
		"ProcessNextOrderCommand must be created via NewProcessNextOrderCommand constructor",
	)
)

// NewProcessNextOrderCommand creates a command to process the next queued order.
func NewProcessNextOrderCommand() ProcessNextOrderCommand {
	command := ProcessNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *ProcessNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessNextOrderCommandIsNotConstructed)
}
