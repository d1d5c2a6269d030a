package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrAddMenuItemCommandIsNotConstructed = errors.New(
		"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
	)
)

// AddMenuItemCommand represents a request to add an entry to the menu catalog.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("42.50")
//	cmd, err := NewAddMenuItemCommand("Feijoada", price)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	description string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand creates a command to add a menu item.
// Description must be non-empty and price must be a constructed Money value.
func NewAddMenuItemCommand(description string, price kernel.Money) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDescription(description),
		cmd.setPrice(price),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

// Description returns the dish description.
func (c AddMenuItemCommand) Description() string {
	return c.description
}

// Price returns the dish price.
func (c AddMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c *AddMenuItemCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *AddMenuItemCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
