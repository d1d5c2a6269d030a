package commands

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrRemoveCustomerCommandIsNotConstructed = errors.New(
		"RemoveCustomerCommand must be created via NewRemoveCustomerCommand constructor",
	)
)

// RemoveCustomerCommand represents a request to remove customers by exact
// phone match. Removal targets phone rather than name because phone is the
// closest thing to an identity the directory has.
type RemoveCustomerCommand struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewRemoveCustomerCommand creates a command to remove customers with the
// given phone number.
func NewRemoveCustomerCommand(phone string) (RemoveCustomerCommand, error) {
	cmd := RemoveCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPhone(phone); err != nil {
		return RemoveCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomerCommandIsNotConstructed)
}

// Phone returns the phone number to match.
func (c RemoveCustomerCommand) Phone() string {
	return c.phone
}

func (c *RemoveCustomerCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
