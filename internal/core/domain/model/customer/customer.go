// Package customer provides the Customer value object: the registered person
// an order is placed for, identified informally by name, phone, and email.
package customer

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is an immutable value object. Two customers are equal when name,
// phone, and email all match. The phone number doubles as the removal key in
// the ordering system, so it is required; email is optional contact data.
type Customer struct { //nolint:recvcheck //using for validation
	name  string
	phone string
	email string

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer with a non-empty name and phone.
// Validation failures are aggregated into a single error.
func NewCustomer(name string, phone string, email string) (Customer, error) {
	c := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setName(name), c.setPhone(phone), c.setEmail(email)); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate ensures the Customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number.
func (c Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c Customer) Email() string {
	return c.email
}

// IsEqual compares two customers by value: name, phone, and email.
func (c Customer) IsEqual(other Customer) bool {
	return c.name == other.name && c.phone == other.phone && c.email == other.email
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

func (c *Customer) setEmail(email string) error {
	c.email = email
	return nil
}
