// Package menu provides the MenuItem value object describing a catalog entry
// of the restaurant: a free-text description and a non-negative price.
package menu

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created
// through the NewMenuItem constructor.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is an immutable value object representing a catalog entry.
// Two menu items are equal when both description and price match. Menu items
// are shared by reference semantics across order lines and never mutated
// after construction.
type MenuItem struct { //nolint:recvcheck //using for validation
	description string
	price       kernel.Money

	guard guard.ConstructorGuard
}

// NewMenuItem creates a MenuItem with a non-empty description and a valid
// non-negative price. Validation failures are aggregated into a single error.
func NewMenuItem(description string, price kernel.Money) (MenuItem, error) {
	item := MenuItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(item.setDescription(description), item.setPrice(price)); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

// Validate ensures the MenuItem was created through the constructor.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// Description returns the catalog description of the item.
func (m MenuItem) Description() string {
	return m.description
}

// Price returns the unit price of the item.
func (m MenuItem) Price() kernel.Money {
	return m.price
}

// IsEqual compares two menu items by value: description and price.
func (m MenuItem) IsEqual(other MenuItem) bool {
	return m.description == other.description && m.price.IsEqual(other.price)
}

func (m *MenuItem) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	m.description = description
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}

	m.price = price
	return nil
}
