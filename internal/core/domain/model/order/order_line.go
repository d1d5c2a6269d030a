package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/pkg/guard"
)

var (
	// ErrQuantityIsInvalid is returned when an order line quantity is
	// negative, either at construction or through SetQuantity.
	ErrQuantityIsInvalid = errors.New("quantity must be a non-negative integer")

	// ErrOrderLineIsNotConstructed is returned when an OrderLine was not
	// created through the NewOrderLine constructor.
	ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")
)

// OrderLine is one menu item within an order, together with a validated
// quantity and a free-text note for the kitchen ("no onions").
//
// The quantity is mutable but never observed in an invalid state: a rejected
// SetQuantity leaves the previous value intact. The referenced menu item is
// shared, not owned, and outlives the line.
type OrderLine struct {
	// menuItem is the catalog entry this line refers to
	menuItem menu.MenuItem

	// quantity is how many units were ordered, always >= 0
	quantity int

	// note is free-text preparation instructions
	note string

	// guard ensures the line was created via NewOrderLine
	guard guard.ConstructorGuard
}

// NewOrderLine creates an OrderLine for the given menu item.
// Fails with ErrQuantityIsInvalid when quantity is negative and propagates the
// menu item's own validation error when it was not properly constructed.
func NewOrderLine(item menu.MenuItem, quantity int, note string) (*OrderLine, error) {
	line := &OrderLine{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(line.setMenuItem(item), line.SetQuantity(quantity)); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the OrderLine was created through the constructor.
func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// MenuItem returns the catalog entry this line refers to.
func (l *OrderLine) MenuItem() menu.MenuItem {
	return l.menuItem
}

// Quantity returns the ordered quantity.
func (l *OrderLine) Quantity() int {
	return l.quantity
}

// Note returns the free-text preparation note.
func (l *OrderLine) Note() string {
	return l.note
}

// SetQuantity replaces the quantity, applying the same validation as
// construction. On failure the previous quantity is retained.
func (l *OrderLine) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: %d", ErrQuantityIsInvalid, quantity)
	}

	l.quantity = quantity
	return nil
}

// LineTotal returns unit price times quantity. Pure, never fails.
func (l *OrderLine) LineTotal() kernel.Money {
	return l.menuItem.Price().MulInt(l.quantity)
}

func (l *OrderLine) setMenuItem(item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	l.menuItem = item
	return nil
}
