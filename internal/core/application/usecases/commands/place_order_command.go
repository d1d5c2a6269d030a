package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// OrderLineRequest describes one requested line of a new order. Menu items are
// referenced by their catalog description; resolution happens inside the
// handler so the lookup and the enqueue are one atomic operation.
type OrderLineRequest struct {
	MenuItemDescription string
	Quantity            int
	Note                string
}

// PlaceOrderCommand represents a request to place a new order at the tail of
// the kitchen queue.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(cust, "Rua Augusta 1200", []OrderLineRequest{
//	    {MenuItemDescription: "Feijoada", Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(sessionFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customer customer.Customer
	address  string
	lines    []OrderLineRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. The customer must
// be a constructed value and the delivery address must be non-empty. An empty
// line list is permitted; line quantities are validated by the order itself.
func NewPlaceOrderCommand(cust customer.Customer, address string, lines []OrderLineRequest) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(cust),
		cmd.setAddress(address),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.lines = make([]OrderLineRequest, len(lines))
	copy(cmd.lines, lines)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Customer returns the ordering customer.
func (c PlaceOrderCommand) Customer() customer.Customer {
	return c.customer
}

// Address returns the delivery address.
func (c PlaceOrderCommand) Address() string {
	return c.address
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []OrderLineRequest {
	lines := make([]OrderLineRequest, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *PlaceOrderCommand) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}

	c.customer = cust
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
