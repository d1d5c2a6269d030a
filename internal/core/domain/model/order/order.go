package order

import (
	"errors"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCancellationReasonIsRequired is returned when Cancel is called with
	// an empty or whitespace-only reason.
	ErrCancellationReasonIsRequired = errors.New("cancellation reason is required")

	// ErrOrderAlreadyDelivered is returned when Cancel is called on an order
	// that already reached Delivered.
	ErrOrderAlreadyDelivered = errors.New("cannot cancel an order that was already delivered")

	// ErrPaymentIsNotAllowed is returned when a payment method is set on an
	// order that is already Delivered or Cancelled.
	ErrPaymentIsNotAllowed = errors.New("cannot set payment method after order completion")
)

// Order is the aggregate root for a customer's placed request. It owns its
// order lines, tracks whether the order is still open, and enforces the
// status state machine together with the cancellation and payment rules.
//
// Invariants:
//   - Status moves monotonically along the fixed progression, with Cancelled
//     as the only side exit; terminal states never advance
//   - The payment method can only be set while the order is not terminal
//   - Cancellation always carries a non-empty reason
//   - Every operation is atomic: it either fully applies or leaves the
//     aggregate unchanged
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customer is who placed the order
	customer customer.Customer

	// placedAt is when the order was placed
	placedAt time.Time

	// address is the free-text delivery address
	address string

	// isOpen reports whether the order still resides in the open queue
	isOpen bool

	// lines is the append-only sequence of order lines, in insertion order
	lines []*OrderLine

	// status is the current state in the order lifecycle
	status Status

	// paymentMethod is the chosen payment option (nil until set)
	paymentMethod *PaymentMethod

	// cancellationReason stores the reason given on cancellation
	cancellationReason string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order in Received status, open, with no lines.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - cust: the customer placing the order (must be constructed)
//   - placedAt: order timestamp (must not be the zero time)
//   - address: delivery address (must not be empty)
//
// All validation failures are aggregated into a single error.
func NewOrder(id kernel.UUID, cust customer.Customer, placedAt time.Time, address string) (*Order, error) {
	o := &Order{
		status:        Received,
		isOpen:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(cust),
		o.setPlacedAt(placedAt),
		o.setAddress(address),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer who placed the order.
func (o *Order) Customer() customer.Customer {
	return o.customer
}

// PlacedAt returns the order timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// IsOpen reports whether the order is still open.
func (o *Order) IsOpen() bool {
	return o.isOpen
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns the chosen payment method.
// Returns nil when no payment method was set yet.
func (o *Order) PaymentMethod() *PaymentMethod {
	return o.paymentMethod
}

// CancellationReason returns the reason given on cancellation, empty when the
// order was never cancelled.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Lines returns the order lines in insertion order.
// The returned slice is a copy; the lines themselves are shared.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// AddLine appends a line to the order. Lines are append-only and keep their
// insertion order; the only validation is the line's own construction.
func (o *Order) AddLine(line *OrderLine) error {
	if line == nil {
		return errs.NewValueIsRequiredError("line")
	}
	if err := line.Validate(); err != nil {
		return err
	}

	o.lines = append(o.lines, line)
	return nil
}

// Close marks the order as no longer open. Idempotent; the status is not
// affected.
func (o *Order) Close() {
	o.isOpen = false
}

// AdvanceStatus moves the order one step along the fixed progression and
// returns the resulting status.
//
// A terminal order (Delivered or Cancelled) is left untouched and its current
// status is returned. Reaching Delivered also closes the order.
func (o *Order) AdvanceStatus() Status {
	if o.status.IsTerminal() {
		return o.status
	}

	o.status = o.status.Next()
	if o.status == Delivered {
		o.isOpen = false
	}

	return o.status
}

// Cancel moves the order to Cancelled, stores the reason, and closes it.
//
// Fails with ErrCancellationReasonIsRequired when reason is empty or
// whitespace-only, and with ErrOrderAlreadyDelivered when the order already
// reached Delivered. Cancelling an already-Cancelled order is permitted and
// overwrites the stored reason.
func (o *Order) Cancel(reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrCancellationReasonIsRequired
	}

	if o.status == Delivered {
		return ErrOrderAlreadyDelivered
	}

	o.status = Cancelled
	o.cancellationReason = reason
	o.isOpen = false
	return nil
}

// SetPaymentMethod parses and stores the payment method for the order.
//
// The raw value is normalized (trimmed, lowercased) before matching against
// the accepted set. Fails with ErrPaymentIsNotAllowed when the order is
// already Delivered or Cancelled, and with ErrPaymentMethodIsInvalid when the
// normalized value is not accepted. On success the stored method is returned.
func (o *Order) SetPaymentMethod(raw string) (PaymentMethod, error) {
	if o.status.IsTerminal() {
		return UnknownPaymentMethod, ErrPaymentIsNotAllowed
	}

	method, err := PaymentMethodFromString(raw)
	if err != nil {
		return UnknownPaymentMethod, err
	}

	o.paymentMethod = &method
	return method, nil
}

// Total returns the sum of all line totals, zero when the order has no lines.
// Pure, never fails.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range o.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomer validates and sets the ordering customer.
// This is a private method used only during construction.
func (o *Order) setCustomer(cust customer.Customer) error {
	if err := cust.Validate(); err != nil {
		return err
	}
	o.customer = cust
	return nil
}

// setPlacedAt validates and sets the order timestamp.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}

// setAddress validates and sets the delivery address.
// This is a private method used only during construction.
func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}
