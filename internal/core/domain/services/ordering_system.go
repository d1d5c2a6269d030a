package services

import (
	"iter"
	"strings"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"
)

// OpenOrder pairs an open order with its status at snapshot time.
type OpenOrder struct {
	Order  *order.Order
	Status order.Status
}

// OrderingSystem is the process-wide registry of customers and menu items,
// plus the open-order FIFO queue and the closed-order list. It is the engine
// that advances orders through the kitchen/delivery pipeline.
//
// Invariants:
//   - Every enqueued order is in exactly one of openOrders/closedOrders,
//     never both
//   - openOrders is strictly FIFO: orders leave in the sequence they arrived
//
// The system is single-actor: it performs no internal locking, so callers in
// a multi-actor deployment must serialize access (see ports.OrderingSession).
type OrderingSystem struct {
	// customers holds registered customers, duplicates permitted
	customers []customer.Customer

	// menu holds catalog entries in insertion order, duplicates permitted
	menu []menu.MenuItem

	// openOrders is the FIFO queue of open orders, head at index 0
	openOrders []*order.Order

	// closedOrders collects orders after completion, cancellation, or
	// explicit closure
	closedOrders []*order.Order
}

// NewOrderingSystem creates an empty ordering system.
func NewOrderingSystem() *OrderingSystem {
	return &OrderingSystem{}
}

// AddCustomer registers a customer. No deduplication is performed: value-equal
// duplicates are permitted.
func (s *OrderingSystem) AddCustomer(c customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.customers = append(s.customers, c)
	return nil
}

// AddMenuItem appends a catalog entry. Duplicates are permitted.
func (s *OrderingSystem) AddMenuItem(item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	s.menu = append(s.menu, item)
	return nil
}

// RemoveCustomerByPhone removes every customer whose phone matches exactly.
// Reports whether any removal occurred.
func (s *OrderingSystem) RemoveCustomerByPhone(phone string) bool {
	kept := s.customers[:0]
	for _, c := range s.customers {
		if c.Phone() != phone {
			kept = append(kept, c)
		}
	}

	removed := len(kept) < len(s.customers)
	s.customers = kept
	return removed
}

// SearchCustomersByName returns a lazy sequence of customers whose name
// contains the given substring, case-insensitively. The sequence is finite,
// restartable, and reflects system state at call time.
func (s *OrderingSystem) SearchCustomersByName(name string) iter.Seq[customer.Customer] {
	needle := strings.ToLower(name)
	matches := s.customers

	return func(yield func(customer.Customer) bool) {
		for _, c := range matches {
			if strings.Contains(strings.ToLower(c.Name()), needle) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// SearchCustomersByPhone returns a lazy sequence of customers whose phone
// contains the given substring exactly (case-sensitive).
func (s *OrderingSystem) SearchCustomersByPhone(phone string) iter.Seq[customer.Customer] {
	matches := s.customers

	return func(yield func(customer.Customer) bool) {
		for _, c := range matches {
			if strings.Contains(c.Phone(), phone) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// RenderMenu returns all menu item descriptions joined by newlines in
// insertion order, empty when the menu is empty.
func (s *OrderingSystem) RenderMenu() string {
	descriptions := make([]string, len(s.menu))
	for i, item := range s.menu {
		descriptions[i] = item.Description()
	}
	return strings.Join(descriptions, "\n")
}

// Menu returns a snapshot of the catalog in insertion order.
func (s *OrderingSystem) Menu() []menu.MenuItem {
	items := make([]menu.MenuItem, len(s.menu))
	copy(items, s.menu)
	return items
}

// EnqueueOrder appends an order to the tail of the open-order queue.
func (s *OrderingSystem) EnqueueOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.openOrders = append(s.openOrders, o)
	return nil
}

// ProcessNextOrder pops the head of the queue, closes it, and moves it to the
// closed list. Returns nil when the queue is empty: absence, not an error.
func (s *OrderingSystem) ProcessNextOrder() *order.Order {
	if len(s.openOrders) == 0 {
		return nil
	}

	o := s.popHead()
	o.Close()
	s.closedOrders = append(s.closedOrders, o)
	return o
}

// AdvanceFirstOrderStatus advances the status of the head order without
// removing it from the queue, unless the new status is Delivered, in which
// case the order moves to the closed list. The second return value is false
// when the queue is empty.
func (s *OrderingSystem) AdvanceFirstOrderStatus() (order.Status, bool) {
	if len(s.openOrders) == 0 {
		return order.Unknown, false
	}

	head := s.openOrders[0]
	status := head.AdvanceStatus()

	if status == order.Delivered {
		s.popHead()
		s.closedOrders = append(s.closedOrders, head)
	}

	return status, true
}

// CancelFirstOrder cancels the head order with the given reason and moves it
// to the closed list, reporting (true, nil) on success and (false, nil) when
// the queue is empty.
//
// Cancellation failures (missing reason, order already delivered) propagate
// and leave the order open at the head of the queue, unchanged.
func (s *OrderingSystem) CancelFirstOrder(reason string) (bool, error) {
	if len(s.openOrders) == 0 {
		return false, nil
	}

	head := s.openOrders[0]
	if err := head.Cancel(reason); err != nil {
		return false, err
	}

	s.popHead()
	s.closedOrders = append(s.closedOrders, head)
	return true, nil
}

// SetFirstOrderPaymentMethod sets the payment method on the head order
// without removing it from the queue. The boolean is false when the queue is
// empty; domain failures from the order propagate.
func (s *OrderingSystem) SetFirstOrderPaymentMethod(raw string) (order.PaymentMethod, bool, error) {
	if len(s.openOrders) == 0 {
		return order.UnknownPaymentMethod, false, nil
	}

	method, err := s.openOrders[0].SetPaymentMethod(raw)
	if err != nil {
		return order.UnknownPaymentMethod, true, err
	}

	return method, true, nil
}

// ListOpenOrders returns a snapshot of all open orders paired with their
// current status, head of the queue first.
func (s *OrderingSystem) ListOpenOrders() []OpenOrder {
	open := make([]OpenOrder, len(s.openOrders))
	for i, o := range s.openOrders {
		open[i] = OpenOrder{Order: o, Status: o.Status()}
	}
	return open
}

// ClosedOrders returns a snapshot of the closed-order list in closing order.
func (s *OrderingSystem) ClosedOrders() []*order.Order {
	closed := make([]*order.Order, len(s.closedOrders))
	copy(closed, s.closedOrders)
	return closed
}

func (s *OrderingSystem) popHead() *order.Order {
	head := s.openOrders[0]
	s.openOrders[0] = nil
	s.openOrders = s.openOrders[1:]
	return head
}
