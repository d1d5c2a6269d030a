package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListOpenOrdersQueryIsNotConstructed = errors.New(
		"ListOpenOrdersQuery must be created via NewListOpenOrdersQuery constructor",
	)
)

// ListOpenOrdersQuery retrieves every order still in the kitchen queue,
// head first.
//
// Example:
//
//	query := NewListOpenOrdersQuery()
//	handler := NewListOpenOrdersQueryHandler(sessionFactory)
//
//	open, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list open orders: %w", err)
//	}
//	fmt.Printf("%d orders in the queue\n", len(open))
type ListOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOpenOrdersQuery creates a query to list open orders.
func NewListOpenOrdersQuery() ListOpenOrdersQuery {
	return ListOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOpenOrdersQueryIsNotConstructed)
}

// ListOpenOrdersQueryResponse represents one open order, queue position
// implied by slice order.
type ListOpenOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerName string
	Address      string
	Status       order.Status
	Total        kernel.Money
}
