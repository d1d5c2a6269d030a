package queries

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// ListOpenOrdersQueryHandler snapshots the open-order queue.
type ListOpenOrdersQueryHandler struct {
	sessionFactory SessionFactory
}

// NewListOpenOrdersQueryHandler creates a handler for open-order listings.
func NewListOpenOrdersQueryHandler(sessionFactory SessionFactory) ListOpenOrdersQueryHandler {
	return ListOpenOrdersQueryHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle returns the queue head first, each row carrying the order's current
// status and running total.
func (h ListOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOpenOrdersQuery,
) ([]ListOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	open := make([]ListOpenOrdersQueryResponse, 0)

	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		for _, entry := range system.ListOpenOrders() {
			open = append(open, ListOpenOrdersQueryResponse{
				ID:           entry.Order.ID(),
				CustomerName: entry.Order.Customer().Name(),
				Address:      entry.Order.Address(),
				Status:       entry.Status,
				Total:        entry.Order.Total(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return open, nil
}
