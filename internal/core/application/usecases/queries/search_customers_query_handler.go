package queries

import (
	"context"
	"iter"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/services"
)

// SearchCustomersQueryHandler executes customer directory searches.
type SearchCustomersQueryHandler struct {
	sessionFactory SessionFactory
}

// NewSearchCustomersQueryHandler creates a handler for customer searches.
func NewSearchCustomersQueryHandler(sessionFactory SessionFactory) SearchCustomersQueryHandler {
	return SearchCustomersQueryHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle runs the search and collects matches in registration order.
// The lazy domain sequence is drained inside the session, so the snapshot is
// consistent even with concurrent writers.
func (h SearchCustomersQueryHandler) Handle(
	ctx context.Context,
	query SearchCustomersQuery,
) ([]SearchCustomersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	matches := make([]SearchCustomersQueryResponse, 0)

	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		var seq iter.Seq[customer.Customer]
		if query.Name() != "" {
			seq = system.SearchCustomersByName(query.Name())
		} else {
			seq = system.SearchCustomersByPhone(query.Phone())
		}

		for c := range seq {
			matches = append(matches, SearchCustomersQueryResponse{
				Name:  c.Name(),
				Phone: c.Phone(),
				Email: c.Email(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
