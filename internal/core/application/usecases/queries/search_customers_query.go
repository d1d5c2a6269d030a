package queries

import (
	"errors"

	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var (
	ErrSearchCustomersQueryIsNotConstructed = errors.New(
		"SearchCustomersQuery must be created via NewSearchCustomersQuery constructor",
	)
)

// SearchCustomersQuery finds customers by a single criterion: a
// case-insensitive name fragment or an exact-case phone fragment. Exactly one
// criterion must be supplied.
//
// Example:
//
//	query, err := NewSearchCustomersQuery("silva", "")
//	if err != nil {
//	    return fmt.Errorf("invalid search: %w", err)
//	}
//
//	handler := NewSearchCustomersQueryHandler(sessionFactory)
//	matches, err := handler.Handle(ctx, query)
type SearchCustomersQuery struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

// NewSearchCustomersQuery creates a customer search query. Exactly one of
// name and phone must be non-empty.
func NewSearchCustomersQuery(name, phone string) (SearchCustomersQuery, error) {
	query := SearchCustomersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCriterion(name, phone); err != nil {
		return SearchCustomersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchCustomersQuery) Validate() error {
	return q.guard.Validate(ErrSearchCustomersQueryIsNotConstructed)
}

// Name returns the name fragment, empty for phone searches.
func (q SearchCustomersQuery) Name() string {
	return q.name
}

// Phone returns the phone fragment, empty for name searches.
func (q SearchCustomersQuery) Phone() string {
	return q.phone
}

func (q *SearchCustomersQuery) setCriterion(name, phone string) error {
	if name == "" && phone == "" {
		return errs.NewValueIsRequiredError("name or phone")
	}
	if name != "" && phone != "" {
		return errs.NewValueIsInvalidError("name and phone are mutually exclusive")
	}

	q.name = name
	q.phone = phone
	return nil
}

// SearchCustomersQueryResponse represents one matching directory entry.
type SearchCustomersQueryResponse struct {
	Name  string
	Phone string
	Email string
}
