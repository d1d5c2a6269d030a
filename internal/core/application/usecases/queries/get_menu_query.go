package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu catalog. Parameterless: the full catalog is
// returned in insertion order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query to retrieve the menu.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse represents one catalog entry.
type MenuItemResponse struct {
	Description string
	Price       kernel.Money
}

// GetMenuQueryResponse carries both the structured catalog and the rendered
// board: every description joined by newlines, ready for display.
type GetMenuQueryResponse struct {
	Rendered string
	Items    []MenuItemResponse
}
