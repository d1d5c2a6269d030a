package queries

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// GetMenuQueryHandler retrieves the menu catalog snapshot.
type GetMenuQueryHandler struct {
	sessionFactory SessionFactory
}

// NewGetMenuQueryHandler creates a handler for menu retrieval.
func NewGetMenuQueryHandler(sessionFactory SessionFactory) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		sessionFactory: sessionFactory,
	}
}

// Handle returns the catalog in insertion order plus its rendered form.
// An empty catalog yields an empty rendering and an empty item list.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	var response GetMenuQueryResponse

	session := h.sessionFactory.Create()
	err := session.Execute(ctx, func(system *services.OrderingSystem) error {
		response.Rendered = system.RenderMenu()
		items := system.Menu()
		response.Items = make([]MenuItemResponse, len(items))
		for i, item := range items {
			response.Items[i] = MenuItemResponse{
				Description: item.Description(),
				Price:       item.Price(),
			}
		}
		return nil
	})
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	return response, nil
}
