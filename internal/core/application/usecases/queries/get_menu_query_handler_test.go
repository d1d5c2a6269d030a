package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMenuQueryHandler_Handle_ReturnsCatalogInOrder(t *testing.T) {
	ctx := t.Context()
	factory := newStubSessionFactory()
	for _, entry := range []struct {
		description string
		price       string
	}{
		{"Feijoada", "42.50"},
		{"Moqueca", "55.00"},
	} {
		item, err := menu.NewMenuItem(entry.description, mustMoney(t, entry.price))
		require.NoError(t, err)
		require.NoError(t, factory.system.AddMenuItem(item))
	}

	h := queries.NewGetMenuQueryHandler(factory)
	response, err := h.Handle(ctx, queries.NewGetMenuQuery())
	require.NoError(t, err)

	assert.Equal(t, "Feijoada\nMoqueca", response.Rendered)
	require.Len(t, response.Items, 2)
	assert.Equal(t, "Feijoada", response.Items[0].Description)
	assert.Equal(t, "42.50", response.Items[0].Price.String())
	assert.Equal(t, "Moqueca", response.Items[1].Description)
}

func TestGetMenuQueryHandler_Handle_EmptyCatalog(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetMenuQueryHandler(newStubSessionFactory())

	response, err := h.Handle(ctx, queries.NewGetMenuQuery())
	require.NoError(t, err)
	assert.Empty(t, response.Rendered)
	assert.Empty(t, response.Items)
}

func TestGetMenuQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := queries.NewGetMenuQueryHandler(newStubSessionFactory())
	_, err := h.Handle(ctx, queries.GetMenuQuery{})
	require.ErrorIs(t, err, queries.ErrGetMenuQueryIsNotConstructed)
}
