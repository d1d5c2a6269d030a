package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/menu"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOpenOrdersQueryHandler_Handle_HeadFirst(t *testing.T) {
	ctx := t.Context()
	factory := newStubSessionFactory()

	item, err := menu.NewMenuItem("Feijoada", mustMoney(t, "30.00"))
	require.NoError(t, err)

	first, err := order.NewOrder(
		kernel.NewUUID(),
		mustCustomer(t, "Maria Silva", "555-0101", ""),
		time.Now(),
		"Rua Augusta 1200",
	)
	require.NoError(t, err)
	line, err := order.NewOrderLine(item, 2, "")
	require.NoError(t, err)
	require.NoError(t, first.AddLine(line))
	require.NoError(t, factory.system.EnqueueOrder(first))

	second, err := order.NewOrder(
		kernel.NewUUID(),
		mustCustomer(t, "Joao Souza", "555-0202", ""),
		time.Now(),
		"Av Paulista 900",
	)
	require.NoError(t, err)
	require.NoError(t, factory.system.EnqueueOrder(second))

	h := queries.NewListOpenOrdersQueryHandler(factory)
	open, err := h.Handle(ctx, queries.NewListOpenOrdersQuery())
	require.NoError(t, err)
	require.Len(t, open, 2)

	assert.True(t, first.ID().IsEqual(open[0].ID))
	assert.Equal(t, "Maria Silva", open[0].CustomerName)
	assert.Equal(t, "Rua Augusta 1200", open[0].Address)
	assert.Equal(t, order.Received, open[0].Status)
	assert.Equal(t, "60.00", open[0].Total.String())

	assert.True(t, second.ID().IsEqual(open[1].ID))
	assert.Equal(t, "0.00", open[1].Total.String())
}

func TestListOpenOrdersQueryHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	h := queries.NewListOpenOrdersQueryHandler(newStubSessionFactory())

	open, err := h.Handle(ctx, queries.NewListOpenOrdersQuery())
	require.NoError(t, err)
	assert.Empty(t, open)
	assert.NotNil(t, open)
}

func TestListOpenOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := queries.NewListOpenOrdersQueryHandler(newStubSessionFactory())
	_, err := h.Handle(ctx, queries.ListOpenOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOpenOrdersQueryIsNotConstructed)
}
