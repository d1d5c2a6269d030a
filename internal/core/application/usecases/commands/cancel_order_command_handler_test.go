package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	factory := newStubSessionFactory()
	placed := enqueueOrder(t, factory.system)

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, commands.NewCancelOrderCommand("customer changed mind"))
	require.NoError(t, err)
	assert.True(t, cancelled)
	assert.Equal(t, order.Cancelled, placed.Status())
	assert.Empty(t, factory.system.ListOpenOrders())
}

func TestCancelOrderCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	h := commands.NewCancelOrderCommandHandler(newStubSessionFactory())

	cancelled, err := h.Handle(ctx, commands.NewCancelOrderCommand("customer changed mind"))
	require.NoError(t, err)
	assert.False(t, cancelled)
}

func TestCancelOrderCommandHandler_Handle_BlankReason(t *testing.T) {
	ctx := t.Context()
	factory := newStubSessionFactory()
	placed := enqueueOrder(t, factory.system)

	h := commands.NewCancelOrderCommandHandler(factory)
	cancelled, err := h.Handle(ctx, commands.NewCancelOrderCommand("   "))
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCancellationReasonIsRequired)
	assert.False(t, cancelled)

	// the order stays open at the head, untouched
	open := factory.system.ListOpenOrders()
	require.Len(t, open, 1)
	assert.True(t, placed.ID().IsEqual(open[0].Order.ID()))
	assert.Equal(t, order.Received, open[0].Status)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewCancelOrderCommandHandler(newStubSessionFactory())
	var cmd commands.CancelOrderCommand
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
}
