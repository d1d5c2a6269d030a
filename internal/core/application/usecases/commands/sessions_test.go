package commands_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// stubSessionFactory runs operations directly against an in-memory system,
// or fails every session when err is set.
type stubSessionFactory struct {
	system *services.OrderingSystem
	err    error
}

func newStubSessionFactory() *stubSessionFactory {
	return &stubSessionFactory{system: services.NewOrderingSystem()}
}

func (f *stubSessionFactory) Create() ports.OrderingSession { return f }

func (f *stubSessionFactory) Execute(ctx context.Context, op func(system *services.OrderingSystem) error) error {
	if f.err != nil {
		return f.err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return op(f.system)
}

type MockSession struct{ mock.Mock }

func (m *MockSession) Execute(ctx context.Context, op func(system *services.OrderingSystem) error) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

type MockSessionFactory struct{ mock.Mock }

func (m *MockSessionFactory) Create() ports.OrderingSession {
	args := m.Called()
	return args.Get(0).(ports.OrderingSession)
}

func mustCustomer(t *testing.T, name, phone string) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, phone, "")
	require.NoError(t, err)
	return c
}

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}

// enqueueOrder places a fresh one-customer order at the tail of the queue and
// returns it.
func enqueueOrder(t *testing.T, system *services.OrderingSystem) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		mustCustomer(t, "Maria Silva", "555-0101"),
		time.Now(),
		"Rua Augusta 1200",
	)
	require.NoError(t, err)
	require.NoError(t, system.EnqueueOrder(o))
	return o
}
