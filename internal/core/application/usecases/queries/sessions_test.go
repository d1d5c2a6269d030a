package queries_test

import (
	"context"
	"testing"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/core/ports"

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

func mustCustomer(t *testing.T, name, phone, email string) customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(name, phone, email)
	require.NoError(t, err)
	return c
}

func mustMoney(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromString(amount)
	require.NoError(t, err)
	return m
}
