package customer_test

import (
	"testing"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		c, err := customer.NewCustomer("Ana Silva", "+55 11 91234-5678", "ana@example.com")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "Ana Silva", c.Name())
		assert.Equal(t, "+55 11 91234-5678", c.Phone())
		assert.Equal(t, "ana@example.com", c.Email())
	})

	t.Run("should allow empty email", func(t *testing.T) {
		c, err := customer.NewCustomer("Pedro", "555-0000", "")

		require.NoError(t, err)
		assert.Empty(t, c.Email())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := customer.NewCustomer("", "555-0000", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with empty phone", func(t *testing.T) {
		_, err := customer.NewCustomer("Pedro", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should aggregate validation errors", func(t *testing.T) {
		_, err := customer.NewCustomer("", "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("should fail for zero value customer", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	t.Run("should be equal by all three fields", func(t *testing.T) {
		a, _ := customer.NewCustomer("Ana", "555-1111", "ana@example.com")
		b, _ := customer.NewCustomer("Ana", "555-1111", "ana@example.com")

		assert.True(t, a.IsEqual(b))
		assert.True(t, b.IsEqual(a))
	})

	t.Run("should differ on any field", func(t *testing.T) {
		base, _ := customer.NewCustomer("Ana", "555-1111", "ana@example.com")
		otherName, _ := customer.NewCustomer("Maria", "555-1111", "ana@example.com")
		otherPhone, _ := customer.NewCustomer("Ana", "555-2222", "ana@example.com")
		otherEmail, _ := customer.NewCustomer("Ana", "555-1111", "maria@example.com")

		assert.False(t, base.IsEqual(otherName))
		assert.False(t, base.IsEqual(otherPhone))
		assert.False(t, base.IsEqual(otherEmail))
	})
}
