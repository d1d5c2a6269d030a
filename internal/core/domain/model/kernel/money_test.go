package kernel_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should create money from valid decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("30.00")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "30.00", m.String())
	})

	t.Run("should accept zero amount", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("0")

		require.NoError(t, err)
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("should fail on negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-5.50")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "is negative")
	})

	t.Run("should fail on garbage input", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("thirty")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should create money from float", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(12.5)

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("should fail on negative float", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should pass for constructed money", func(t *testing.T) {
		m, _ := kernel.NewMoneyFromFloat(1)
		require.NoError(t, m.Validate())
	})

	t.Run("should pass for zero money constructor", func(t *testing.T) {
		require.NoError(t, kernel.ZeroMoney().Validate())
	})

	t.Run("should fail for zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply by integer quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("30.00")

		total := price.MulInt(2)

		assert.Equal(t, "60.00", total.String())
		require.NoError(t, total.Validate())
	})

	t.Run("should multiply by zero quantity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("30.00")

		assert.True(t, price.MulInt(0).IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should add amounts exactly", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.10")
		b, _ := kernel.NewMoneyFromString("0.20")

		sum := a.Add(b)

		assert.Equal(t, "0.30", sum.String())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare numerically regardless of scale", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("30")
		b, _ := kernel.NewMoneyFromString("30.00")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should report different amounts as not equal", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("30")
		b, _ := kernel.NewMoneyFromString("31")

		assert.False(t, a.IsEqual(b))
	})
}
