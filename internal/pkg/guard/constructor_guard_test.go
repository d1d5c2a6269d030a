package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("not constructed"))

		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used in
// a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type menuEntry struct {
		description string
		priceCents  int
		guard       guard.ConstructorGuard
	}

	var errMenuEntryNotConstructed = errors.New("menuEntry must be created via newMenuEntry")

	newMenuEntry := func(description string, priceCents int) (menuEntry, error) {
		if description == "" {
			return menuEntry{}, errors.New("description is required")
		}
		if priceCents < 0 {
			return menuEntry{}, errors.New("price cannot be negative")
		}
		return menuEntry{
			description: description,
			priceCents:  priceCents,
			guard:       guard.NewConstructorGuard(),
		}, nil
	}

	validateMenuEntry := func(m menuEntry) error {
		return m.guard.Validate(errMenuEntryNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		entry, err := newMenuEntry("Margherita", 3000)

		require.NoError(t, err)
		require.NoError(t, validateMenuEntry(entry))
		assert.Equal(t, "Margherita", entry.description)
		assert.Equal(t, 3000, entry.priceCents)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var entry menuEntry // zero value

		err := validateMenuEntry(entry)

		require.Error(t, err)
		assert.Equal(t, errMenuEntryNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newMenuEntry("", 3000)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")

		_, err = newMenuEntry("Margherita", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

func TestConstructorGuardCopies(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		guardCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
