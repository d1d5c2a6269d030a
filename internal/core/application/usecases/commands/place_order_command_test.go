package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	cust := mustCustomer(t, "Maria Silva", "555-0101")
	lines := []commands.OrderLineRequest{
		{MenuItemDescription: "Feijoada", Quantity: 2, Note: "no onions"},
	}

	cmd, err := commands.NewPlaceOrderCommand(cust, "Rua Augusta 1200", lines)
	require.NoError(t, err)
	assert.True(t, cust.IsEqual(cmd.Customer()))
	assert.Equal(t, "Rua Augusta 1200", cmd.Address())
	assert.Equal(t, lines, cmd.Lines())
}

func TestNewPlaceOrderCommand_EmptyLinesPermitted(t *testing.T) {
	cmd, err := commands.NewPlaceOrderCommand(mustCustomer(t, "Maria Silva", "555-0101"), "Rua Augusta 1200", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Lines())
}

func TestNewPlaceOrderCommand_UnconstructedCustomer(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(customer.Customer{}, "Rua Augusta 1200", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
}

func TestNewPlaceOrderCommand_EmptyAddress(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(mustCustomer(t, "Maria Silva", "555-0101"), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPlaceOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
