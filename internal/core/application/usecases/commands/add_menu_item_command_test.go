package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddMenuItemCommand_ValidInput(t *testing.T) {
	price := mustMoney(t, "42.50")
	cmd, err := commands.NewAddMenuItemCommand("Feijoada", price)
	require.NoError(t, err)
	assert.Equal(t, "Feijoada", cmd.Description())
	assert.True(t, price.IsEqual(cmd.Price()))
}

func TestNewAddMenuItemCommand_EmptyDescription(t *testing.T) {
	_, err := commands.NewAddMenuItemCommand("", mustMoney(t, "10.00"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAddMenuItemCommand_UnconstructedPrice(t *testing.T) {
	_, err := commands.NewAddMenuItemCommand("Feijoada", kernel.Money{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
}

func TestAddMenuItemCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AddMenuItemCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAddMenuItemCommandIsNotConstructed)
}
