package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveCustomerCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewRemoveCustomerCommand("555-0101")
	require.NoError(t, err)
	assert.Equal(t, "555-0101", cmd.Phone())
}

func TestNewRemoveCustomerCommand_EmptyPhone(t *testing.T) {
	_, err := commands.NewRemoveCustomerCommand("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRemoveCustomerCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.RemoveCustomerCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrRemoveCustomerCommandIsNotConstructed)
}
