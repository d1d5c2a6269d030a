package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	cmd := commands.NewAdvanceOrderStatusCommand()
	require.NoError(t, cmd.Validate())
}

func TestAdvanceOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AdvanceOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
}
