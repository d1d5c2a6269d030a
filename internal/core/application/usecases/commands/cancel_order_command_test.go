package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand_KeepsReasonVerbatim(t *testing.T) {
	cmd := commands.NewCancelOrderCommand("  customer changed mind  ")
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "  customer changed mind  ", cmd.Reason())
}

func TestNewCancelOrderCommand_BlankReasonIsAccepted(t *testing.T) {
	// reason validity is the order's rule, not the command's
	cmd := commands.NewCancelOrderCommand("")
	require.NoError(t, cmd.Validate())
}

func TestCancelOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CancelOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
}
