package confirm_test

import (
	"testing"

	"paisaparse/cmd/confirm"

	"github.com/stretchr/testify/assert"
)

func TestConfirmCommand_Metadata(t *testing.T) {
	assert.Equal(t, "confirm", confirm.Cmd.Use)
	assert.Contains(t, confirm.Cmd.Short, "pending")
	assert.Contains(t, confirm.Cmd.Long, "no-op")
	assert.NotNil(t, confirm.Cmd.Run)
}

func TestConfirmCommand_Flags(t *testing.T) {
	idFlag := confirm.Cmd.Flags().Lookup("id")
	assert.NotNil(t, idFlag)
	assert.Equal(t, "d", idFlag.Shorthand)
	assert.Equal(t, "", idFlag.DefValue)
	assert.Contains(t, idFlag.Usage, "Identifier")
}
