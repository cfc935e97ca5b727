package watch_test

import (
	"testing"

	"paisaparse/cmd/watch"

	"github.com/stretchr/testify/assert"
)

func TestWatchCommand_Metadata(t *testing.T) {
	assert.Equal(t, "watch", watch.Cmd.Use)
	assert.Contains(t, watch.Cmd.Short, "stdin")
	assert.Contains(t, watch.Cmd.Long, "line by line")
	assert.NotNil(t, watch.Cmd.Run)
}
