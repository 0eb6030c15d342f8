package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	for _, cmd := range Commands() {
		t.Run(cmd.String(), func(t *testing.T) {
			got, ok := ParseCommand(cmd.String())
			assert.True(t, ok)
			assert.Equal(t, cmd, got)
		})
	}

	_, ok := ParseCommand("cat")
	assert.False(t, ok)
	_, ok = ParseCommand("LS")
	assert.False(t, ok)
}

func TestCommands_AllHaveHandlers(t *testing.T) {
	cmds := Commands()
	assert.Len(t, cmds, 10)
	for _, cmd := range cmds {
		assert.Contains(t, handlers, cmd, "no handler for %s", cmd)
	}
}

func TestCommand_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "unknown", Command(-1).String())
	assert.Equal(t, "unknown", numCommands.String())
}
