package shell

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEnv_Expand(t *testing.T) {
	env := NewEnv(map[string]string{"USER": "alice", "HOME": "/home/alice"})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no variables", input: "echo hello", expected: "echo hello"},
		{name: "plain reference", input: "echo $USER", expected: "echo alice"},
		{name: "braced reference", input: "echo ${HOME}/x", expected: "echo /home/alice/x"},
		{name: "braced reference joined to text", input: "${USER}name", expected: "alicename"},
		{name: "name runs to last word character", input: "$USERname", expected: ""},
		{name: "unknown expands to empty", input: "echo [$NOPE]", expected: "echo []"},
		{name: "several references", input: "$USER@$HOME", expected: "alice@/home/alice"},
		{name: "quotes kept", input: "echo '$USER'", expected: "echo 'alice'"},
		{name: "lone dollar", input: "$USER:$PWD$ ", expected: "alice:$ "},
		{name: "digit after dollar", input: "cost $5", expected: "cost $5"},
		{name: "command substitution kept", input: "echo $(pwd)", expected: "echo $(pwd)"},
		{name: "backticks kept", input: "echo `pwd` $USER", expected: "echo `pwd` alice"},
		{name: "default operator kept", input: "echo ${USER:-x} ${NOPE:-fallback}", expected: "echo ${USER:-x} ${NOPE:-fallback}"},
		{name: "arithmetic kept", input: "echo $((6*7))", expected: "echo $((6*7))"},
		{name: "unterminated brace kept", input: "echo ${USER", expected: "echo ${USER"},
		{name: "backslash without reference", input: `echo a\\b`, expected: `echo a\\b`},
		{name: "backslash with reference", input: `echo a\\b $USER`, expected: `echo a\\b alice`},
		{name: "backslash before reference", input: `\$USER`, expected: `\alice`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, env.Expand(tt.input))
		})
	}
}

func TestEnv_SetAndGet(t *testing.T) {
	env := NewEnv(nil)
	assert.Empty(t, env.Get("PWD"))

	env.Set("PWD", "/documents/")
	assert.Equal(t, "/documents/", env.Get("PWD"))
	assert.Equal(t, []string{"PWD=/documents/"}, env.Environ())
}

func TestNewEnv_CopiesInput(t *testing.T) {
	vars := map[string]string{"USER": "alice"}
	env := NewEnv(vars)
	vars["USER"] = "mallory"

	assert.Equal(t, "alice", env.Get("USER"))
}

func TestNewSessionEnv(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	env := NewSessionEnv("/home/bob", "bob", now, map[string]string{"EDITOR": "ed", "USER": "override"})

	assert.Equal(t, "/home/bob", env.Get("HOME"))
	assert.Equal(t, "override", env.Get("USER"))
	assert.Equal(t, "/", env.Get("PWD"))
	assert.Equal(t, "2024-03-09 14:05:00", env.Get("DATE"))
	assert.Equal(t, "ed", env.Get("EDITOR"))

	_, err := uuid.Parse(env.Get("SESSION"))
	assert.NoError(t, err)
}
