package shell

import (
	"errors"
	"fmt"
)

// Sentinel errors for package shell.
var (
	ErrPathNotFound   = errors.New("path not found")
	ErrNotADirectory  = errors.New("not a directory")
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrScriptTooDeep  = errors.New("script nesting too deep")
	ErrScriptNotFound = errors.New("script not found")
)

// ScriptLineError reports a failure on one line of a replayed script.
type ScriptLineError struct {
	Line int
	Err  error
}

func (e *ScriptLineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap implements error unwrapping for the errors.Is/As functions
func (e *ScriptLineError) Unwrap() error {
	return e.Err
}

// Diagnostic renders err as the single output line shown to the user.
func Diagnostic(err error) string {
	return "error: " + err.Error()
}

func usage(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUsage}, args...)...)
}
