package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/dendrascience/vfsh/vfs"
)

// DefaultPrompt is used when no prompt template is configured.
const DefaultPrompt = "$USER:$PWD$ "

// BuiltinSource names the default filesystem in banners and logs.
const BuiltinSource = "built-in"

// maxScriptDepth bounds nested script commands.
const maxScriptDepth = 8

// Shell interprets command lines against a filesystem. It is not safe for
// concurrent use; commands run one at a time to completion.
type Shell struct {
	fs          *vfs.FS
	env         *Env
	logger      *log.Logger
	prompt      string
	source      string
	scriptDepth int
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPrompt sets the prompt template. It is expanded against the session
// environment each time Prompt is called.
func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		if prompt != "" {
			s.prompt = prompt
		}
	}
}

// WithSource records where the filesystem was loaded from.
func WithSource(source string) Option {
	return func(s *Shell) {
		if source != "" {
			s.source = source
		}
	}
}

// New creates a shell over fs. PWD in env is set to the current directory.
func New(fs *vfs.FS, env *Env, opts ...Option) *Shell {
	if env == nil {
		env = NewEnv(nil)
	}
	s := &Shell{
		fs:     fs,
		env:    env,
		logger: log.New(io.Discard),
		prompt: DefaultPrompt,
		source: BuiltinSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.env.Set("PWD", fs.Cwd())
	return s
}

// FS returns the filesystem the shell operates on.
func (s *Shell) FS() *vfs.FS {
	return s.fs
}

// Env returns the session environment.
func (s *Shell) Env() *Env {
	return s.env
}

// Source returns the archive path backing the filesystem, or BuiltinSource.
func (s *Shell) Source() string {
	return s.source
}

// Prompt returns the prompt template with session variables substituted.
func (s *Shell) Prompt() string {
	return s.env.Expand(s.prompt)
}

// Banner returns the startup information lines.
func (s *Shell) Banner(script string) []string {
	if script == "" {
		script = "(none)"
	}
	return []string{
		"TERMINAL DEBUG INFO",
		"VFS source: " + s.source,
		"VFS entries: " + fmt.Sprint(s.fs.Len()),
		"Prompt: '" + s.Prompt() + "'",
		"Script: " + script,
		"Session: " + s.env.Get("SESSION"),
		"",
	}
}

// Execute runs one command line. Errors never escape: they are rendered as a
// diagnostic line appended to the result and also reported in Result.Err.
func (s *Shell) Execute(line string) Result {
	res, err := s.execute(line)
	if err != nil {
		s.logger.Debug("command failed", "line", line, "err", err)
		res.Lines = append(res.Lines, Diagnostic(err))
		res.Err = err
	}
	return res
}

func (s *Shell) execute(line string) (Result, error) {
	fields := strings.Fields(s.env.Expand(line))
	if len(fields) == 0 {
		return Result{}, nil
	}

	cmd, ok := ParseCommand(fields[0])
	if !ok {
		return Result{}, fmt.Errorf("%w '%s'", ErrUnknownCommand, fields[0])
	}
	s.logger.Debug("dispatch", "command", cmd, "args", fields[1:])
	res, err := handlers[cmd](s, fields[1:])
	if err != nil && !errors.Is(err, ErrUsage) {
		err = fmt.Errorf("%s: %w", cmd, err)
	}
	return res, err
}
