package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// RunScript replays r one line at a time as if each line had been typed.
// Blank lines and lines starting with '#' are skipped. Each executed line is
// echoed after the prompt. A failing line is reported with its line number
// and replay continues; exit stops the replay and is passed on in the result.
func (s *Shell) RunScript(r io.Reader) (Result, error) {
	if s.scriptDepth >= maxScriptDepth {
		return Result{}, ErrScriptTooDeep
	}
	s.scriptDepth++
	defer func() { s.scriptDepth-- }()

	var out Result
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out.Lines = append(out.Lines, s.Prompt()+line)

		res, err := s.execute(line)
		if res.Clear {
			out.Lines = nil
			out.Clear = true
		}
		out.Lines = append(out.Lines, res.Lines...)
		if err != nil {
			s.logger.Debug("script line failed", "line", n, "err", err)
			out.Lines = append(out.Lines, Diagnostic(&ScriptLineError{Line: n, Err: err}))
			continue
		}
		if res.Exit {
			out.Exit = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("reading script: %w", err)
	}
	return out, nil
}

// RunScriptFile replays a script stored on the host filesystem. It is used
// for the startup script, so a missing file is reported in the output rather
// than stopping the session.
func (s *Shell) RunScriptFile(path string) Result {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: '%s'", ErrScriptNotFound, path)
		}
		s.logger.Warn("startup script unavailable", "path", path, "err", err)
		return Result{Lines: []string{Diagnostic(err)}, Err: err}
	}
	defer f.Close()

	s.logger.Info("running startup script", "path", path)
	res, err := s.RunScript(f)
	lines := append([]string{fmt.Sprintf("executing script '%s'", path), ""}, res.Lines...)
	if err != nil {
		lines = append(lines, Diagnostic(err))
		res.Err = err
	}
	res.Lines = append(lines, "")
	return res
}
