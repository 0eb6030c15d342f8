package shell

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dendrascience/vfsh/archive"
	"github.com/dendrascience/vfsh/vfs"
)

func (s *Shell) cmdLs(args []string) (Result, error) {
	if len(args) > 1 {
		return Result{}, usage("ls [path]")
	}
	path := "."
	if len(args) == 1 {
		path = args[0]
	}
	names := s.fs.ListDir(path)
	if len(names) == 0 && !s.fs.IsDir(path) {
		return Result{}, fmt.Errorf("cannot access '%s': %w", path, ErrPathNotFound)
	}
	return Result{Lines: names}, nil
}

func (s *Shell) cmdCd(args []string) (Result, error) {
	if len(args) > 1 {
		return Result{}, usage("cd [path]")
	}
	target := vfs.Root
	if len(args) == 1 {
		target = args[0]
	}
	if !s.fs.ChangeDir(target) {
		return Result{}, fmt.Errorf("%s: %w", target, ErrPathNotFound)
	}
	s.env.Set("PWD", s.fs.Cwd())
	return Result{}, nil
}

func (s *Shell) cmdPwd(args []string) (Result, error) {
	if len(args) > 0 {
		return Result{}, usage("pwd")
	}
	return Result{Lines: []string{s.fs.Cwd()}}, nil
}

func (s *Shell) cmdEcho(args []string) (Result, error) {
	return Result{Lines: []string{strings.Join(args, " ")}}, nil
}

func (s *Shell) cmdCls(args []string) (Result, error) {
	return Result{Clear: true}, nil
}

func (s *Shell) cmdTree(args []string) (Result, error) {
	depth := vfs.Unlimited
	var path string
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "-L":
			if i+1 >= len(args) {
				return Result{}, usage("tree [-L depth] [path]")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n < 1 {
				return Result{}, usage("tree: invalid depth '%s'", args[i+1])
			}
			depth = n
			i++
		case path == "":
			path = args[i]
		default:
			return Result{}, usage("tree [-L depth] [path]")
		}
	}
	if path == "" {
		path = "."
	}
	if !s.fs.IsDir(path) {
		if _, ok := s.fs.Lookup(path); ok {
			return Result{}, fmt.Errorf("%s: %w", path, ErrNotADirectory)
		}
		return Result{}, fmt.Errorf("%s: %w", path, ErrPathNotFound)
	}

	body := s.fs.Tree(path, depth)
	dirs := 0
	for _, line := range body {
		if strings.HasSuffix(line, "/") {
			dirs++
		}
	}
	lines := make([]string, 0, len(body)+2)
	lines = append(lines, path)
	lines = append(lines, body...)
	lines = append(lines, fmt.Sprintf("%d directories, %d files", dirs, len(body)-dirs))
	return Result{Lines: lines}, nil
}

func (s *Shell) cmdTac(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usage("tac <path>")
	}
	text, ok := s.fs.TextContent(args[0])
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", args[0], ErrPathNotFound)
	}
	lines := splitLines(text)
	slices.Reverse(lines)
	return Result{Lines: lines}, nil
}

func (s *Shell) cmdScript(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usage("script <path>")
	}
	text, ok := s.fs.TextContent(args[0])
	if !ok {
		return Result{}, fmt.Errorf("%s: %w", args[0], ErrPathNotFound)
	}
	return s.RunScript(strings.NewReader(text))
}

func (s *Shell) cmdVfs(args []string) (Result, error) {
	if len(args) != 1 {
		return Result{}, usage("vfs <archive-path>")
	}
	entries, err := archive.Load(args[0])
	if err != nil {
		return Result{}, err
	}
	s.fs.Replace(entries)
	s.source = args[0]
	s.env.Set("PWD", s.fs.Cwd())
	s.logger.Info("filesystem reloaded", "archive", args[0], "entries", len(entries))
	return Result{Lines: []string{fmt.Sprintf("loaded %d entries from %s", len(entries), args[0])}}, nil
}

func (s *Shell) cmdExit(args []string) (Result, error) {
	return Result{Exit: true}, nil
}

// splitLines splits text on newlines, dropping one trailing newline and any
// carriage returns so that "a\nb\n" yields two lines.
func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
