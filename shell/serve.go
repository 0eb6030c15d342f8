package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// Serve runs a line-mode session: it prints the prompt, reads one line from r,
// executes it and writes the output to w until exit, end of input, or ctx is
// done. cls has no effect in line mode.
func (s *Shell) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprint(w, s.Prompt()); err != nil {
			return err
		}
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}
		res := s.Execute(scanner.Text())
		if err := WriteLines(w, res.Lines); err != nil {
			return err
		}
		if res.Exit {
			return nil
		}
	}
}

// WriteLines writes each line to w followed by a newline.
func WriteLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
