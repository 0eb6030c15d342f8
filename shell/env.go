package shell

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// DateLayout formats the DATE variable.
const DateLayout = "2006-01-02 15:04:05"

// Env is the variable set of one shell session. It is never read from or
// written to the process environment.
type Env struct {
	vars map[string]string
}

// NewEnv copies vars into a new environment.
func NewEnv(vars map[string]string) *Env {
	e := &Env{vars: make(map[string]string, len(vars))}
	maps.Copy(e.vars, vars)
	return e
}

// NewSessionEnv builds the standard session variables HOME, USER, PWD, DATE
// and SESSION, then layers extra on top.
func NewSessionEnv(home, user string, now time.Time, extra map[string]string) *Env {
	e := NewEnv(map[string]string{
		"HOME":    home,
		"USER":    user,
		"PWD":     "/",
		"DATE":    now.Format(DateLayout),
		"SESSION": uuid.NewString(),
	})
	maps.Copy(e.vars, extra)
	return e
}

// Get returns the value of name, or "" when it is unset.
func (e *Env) Get(name string) string {
	return e.vars[name]
}

// Set assigns name.
func (e *Env) Set(name, value string) {
	e.vars[name] = value
}

// Environ returns the variables as sorted NAME=value pairs.
func (e *Env) Environ() []string {
	pairs := make([]string, 0, len(e.vars))
	for _, name := range slices.Sorted(maps.Keys(e.vars)) {
		pairs = append(pairs, name+"="+e.vars[name])
	}
	return pairs
}

// Expand substitutes $NAME and ${NAME} references in s. Unset variables
// expand to the empty string. Everything else is kept verbatim, including
// other parameter forms such as ${NAME:-word}, command and arithmetic
// substitutions, quotes and backslashes.
func (e *Env) Expand(s string) string {
	if !strings.ContainsRune(s, '$') {
		return s
	}
	env := expand.ListEnviron(e.Environ()...)
	var b strings.Builder
	for i := 0; i < len(s); {
		name, n := paramRef(s[i:])
		if n == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(env.Get(name).String())
		i += n
	}
	return b.String()
}

// paramRef returns the variable named by a $NAME or ${NAME} reference at the
// start of s along with the reference length. The length is zero when s does
// not start with such a reference.
func paramRef(s string) (string, int) {
	if len(s) < 2 || s[0] != '$' {
		return "", 0
	}
	if s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 || !syntax.ValidName(s[2:end]) {
			return "", 0
		}
		return s[2:end], end + 1
	}
	n := 1
	for n < len(s) && isNameByte(s[n]) {
		n++
	}
	if !syntax.ValidName(s[1:n]) {
		return "", 0
	}
	return s[1:n], n
}

func isNameByte(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
