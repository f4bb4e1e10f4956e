// Package shell interprets line commands against a scope tree. It is the
// driver surface behind the scopes CLI: each command maps directly onto one
// scope operation, with a frame stack standing in for nested lexical
// regions. Values are plain strings.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	scopestore "github.com/storyfeet/scope-store"
)

// Shell holds the frame stack and the writer command output goes to. The
// bottom frame is the tree's root and cannot be popped.
type Shell struct {
	frames []scopestore.Handle[string]
	out    io.Writer
}

// New returns a Shell with a fresh root frame writing output to out.
func New(out io.Writer) *Shell {
	return &Shell{
		frames: []scopestore.Handle[string]{scopestore.New[string]()},
		out:    out,
	}
}

// Depth returns the current frame depth; the root frame is depth 0.
func (s *Shell) Depth() int {
	return len(s.frames) - 1
}

func (s *Shell) current() scopestore.Handle[string] {
	return s.frames[len(s.frames)-1]
}

// Run evaluates every line from r, stopping at the first failing command
// with an error carrying its line number.
func (s *Shell) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if err := s.Eval(sc.Text()); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

// Eval handles one command line. Blank lines and lines starting with # are
// ignored.
//
// Commands:
//
//	let id val...     declare id in the current frame
//	set id val...     assign to the nearest existing id, else declare here
//	global id val...  declare id at the root
//	get id            print the value of id, or <unset>
//	append id text    append text to the nearest existing id and print it
//	push              enter a child frame
//	pop               leave the current frame (error at the root)
//	depth             print the current frame depth
//	dump              print the current frame's chain
func (s *Shell) Eval(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "let", "set", "global":
		if len(args) < 2 {
			return fmt.Errorf("%s: want identifier and value, got %d argument(s)", cmd, len(args))
		}
		id, val := args[0], strings.Join(args[1:], " ")
		switch cmd {
		case "let":
			s.current().SetLocal(id, val)
		case "set":
			s.current().Set(id, val)
		case "global":
			s.current().SetGlobal(id, val)
		}

	case "get":
		if len(args) != 1 {
			return fmt.Errorf("get: want exactly one identifier, got %d argument(s)", len(args))
		}
		v, ok := s.current().Get(args[0])
		if !ok {
			v = "<unset>"
		}
		fmt.Fprintln(s.out, v)

	case "append":
		if len(args) < 2 {
			return fmt.Errorf("append: want identifier and text, got %d argument(s)", len(args))
		}
		id, suffix := args[0], strings.Join(args[1:], " ")
		v, ok := scopestore.Update(s.current(), id, func(v *string) string {
			*v += suffix
			return *v
		})
		if !ok {
			v = "<unset>"
		}
		fmt.Fprintln(s.out, v)

	case "push":
		s.frames = append(s.frames, s.current().Child())

	case "pop":
		if s.Depth() == 0 {
			return fmt.Errorf("pop: already at the root frame")
		}
		s.frames = s.frames[:len(s.frames)-1]

	case "depth":
		fmt.Fprintln(s.out, s.Depth())

	case "dump":
		s.current().Dump(s.out)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}
