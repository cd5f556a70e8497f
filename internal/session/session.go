/*
Package session interprets scripts operating on named versions of a persistent
dictionary of strings.

    # comments and blank lines are ignored
    v1 = empty add a 1
    v2 = v1 add b 2
    v3 = v2 remove a
    keys v1          # prints [a]
    get v1 a         # prints 1

Statements are either assignments of a new version

    NAME = BASE add KEY VALUE
    NAME = BASE remove KEY
    NAME = BASE touch

or queries

    get NAME KEY | has NAME KEY | size NAME | keys NAME | print NAME
    dump NAME | stats NAME | check

The version 'empty' is predefined and cannot be re-assigned.
*/
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/pdict/persistent/dict"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pdict.session'.
func tracer() tracing.Trace {
	return tracing.Select("pdict.session")
}

// Version is the type of dictionaries a session operates on.
type Version = dict.Dict[string, string]

// EmptyName is the name of the predefined empty version.
const EmptyName = "empty"

var (
	ErrUnknownVersion = errors.New("unknown version")
	ErrSyntax         = errors.New("syntax error")
	ErrReadOnly       = errors.New("version cannot be re-assigned")
	ErrCheckFailed    = errors.New("representation check failed")
)

// Session holds named versions and executes statements on them.
type Session struct {
	versions map[string]Version
	out      io.Writer
	check    bool
	line     int
}

// Option configures a session.
type Option func(*Session)

// AutoCheck makes the session verify all its versions after every statement.
func AutoCheck(on bool) Option {
	return func(s *Session) {
		s.check = on
	}
}

// New creates a session writing query results to out.
func New(out io.Writer, opts ...Option) *Session {
	s := &Session{
		versions: map[string]Version{EmptyName: dict.Empty[string, string]()},
		out:      out,
	}
	for _, option := range opts {
		option(s)
	}
	return s
}

// Run executes a script, statement by statement. It stops at the first error,
// which is annotated with the line number.
func (s *Session) Run(script io.Reader) error {
	scanner := bufio.NewScanner(script)
	for scanner.Scan() {
		if err := s.Exec(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Exec executes a single statement.
func (s *Session) Exec(statement string) error {
	s.line++
	if i := strings.IndexByte(statement, '#'); i >= 0 {
		statement = statement[:i]
	}
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return nil
	}
	tracer().Debugf("line %d: %v", s.line, fields)
	var err error
	if len(fields) >= 2 && fields[1] == "=" {
		err = s.assign(fields[0], fields[2:])
	} else {
		err = s.query(fields[0], fields[1:])
	}
	if err == nil && s.check {
		err = s.Verify()
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", s.line, err)
	}
	return nil
}

// Version returns the version with a given name.
func (s *Session) Version(name string) (Version, bool) {
	v, ok := s.versions[name]
	return v, ok
}

// Names returns the names of all versions, in ascending order.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.versions))
	for name := range s.versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Verify checks the representation of all versions of the session.
func (s *Session) Verify() error {
	all := make([]Version, 0, len(s.versions))
	for _, name := range s.Names() {
		all = append(all, s.versions[name])
	}
	if err := dict.Verify(all...); err != nil {
		tracer().Errorf("verification failed: %v", err)
		return fmt.Errorf("%w: %v", ErrCheckFailed, err)
	}
	return nil
}

func (s *Session) assign(name string, expr []string) error {
	if name == EmptyName {
		return fmt.Errorf("%w: %s", ErrReadOnly, name)
	}
	if len(expr) < 2 {
		return fmt.Errorf("%w: expected NAME = BASE OP ARGS…", ErrSyntax)
	}
	base, err := s.lookup(expr[0])
	if err != nil {
		return err
	}
	op, args := expr[1], expr[2:]
	var v Version
	switch {
	case op == "add" && len(args) == 2:
		v = base.Add(args[0], args[1])
	case op == "remove" && len(args) == 1:
		v = base.Remove(args[0])
	case op == "touch" && len(args) == 0:
		v = base.Touch()
	default:
		return fmt.Errorf("%w: cannot apply %q to %d argument(s)", ErrSyntax, op, len(args))
	}
	s.versions[name] = v
	return nil
}

func (s *Session) query(cmd string, args []string) error {
	if cmd == "check" && len(args) == 0 {
		if err := s.Verify(); err != nil {
			return err
		}
		return s.printf("ok\n")
	}
	arity := map[string]int{
		"get": 2, "has": 2, "size": 1, "keys": 1, "print": 1, "dump": 1, "stats": 1,
	}
	n, ok := arity[cmd]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
	}
	if len(args) != n {
		return fmt.Errorf("%w: %s expects %d argument(s)", ErrSyntax, cmd, n)
	}
	v, err := s.lookup(args[0])
	if err != nil {
		return err
	}
	switch cmd {
	case "get":
		return s.printf("%s\n", v.Lookup(args[1]).WithDefault("<absent>"))
	case "has":
		return s.printf("%v\n", v.ContainsKey(args[1]))
	case "size":
		return s.printf("%d\n", v.Size())
	case "keys":
		return s.printf("%v\n", v.Keys())
	case "print":
		return s.printf("%s\n", v)
	case "dump":
		return s.printf("%s", v.Dump())
	}
	st := v.Stats()
	return s.printf("size=%d table=%d edits=%d rotations=%d distance=%d\n",
		st.Size, st.TableSize, st.Edits, st.Rotations, st.Distance)
}

func (s *Session) lookup(name string) (Version, error) {
	v, ok := s.versions[name]
	if !ok {
		return v, fmt.Errorf("%w: %s", ErrUnknownVersion, name)
	}
	return v, nil
}

func (s *Session) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.out, format, args...)
	return err
}
