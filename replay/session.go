package replay

import (
	"fmt"
	"io"
	"slices"

	"github.com/pkg/errors"

	"travlist/datastruct/travlist"
	"travlist/logger"
)

// DefaultList is the list every session starts with and selects.
const DefaultList = "main"

type Config struct {
	Kind     travlist.Kind
	Capacity int
	// Strict stops Run at the first failing command.
	Strict bool
}

// Session replays commands against named lists of one backing store. Query
// commands write one line each to the output.
type Session struct {
	kind     travlist.Kind
	capacity int
	strict   bool
	out      io.Writer
	lists    map[string]travlist.TravList[string]
	current  string
}

func NewSession(cfg Config, out io.Writer) (*Session, error) {
	s := &Session{
		kind:     cfg.Kind,
		capacity: cfg.Capacity,
		strict:   cfg.Strict,
		out:      out,
		lists:    make(map[string]travlist.TravList[string]),
	}
	if err := s.create(DefaultList, cfg.Capacity); err != nil {
		return nil, err
	}
	s.current = DefaultList
	return s, nil
}

// List returns the list registered under name.
func (s *Session) List(name string) (travlist.TravList[string], bool) {
	l, ok := s.lists[name]
	return l, ok
}

// Names returns the registered list names, sorted.
func (s *Session) Names() []string {
	names := make([]string, 0, len(s.lists))
	for name := range s.lists {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Current returns the name of the selected list.
func (s *Session) Current() string {
	return s.current
}

// Exec runs a single command against the selected list.
func (s *Session) Exec(cmd Command) error {
	if err := check(cmd); err != nil {
		return err
	}
	c := getCommand(cmd.Name)
	if err := c.exeFunc(s, cmd.Args); err != nil {
		return errors.WithMessagef(err, "line %d: %s", cmd.Line, cmd)
	}
	return nil
}

// Run executes cmds in order. A failing command is reported on the output
// and replay goes on, unless the session is strict.
func (s *Session) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if logger.IsEnabledDebug() {
			logger.DebugF("%s list %s: %s", s.kind, s.current, cmd)
		}
		if err := s.Exec(cmd); err != nil {
			logger.WarnF("%s list %s: %v", s.kind, s.current, err)
			if s.strict {
				return err
			}
			s.println("ERR", err)
		}
	}
	return nil
}

func (s *Session) create(name string, capacity int) error {
	if _, ok := s.lists[name]; ok {
		return errors.WithMessagef(ErrDuplicateList, "%q", name)
	}
	l, err := travlist.New[string](s.kind, capacity)
	if err != nil {
		return err
	}
	s.lists[name] = l
	return nil
}

func (s *Session) lookup(name string) (travlist.TravList[string], error) {
	l, ok := s.lists[name]
	if !ok {
		return nil, errors.WithMessagef(ErrUnknownList, "%q", name)
	}
	return l, nil
}

func (s *Session) selected() travlist.TravList[string] {
	return s.lists[s.current]
}

func (s *Session) println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}
