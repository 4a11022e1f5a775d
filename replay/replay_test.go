package replay

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travlist/datastruct/travlist"
	"travlist/logger"
)

func TestMain(m *testing.M) {
	logger.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newSession(t *testing.T, kind travlist.Kind, strict bool) (*Session, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	s, err := NewSession(Config{Kind: kind, Capacity: 5, Strict: strict}, &out)
	require.NoError(t, err)
	return s, &out
}

func parse(t *testing.T, script string) []Command {
	t.Helper()
	cmds, err := Parse(strings.NewReader(script))
	require.NoError(t, err)
	return cmds
}

func lines(out *bytes.Buffer) []string {
	s := strings.TrimRight(out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		script  string
		want    []Command
		wantErr error
	}{
		{
			name: "comments and blank lines",
			script: `# build
INSERT C B A

  advance 2
show`,
			want: []Command{
				{Line: 2, Name: "insert", Args: []string{"C", "B", "A"}},
				{Line: 4, Name: "advance", Args: []string{"2"}},
				{Line: 5, Name: "show", Args: []string{}},
			},
		},
		{name: "unknown command", script: "insert A\npush B", wantErr: ErrUnknownCommand},
		{name: "too many arguments", script: "delete A", wantErr: ErrSyntax},
		{name: "missing argument", script: "insert", wantErr: ErrSyntax},
		{name: "optional argument bound", script: "advance 1 2", wantErr: ErrSyntax},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmds, err := Parse(strings.NewReader(tc.script))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, cmds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmds)
		})
	}
}

func TestSession_Run(t *testing.T) {
	testCases := []struct {
		name   string
		script string
		// lines starting with ERR are matched as prefixes
		want []string
	}{
		{
			name: "navigation and queries",
			script: `insert E D C B A
advance 3
show
next
prev
lengths
items
show`,
			want: []string{"[A, B, C][D, E]:5", "D", "C", "3 2 5", "D E", "[A, B, C][D, E]:5"},
		},
		{
			name: "replace delete reverse",
			script: `insert E D C B A
advance 3
replace X
delete
reverse
show`,
			want: []string{"D", "X", "[E, C, B, A][]:5"},
		},
		{
			name: "swap rights between lists",
			script: `insert E D C B A
advance 3
new other 3
use other
insert Z Y X
advance
swap main
show
use main
show`,
			want: []string{"[X][D, E]:3", "[A, B, C][Y, Z]:5"},
		},
		{
			name: "splice",
			script: `insert C B A
advance
new other 3
use other
insert Y X
use main
splice other
show
use other
show`,
			want: []string{"[A, X, Y][B, C]:5", "[][]:3"},
		},
		{
			name: "failures are reported and replay goes on",
			script: `delete
next
retreat
insert A
use missing
end
retreat 2
show`,
			want: []string{
				"ERR line 1: delete",
				"(none)",
				"ERR line 3: retreat",
				"ERR line 5: use missing",
				"ERR line 7: retreat 2",
				"[A][]:5",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, kind := range travlist.Kinds {
				s, out := newSession(t, kind, false)
				require.NoError(t, s.Run(parse(t, tc.script)))

				got := lines(out)
				require.Len(t, got, len(tc.want), "%s: %v", kind, got)
				for i, want := range tc.want {
					if strings.HasPrefix(want, "ERR") {
						assert.True(t, strings.HasPrefix(got[i], want), "%s: %q", kind, got[i])
					} else {
						assert.Equal(t, want, got[i], kind)
					}
				}
			}
		})
	}
}

func TestSession_RunStrict(t *testing.T) {
	s, out := newSession(t, travlist.KindLinked, true)
	err := s.Run(parse(t, "insert A\nadvance\nadvance\nshow"))
	assert.ErrorIs(t, err, travlist.ErrInvalidState)
	assert.Contains(t, err.Error(), "line 3")
	assert.Empty(t, out.String())
}

func TestSession_Exec(t *testing.T) {
	testCases := []struct {
		name    string
		cmd     Command
		wantErr error
	}{
		{name: "unknown command", cmd: Command{Name: "pop"}, wantErr: ErrUnknownCommand},
		{name: "bad arity", cmd: Command{Name: "use"}, wantErr: ErrSyntax},
		{name: "duplicate list", cmd: Command{Name: "new", Args: []string{DefaultList}}, wantErr: ErrDuplicateList},
		{name: "capacity not a number", cmd: Command{Name: "new", Args: []string{"x", "many"}}, wantErr: ErrSyntax},
		{name: "capacity not positive", cmd: Command{Name: "new", Args: []string{"x", "0"}}, wantErr: travlist.ErrInvalidArgument},
		{name: "count not positive", cmd: Command{Name: "advance", Args: []string{"0"}}, wantErr: ErrSyntax},
		{name: "unknown swap target", cmd: Command{Name: "swap", Args: []string{"x"}}, wantErr: ErrUnknownList},
		{name: "unknown splice source", cmd: Command{Name: "splice", Args: []string{"x"}}, wantErr: ErrUnknownList},
		{name: "replace on empty right", cmd: Command{Name: "replace", Args: []string{"A"}}, wantErr: travlist.ErrInvalidState},
		{name: "new list", cmd: Command{Name: "new", Args: []string{"x", "2"}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newSession(t, travlist.KindSimple, false)
			err := s.Exec(tc.cmd)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSession_InsertIsAllOrNothing(t *testing.T) {
	for _, kind := range travlist.Kinds {
		s, _ := newSession(t, kind, false)
		require.NoError(t, s.Exec(Command{Name: "insert", Args: []string{"A", "B", "C"}}))

		err := s.Exec(Command{Name: "insert", Args: []string{"D", "E", "F"}})
		assert.ErrorIs(t, err, travlist.ErrInvalidArgument)
		l, ok := s.List(DefaultList)
		require.True(t, ok)
		assert.Equal(t, "[][C, B, A]:5", l.String())
	}
}

func TestSession_Lists(t *testing.T) {
	s, out := newSession(t, travlist.KindStack, false)
	assert.Equal(t, DefaultList, s.Current())
	require.NoError(t, s.Run(parse(t, "new b\nnew a 2\nuse a\ninsert X\nhash")))

	assert.Equal(t, []string{"a", "b", DefaultList}, s.Names())
	assert.Equal(t, "a", s.Current())
	l, ok := s.List("a")
	require.True(t, ok)
	assert.Equal(t, 2, l.Capacity())
	assert.Equal(t, fmt.Sprintf("%016x\n", travlist.Hash(l)), out.String())

	_, ok = s.List("c")
	assert.False(t, ok)
}

func TestNewSession(t *testing.T) {
	_, err := NewSession(Config{Kind: travlist.KindSimple, Capacity: 0}, io.Discard)
	assert.ErrorIs(t, err, travlist.ErrInvalidArgument)
	_, err = NewSession(Config{Kind: "heap", Capacity: 4}, io.Discard)
	assert.ErrorIs(t, err, travlist.ErrInvalidArgument)
}

func TestEquivalent(t *testing.T) {
	cmds := parse(t, `insert E D C B A
advance 3
new other 3
use other
insert Z Y X
advance
swap main
items
use main
reverse
show
delete
hash
splice other
lengths`)

	report, err := Equivalent(cmds, 5)
	require.NoError(t, err)
	assert.True(t, report.Equal(), report.Diverging)
	require.Len(t, report.Transcripts, len(travlist.Kinds))
	want := report.Transcripts[travlist.KindSimple]
	assert.Contains(t, want, "[Z, Y, C, B, A][]:5")
	for _, kind := range travlist.Kinds {
		assert.Equal(t, want, report.Transcripts[kind], kind)
	}

	_, err = Equivalent(cmds, 0)
	assert.ErrorIs(t, err, travlist.ErrInvalidArgument)
}

func TestSameLists(t *testing.T) {
	a, _ := newSession(t, travlist.KindSimple, false)
	b, _ := newSession(t, travlist.KindLinked, false)
	assert.True(t, sameLists(a, b))

	require.NoError(t, b.Exec(Command{Name: "insert", Args: []string{"A"}}))
	assert.False(t, sameLists(a, b))

	require.NoError(t, a.Exec(Command{Name: "insert", Args: []string{"A"}}))
	require.NoError(t, a.Exec(Command{Name: "new", Args: []string{"x"}}))
	assert.False(t, sameLists(a, b))
}
