package travlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRightIterator(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		it := l.Iterator()

		var got []string
		for it.HasNext() {
			e, err := it.Next()
			require.NoError(t, err)
			got = append(got, e)
		}
		assert.Equal(t, []string{"D", "E"}, got)
		assertCursor(t, l, 3, 2, "C", "D")

		_, err := it.Next()
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestRightIterator_Abandoned(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		it := l.Iterator()
		assert.True(t, it.HasNext())

		e, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, "D", e)
		assertCursor(t, l, 4, 1, "D", "E")
	})
}

func TestRightIterator_Empty(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := build(t, kind, 3, []string{"A"}, nil)
		it := l.Iterator()
		assert.False(t, it.HasNext())
		assertCursor(t, l, 1, 0, "A", "")
	})
}

func TestAll(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		var got []string
		for e := range l.All() {
			got = append(got, e)
		}
		assert.Equal(t, []string{"D", "E"}, got)
		assertCursor(t, l, 3, 2, "C", "D")

		for e := range l.All() {
			assert.Equal(t, "D", e)
			break
		}
		assertCursor(t, l, 4, 1, "D", "E")
	})
}

func TestListIterator(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		it := l.ListIterator()

		assert.True(t, it.HasNext())
		e, err := it.Next()
		require.NoError(t, err)
		assert.Equal(t, "D", e)
		assertCursor(t, l, 4, 1, "D", "E")

		assert.True(t, it.HasPrevious())
		e, err = it.Previous()
		require.NoError(t, err)
		assert.Equal(t, "D", e)
		assertCursor(t, l, 3, 2, "C", "D")
		assert.Equal(t, 2, it.PreviousIndex())
		assert.Equal(t, 3, it.NextIndex())

		assert.NoError(t, it.Remove())
		assertCursor(t, l, 3, 1, "C", "E")

		assert.ErrorIs(t, it.Set("X"), ErrInvalidState)
		assert.ErrorIs(t, it.Remove(), ErrInvalidState)

		assert.NoError(t, it.Add("Y"))
		assertCursor(t, l, 3, 2, "C", "Y")
		assert.Equal(t, "[A, B, C][Y, E]:5", l.String())
	})
}

func TestListIterator_RemoveAfterNext(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		it := l.ListIterator()
		_, err := it.Next()
		require.NoError(t, err)

		assert.NoError(t, it.Remove())
		assert.Equal(t, "[A, B, C][E]:5", l.String())
	})
}

func TestListIterator_Set(t *testing.T) {
	testCases := []struct {
		name     string
		move     func(it *ListIterator[string]) (string, error)
		wantSeen string
		wantStr  string
	}{
		{
			name:     "after next",
			move:     (*ListIterator[string]).Next,
			wantSeen: "D",
			wantStr:  "[A, B, C, X][E]:5",
		},
		{
			name:     "after previous",
			move:     (*ListIterator[string]).Previous,
			wantSeen: "C",
			wantStr:  "[A, B][X, D, E]:5",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eachKind(t, func(t *testing.T, kind Kind) {
				l := abcDE(t, kind)
				it := l.ListIterator()
				seen, err := tc.move(it)
				require.NoError(t, err)
				assert.Equal(t, tc.wantSeen, seen)

				assert.NoError(t, it.Set("X"))
				assert.Equal(t, tc.wantStr, l.String())
				assert.ErrorIs(t, it.Set("Z"), ErrInvalidState)
			})
		})
	}
}

func TestListIterator_Errors(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l, err := New[any](kind, 1)
		require.NoError(t, err)
		it := l.ListIterator()

		assert.False(t, it.HasNext())
		assert.False(t, it.HasPrevious())
		_, err = it.Next()
		assert.ErrorIs(t, err, ErrInvalidState)
		_, err = it.Previous()
		assert.ErrorIs(t, err, ErrInvalidState)
		assert.ErrorIs(t, it.Remove(), ErrInvalidState)

		assert.ErrorIs(t, it.Add(nil), ErrInvalidArgument)
		assert.NoError(t, it.Add("A"))
		assert.ErrorIs(t, it.Add("B"), ErrInvalidArgument)

		_, err = it.Next()
		require.NoError(t, err)
		assert.ErrorIs(t, it.Set(nil), ErrInvalidArgument)
		assert.Equal(t, "[A][]:1", l.String())
	})
}

func TestListIterator_WalkBothWays(t *testing.T) {
	eachKind(t, func(t *testing.T, kind Kind) {
		l := abcDE(t, kind)
		it := l.ListIterator()

		var backwards []string
		for it.HasPrevious() {
			e, err := it.Previous()
			require.NoError(t, err)
			backwards = append(backwards, e)
		}
		assert.Equal(t, []string{"C", "B", "A"}, backwards)

		var forwards []string
		for it.HasNext() {
			e, err := it.Next()
			require.NoError(t, err)
			forwards = append(forwards, e)
		}
		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, forwards)
		assertCursor(t, l, 5, 0, "E", "")
	})
}
