package namedlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	name  string
	value int
}

func newEntries(names ...string) *List[*entry] {
	l := New(func(e *entry) string { return e.name })
	for i, n := range names {
		l.Add(&entry{n, i})
	}
	return l
}

func TestAddIdempotent(t *testing.T) {
	require := require.New(t)

	l := newEntries("A", "B")
	require.Equal(2, l.Len())

	i := l.Add(&entry{"A", 99})
	require.Equal(0, i)
	require.Equal(2, l.Len())

	e, ok := l.GetByKey("A")
	require.True(ok)
	require.Equal(0, e.value, "duplicate add keeps the original value")

	require.Equal(2, l.Add(&entry{"C", 2}))
}

func TestLookupMiss(t *testing.T) {
	require := require.New(t)

	l := newEntries("A")
	require.Equal(-1, l.IndexOf("a"))
	require.False(l.Contains("Z"))

	_, ok := l.Get(1)
	require.False(ok)
	_, ok = l.Get(-1)
	require.False(ok)
	_, ok = l.GetByKey("Z")
	require.False(ok)
	_, ok = l.RemoveIndex(5)
	require.False(ok)
	require.False(l.RemoveKey("Z"))
}

func TestRemoveRenumbers(t *testing.T) {
	require := require.New(t)

	l := newEntries("A", "B", "C", "D", "E")
	e, ok := l.RemoveIndex(1)
	require.True(ok)
	require.Equal("B", e.name)
	require.Equal(4, l.Len())

	for i, want := range []string{"A", "C", "D", "E"} {
		got, ok := l.Get(i)
		require.True(ok)
		require.Equal(want, got.name)
		require.Equal(i, l.IndexOf(want))
	}
	require.Equal(-1, l.IndexOf("B"))

	require.True(l.RemoveKey("A"))
	require.Equal(0, l.IndexOf("C"))
	require.Equal(2, l.IndexOf("E"))

	require.Equal(3, l.Add(&entry{"B", 7}))
}

func TestIterationOrder(t *testing.T) {
	require := require.New(t)

	l := newEntries("X", "M", "A")
	var names []string
	for i, e := range l.All() {
		require.Equal(i, l.IndexOf(e.name))
		names = append(names, e.name)
	}
	require.Equal([]string{"X", "M", "A"}, names)

	for range l.All() {
		break
	}

	vals := l.Values()
	vals[0] = nil
	first, _ := l.Get(0)
	require.NotNil(first, "Values returns a copy")
}

func TestSortAndMove(t *testing.T) {
	require := require.New(t)

	l := newEntries("C", "A", "B")
	l.SortFunc(func(a, b *entry) int { return strings.Compare(a.name, b.name) })
	require.Equal(0, l.IndexOf("A"))
	require.Equal(2, l.IndexOf("C"))

	require.True(l.Move(0, 2))
	require.Equal(2, l.IndexOf("A"))
	require.Equal(0, l.IndexOf("B"))
	require.False(l.Move(0, 3))
}

func TestClear(t *testing.T) {
	l := newEntries("A", "B")
	l.Clear()
	require.True(t, l.IsEmpty())
	require.False(t, l.Contains("A"))
	require.Equal(t, 0, l.Add(&entry{"B", 0}))
}
