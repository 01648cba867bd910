package container

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceList(t *testing.T) {
	l := NewSliceList("a", "b", "c")
	require.Equal(t, 3, l.Len())

	l.Append("d")
	l.Insert(0, "z")
	assert.Equal(t, []string{"z", "a", "b", "c", "d"}, Values[string](l))

	assert.Equal(t, "a", l.Set(1, "A"))
	assert.Equal(t, 1, l.IndexOf("A"))
	assert.Equal(t, -1, l.IndexOf("missing"))

	assert.Equal(t, "z", l.RemoveAt(0))
	assert.True(t, l.Remove("c"))
	assert.False(t, l.Remove("c"))
	assert.Equal(t, "[A b d]", l.String())

	n := l.RemoveFunc(func(s string) bool { return s != "b" })
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"b"}, Values[string](l))

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Contains("b"))
}

func TestSliceListCopyIsIndependent(t *testing.T) {
	src := NewSliceList(1, 2, 3)
	dst := Copy[int](SliceListFactory[int]()(), src)
	dst.Append(4)

	assert.Equal(t, 3, src.Len())
	assert.Equal(t, 4, dst.Len())
}

func TestSets(t *testing.T) {
	factories := map[string]func() Set[int]{
		"hash":    HashSetFactory[int](),
		"ordered": OrderedSetFactory[int](),
		"swiss":   SwissSetFactory[int](),
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			s := factory()
			assert.True(t, s.Add(1))
			assert.True(t, s.Add(2))
			assert.False(t, s.Add(2))
			assert.True(t, s.Add(3))
			assert.Equal(t, 3, s.Len())
			assert.True(t, s.Contains(2))

			assert.True(t, s.Remove(2))
			assert.False(t, s.Remove(2))

			cp := CopySet[int](factory(), s)
			assert.NotSame(t, s, cp)
			got := Values[int](cp)
			slices.Sort(got)
			assert.Equal(t, []int{1, 3}, got)

			assert.Equal(t, 1, s.RemoveFunc(func(e int) bool { return e > 2 }))
			assert.Equal(t, []int{1}, Values[int](s))

			s.Clear()
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestOrderedSetKeepsInsertionOrder(t *testing.T) {
	s := NewOrderedSet(5, 3, 9, 3, 1)
	assert.Equal(t, []int{5, 3, 9, 1}, Values[int](s))

	s.Remove(3)
	s.Add(3)
	assert.Equal(t, []int{5, 9, 1, 3}, Values[int](s))

	s.RemoveFunc(func(e int) bool { return e == 9 })
	assert.True(t, s.Remove(1), "index must stay consistent after RemoveFunc")
	assert.Equal(t, "[5 3]", s.String())
}

func TestMaps(t *testing.T) {
	factories := map[string]func() Map[string, int]{
		"hash":    HashMapFactory[string, int](),
		"ordered": OrderedMapFactory[string, int](),
		"swiss":   SwissMapFactory[string, int](),
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			m := factory()
			_, had := m.Put("a", 1)
			assert.False(t, had)
			m.Put("b", 2)
			old, had := m.Put("a", 10)
			assert.True(t, had)
			assert.Equal(t, 1, old)

			v, ok := m.Get("a")
			assert.True(t, ok)
			assert.Equal(t, 10, v)
			assert.Equal(t, 2, m.Len())

			cp := CopyMap[string, int](factory(), m)
			keys := Keys[string, int](cp)
			slices.Sort(keys)
			assert.Equal(t, []string{"a", "b"}, keys)

			old, ok = m.Delete("b")
			assert.True(t, ok)
			assert.Equal(t, 2, old)
			_, ok = m.Delete("b")
			assert.False(t, ok)

			m.Put("c", 3)
			assert.Equal(t, 1, m.RemoveFunc(func(_ string, v int) bool { return v == 3 }))
			assert.Equal(t, 1, m.Len())

			m.Clear()
			assert.Equal(t, 0, m.Len())
			assert.Equal(t, 2, cp.Len())
		})
	}
}

func TestOrderedMapOrder(t *testing.T) {
	m := NewOrderedMap[string, int]()
	m.Put("x", 1)
	m.Put("y", 2)
	m.Put("x", 3)
	assert.Equal(t, "map[x:3 y:2]", m.String())

	m.Delete("x")
	m.Put("x", 4)
	assert.Equal(t, []string{"y", "x"}, Keys[string, int](m))
}
