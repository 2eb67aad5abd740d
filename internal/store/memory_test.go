package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string
	Count int
}

func TestMemory_CreateAndGet(t *testing.T) {
	m := NewMemory[record]()

	require.NoError(t, m.Create("a", record{Name: "a", Count: 1}))

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, record{Name: "a", Count: 1}, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestMemory_Create_Duplicate(t *testing.T) {
	m := NewMemory[record]()

	require.NoError(t, m.Create("a", record{}))

	err := m.Create("a", record{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExists)
}

func TestMemory_Update(t *testing.T) {
	m := NewMemory[record]()
	require.NoError(t, m.Create("a", record{Count: 1}))

	updated, err := m.Update("a", func(r record) record {
		r.Count++
		return r
	})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Count)

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, got.Count)
}

func TestMemory_Update_NotFound(t *testing.T) {
	m := NewMemory[record]()

	_, err := m.Update("missing", func(r record) record { return r })

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory[record]()
	require.NoError(t, m.Create("a", record{}))

	require.NoError(t, m.Delete("a"))

	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	err := m.Delete("a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_List_InsertionOrder(t *testing.T) {
	m := NewMemory[record]()
	for i, key := range []string{"c", "a", "b"} {
		require.NoError(t, m.Create(key, record{Name: key, Count: i}))
	}

	got := m.List(nil, 0, 0)

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].Name)
	assert.Equal(t, "a", got[1].Name)
	assert.Equal(t, "b", got[2].Name)
}

func TestMemory_List_FilterLimitOffset(t *testing.T) {
	m := NewMemory[record]()
	for i, key := range []string{"a", "b", "c", "d"} {
		require.NoError(t, m.Create(key, record{Name: key, Count: i}))
	}

	even := m.List(func(r record) bool { return r.Count%2 == 0 }, 0, 0)
	require.Len(t, even, 2)
	assert.Equal(t, "a", even[0].Name)
	assert.Equal(t, "c", even[1].Name)

	page := m.List(nil, 2, 1)
	require.Len(t, page, 2)
	assert.Equal(t, "b", page[0].Name)
	assert.Equal(t, "c", page[1].Name)

	assert.Nil(t, m.List(nil, 0, 10))
}

func TestMemory_DeleteKeepsOrder(t *testing.T) {
	m := NewMemory[record]()
	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, m.Create(key, record{Name: key}))
	}

	require.NoError(t, m.Delete("b"))

	got := m.List(nil, 0, 0)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}

func TestMemory_Close(t *testing.T) {
	m := NewMemory[record]()
	require.NoError(t, m.Create("a", record{}))

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.Equal(t, 0, m.Len())
}
