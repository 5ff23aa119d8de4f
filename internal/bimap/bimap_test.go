package bimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLookupBothWays(t *testing.T) {
	m := New[uint16, string]()
	m.Insert(1, "Bulbasaur")
	m.Insert(4, "Charmander")

	name, ok := m.Name(1)
	require.True(t, ok)
	assert.Equal(t, "Bulbasaur", name)

	id, ok := m.ID("Charmander")
	require.True(t, ok)
	assert.EqualValues(t, 4, id)

	_, ok = m.Name(999)
	assert.False(t, ok)
}

func TestFromSlice(t *testing.T) {
	m := FromSlice([]string{"Zero", "One", "Two"}, func(i int) int { return i })
	name, ok := m.Name(2)
	require.True(t, ok)
	assert.Equal(t, "Two", name)
}

func TestInsertAliasKeepsFirstCanonicalID(t *testing.T) {
	m := New[int, string]()
	m.Insert(10, "Cold Storage")
	m.Insert(11, "Cold Storage") // alias id, same display name

	name, ok := m.Name(11)
	require.True(t, ok)
	assert.Equal(t, "Cold Storage", name)

	id, ok := m.ID("Cold Storage")
	require.True(t, ok)
	assert.Equal(t, 10, id, "backward lookup should keep the first-seen canonical id")
}
