package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// insert / lookup
// -----------------------------------------------------------------------------

// TestRegistery_InsertAndLookup verifies entries come back under the identity
// they were stored with.
func TestRegistery_InsertAndLookup(t *testing.T) {
	t.Parallel()

	m := newRegistery()
	assert.Equal(t, 0, m.size())

	rt := &registeredType{component: "GreeterImpl"}
	prev, replaced := m.insert(typeOf[error](), rt)
	assert.False(t, replaced)
	assert.Nil(t, prev)

	got, ok := m.lookup(typeOf[error]())
	require.True(t, ok)
	assert.Same(t, rt, got)
	assert.Equal(t, 1, m.size())
}

// TestRegistery_LookupMissing verifies lookup of an unregistered identity
// reports absent.
func TestRegistery_LookupMissing(t *testing.T) {
	t.Parallel()

	m := newRegistery()
	got, ok := m.lookup(typeOf[error]())
	assert.False(t, ok)
	assert.Nil(t, got)
}

// TestRegistery_InsertEvictsPrevious verifies re-inserting under the same
// identity returns the evicted entry and keeps exactly one registration.
func TestRegistery_InsertEvictsPrevious(t *testing.T) {
	t.Parallel()

	m := newRegistery()
	first := &registeredType{component: "First"}
	second := &registeredType{component: "Second"}

	m.insert(typeOf[error](), first)
	prev, replaced := m.insert(typeOf[error](), second)
	require.True(t, replaced)
	assert.Same(t, first, prev)

	got, ok := m.lookup(typeOf[error]())
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, m.size())
}

// TestRegistery_Interfaces verifies interfaces lists every registered identity.
func TestRegistery_Interfaces(t *testing.T) {
	t.Parallel()

	m := newRegistery()
	m.insert(typeOf[error](), &registeredType{component: "A"})
	m.insert(typeOf[Resolver](), &registeredType{component: "B"})

	names := m.interfaces()
	assert.Len(t, names, 2)
	assert.Contains(t, names, typeOf[error]().String())
	assert.Contains(t, names, typeOf[Resolver]().String())
}
