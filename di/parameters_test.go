package di

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewParameterBag
// -----------------------------------------------------------------------------

// TestNewParameterBag_Empty verifies NewParameterBag initializes a non-nil, empty bag.
func TestNewParameterBag_Empty(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	require.NotNil(t, bag)
	require.NotNil(t, bag.params)
	assert.Equal(t, 0, bag.Len())
}

//
// -----------------------------------------------------------------------------
// InsertNamed / RemoveNamed
// -----------------------------------------------------------------------------

// TestNamed_RoundTrip verifies values of various types round-trip through
// InsertNamed/RemoveNamed unchanged.
func TestNamed_RoundTrip(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()

	InsertNamed(bag, "key 1", "value 1")
	InsertNamed(bag, "key 2", "value 2")
	InsertNamed(bag, "key 3", 123)

	s, ok := RemoveNamed[string](bag, "key 1")
	require.True(t, ok)
	assert.Equal(t, "value 1", s)

	n, ok := RemoveNamed[int](bag, "key 3")
	require.True(t, ok)
	assert.Equal(t, 123, n)
}

// TestRemoveNamed_WrongType verifies a removal typed differently from the
// stored value reports absent and leaves the entry in place.
func TestRemoveNamed_WrongType(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	InsertNamed(bag, "key 2", "value 2")

	// A string cannot come back as the bag's own parameter type.
	_, ok := RemoveNamed[parameter](bag, "key 2")
	assert.False(t, ok)

	// The value is still retrievable under the right type.
	s, ok := RemoveNamed[string](bag, "key 2")
	require.True(t, ok)
	assert.Equal(t, "value 2", s)
}

// TestRemoveNamed_Missing verifies removal of an unknown name reports absent.
func TestRemoveNamed_Missing(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	_, ok := RemoveNamed[string](bag, "missing")
	assert.False(t, ok)
}

// TestInsertNamed_OverwriteAcrossTypes verifies a later insert under the same
// name overwrites regardless of type: only the new value is retrievable, and
// the displaced value of a different type is not reported as previous.
func TestInsertNamed_OverwriteAcrossTypes(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()

	_, had := InsertNamed(bag, "key 4", float32(123.323))
	assert.False(t, had)

	// Overwrites the float; previous value has a different type, so it is
	// discarded rather than returned mis-typed.
	_, had = InsertNamed(bag, "key 4", true)
	assert.False(t, had)

	// The float is unrecoverable.
	_, ok := RemoveNamed[float32](bag, "key 4")
	assert.False(t, ok)

	v, ok := RemoveNamed[bool](bag, "key 4")
	require.True(t, ok)
	assert.True(t, v)
}

// TestInsertNamed_ReturnsPrevious verifies re-inserting under the same name
// and type returns the displaced value, typed.
func TestInsertNamed_ReturnsPrevious(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()

	InsertNamed(bag, "retries", 3)
	prev, had := InsertNamed(bag, "retries", 5)
	require.True(t, had)
	assert.Equal(t, 3, prev)

	v, ok := RemoveNamed[int](bag, "retries")
	require.True(t, ok)
	assert.Equal(t, 5, v)
}

//
// -----------------------------------------------------------------------------
// InsertTyped / RemoveTyped
// -----------------------------------------------------------------------------

// TestTyped_RoundTrip verifies type-keyed storage round-trips values and keeps
// one slot per type.
func TestTyped_RoundTrip(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()

	InsertTyped(bag, "value 1")
	InsertTyped(bag, 123)
	InsertTyped(bag, float32(123.323))
	InsertTyped(bag, true)

	s, ok := RemoveTyped[string](bag)
	require.True(t, ok)
	assert.Equal(t, "value 1", s)

	n, ok := RemoveTyped[int](bag)
	require.True(t, ok)
	assert.Equal(t, 123, n)

	v, ok := RemoveTyped[bool](bag)
	require.True(t, ok)
	assert.True(t, v)
}

// TestRemoveTyped_Missing verifies removal of a never-inserted type reports absent.
func TestRemoveTyped_Missing(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	InsertTyped(bag, "only a string")

	_, ok := RemoveTyped[parameter](bag)
	assert.False(t, ok)
}

// TestInsertTyped_Overwrite verifies one slot per type: re-inserting the same
// type returns the previous value and only the new one remains.
func TestInsertTyped_Overwrite(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()

	_, had := InsertTyped(bag, 1)
	assert.False(t, had)

	prev, had := InsertTyped(bag, 2)
	require.True(t, had)
	assert.Equal(t, 1, prev)

	v, ok := RemoveTyped[int](bag)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 0, bag.Len())
}

// TestTyped_InterfaceIdentity verifies the static type parameter is the
// identity, so an interface-typed insert is distinct from its concrete type.
func TestTyped_InterfaceIdentity(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	InsertTyped[error](bag, assert.AnError)

	// Stored under the error interface identity, not the concrete type.
	got, ok := RemoveTyped[error](bag)
	require.True(t, ok)
	assert.Equal(t, assert.AnError, got)
}

//
// -----------------------------------------------------------------------------
// Introspection / nil safety
// -----------------------------------------------------------------------------

// TestParameterBag_Introspection verifies Len and HasNamed.
func TestParameterBag_Introspection(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	assert.False(t, bag.HasNamed("host"))

	InsertNamed(bag, "host", "localhost")
	InsertTyped(bag, 42)

	assert.Equal(t, 2, bag.Len())
	assert.True(t, bag.HasNamed("host"))
	assert.False(t, bag.HasNamed("port"))
}

// TestParameterBag_Clone verifies a clone shares values but not key space:
// removing from the clone leaves the original intact.
func TestParameterBag_Clone(t *testing.T) {
	t.Parallel()

	bag := NewParameterBag()
	InsertNamed(bag, "host", "localhost")
	InsertTyped(bag, 42)

	cp := bag.Clone()
	require.Equal(t, 2, cp.Len())

	v, ok := RemoveNamed[string](cp, "host")
	require.True(t, ok)
	assert.Equal(t, "localhost", v)

	assert.Equal(t, 1, cp.Len())
	assert.Equal(t, 2, bag.Len())
	assert.True(t, bag.HasNamed("host"))
}

// TestParameterBag_CloneNil verifies cloning a nil bag yields a usable empty bag.
func TestParameterBag_CloneNil(t *testing.T) {
	t.Parallel()

	var bag *ParameterBag
	cp := bag.Clone()
	require.NotNil(t, cp)
	assert.Equal(t, 0, cp.Len())
}

// TestParameterBag_NilReceivers verifies the nil contract: read operations on
// a nil bag report absent instead of panicking, while inserts require a
// constructed bag and panic on nil.
func TestParameterBag_NilReceivers(t *testing.T) {
	t.Parallel()

	var bag *ParameterBag
	assert.Equal(t, 0, bag.Len())
	assert.False(t, bag.HasNamed("x"))

	_, ok := RemoveNamed[string](bag, "x")
	assert.False(t, ok)

	_, ok2 := RemoveTyped[int](bag)
	assert.False(t, ok2)

	assert.Panics(t, func() { InsertNamed(bag, "x", 1) })
	assert.Panics(t, func() { InsertTyped(bag, 1) })
}
