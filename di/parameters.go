package di

import "reflect"

// paramKey addresses one parameter inside a ParameterBag.
//
// Exactly one of name/typ is set. Parameters inserted by name are keyed by the
// name alone, so a later insert under the same name overwrites regardless of
// the value's type. Parameters inserted by type are keyed by the type identity
// alone, so at most one value per type can be stored that way.
type paramKey struct {
	name string
	typ  reflect.Type
}

// parameter is one stored value together with its recorded type identity.
//
// The identity is checked on every typed removal: a request whose type does
// not match reports "absent" instead of ever exposing a mis-typed value.
type parameter struct {
	name  string
	typ   reflect.Type
	value any
}

// ParameterBag stores the construction parameters of a single registration.
//
// It is a heterogeneous store: any value type is accepted, and values come
// back with their original type via the generic Remove helpers. The bag is
// mutated through a Registration's WithNamedParameter / WithTypedParameter
// while the ContainerBuilder is still mutable, and consumed by the component's
// build function at resolution time.
//
// Typed access goes through package-level generic functions (InsertNamed,
// RemoveNamed, InsertTyped, RemoveTyped) because Go methods cannot carry
// their own type parameters.
//
// Nil contract: read operations (Len, HasNamed, Clone, the Remove helpers)
// tolerate a nil bag and report empty/absent; the Insert helpers store data
// and therefore require a bag constructed with NewParameterBag — inserting
// into a nil bag panics.
type ParameterBag struct {
	params map[paramKey]parameter
}

// NewParameterBag creates an empty bag.
func NewParameterBag() *ParameterBag {
	return &ParameterBag{params: make(map[paramKey]parameter)}
}

// typeOf returns the reflect identity of V itself, not of a value of V, so
// interface types are preserved instead of collapsing to a dynamic type.
func typeOf[V any]() reflect.Type {
	return reflect.TypeOf((*V)(nil)).Elem()
}

// Len returns the number of stored parameters.
func (b *ParameterBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.params)
}

// HasNamed reports whether a parameter exists under the name, regardless of type.
func (b *ParameterBag) HasNamed(name string) bool {
	if b == nil {
		return false
	}
	_, ok := b.params[paramKey{name: name}]
	return ok
}

// Clone returns a shallow copy of the bag. Values are shared; the key space
// is independent, so a build function that consumes its parameters does not
// affect later resolutions of the same registration.
func (b *ParameterBag) Clone() *ParameterBag {
	cp := NewParameterBag()
	if b == nil {
		return cp
	}
	for k, v := range b.params {
		cp.params[k] = v
	}
	return cp
}

// insertDynamicNamed stores a value under a name key with the value's dynamic
// type as identity. Used by the chainable Registration setters, which take any.
func (b *ParameterBag) insertDynamicNamed(name string, value any) {
	b.params[paramKey{name: name}] = parameter{
		name:  name,
		typ:   reflect.TypeOf(value),
		value: value,
	}
}

// insertDynamicTyped stores a value keyed by its dynamic type.
func (b *ParameterBag) insertDynamicTyped(value any) {
	typ := reflect.TypeOf(value)
	b.params[paramKey{typ: typ}] = parameter{
		name:  "",
		typ:   typ,
		value: value,
	}
}

// InsertNamed stores value under name.
//
// If a parameter already existed under that name, it is overwritten and the
// old value is returned, typed, with ok=true, but only when the old value is
// itself a V; a prior value of a different type is discarded and reported as
// (zero, false). Any value type is accepted; there is no error path. The bag
// must be non-nil.
func InsertNamed[V any](b *ParameterBag, name string, value V) (V, bool) {
	key := paramKey{name: name}
	prev, had := b.params[key]
	b.params[key] = parameter{name: name, typ: typeOf[V](), value: value}
	if !had || prev.typ != typeOf[V]() {
		var zero V
		return zero, false
	}
	return prev.value.(V), true
}

// InsertTyped stores value keyed purely by V's type identity.
//
// Because the key is the type itself, only one value per type can be stored
// this way; re-inserting returns the previous value with ok=true. The bag
// must be non-nil.
func InsertTyped[V any](b *ParameterBag, value V) (V, bool) {
	typ := typeOf[V]()
	key := paramKey{typ: typ}
	prev, had := b.params[key]
	b.params[key] = parameter{name: "", typ: typ, value: value}
	if !had || prev.typ != typ {
		var zero V
		return zero, false
	}
	return prev.value.(V), true
}

// RemoveNamed removes and returns the parameter stored under name.
//
// The stored type identity must match V exactly; on mismatch the entry is left
// in place and (zero, false) is returned. The bag never exposes a value under
// the wrong type.
func RemoveNamed[V any](b *ParameterBag, name string) (V, bool) {
	var zero V
	if b == nil {
		return zero, false
	}
	key := paramKey{name: name}
	p, ok := b.params[key]
	if !ok || p.typ != typeOf[V]() {
		return zero, false
	}
	delete(b.params, key)
	return p.value.(V), true
}

// RemoveTyped removes and returns the parameter stored under V's type identity.
//
// Same matching rule as RemoveNamed: exact identity or (zero, false).
func RemoveTyped[V any](b *ParameterBag) (V, bool) {
	var zero V
	if b == nil {
		return zero, false
	}
	key := paramKey{typ: typeOf[V]()}
	p, ok := b.params[key]
	if !ok || p.typ != typeOf[V]() {
		return zero, false
	}
	delete(b.params, key)
	return p.value.(V), true
}
