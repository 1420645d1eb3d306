package di

import "reflect"

// registeredType is the type-erased view of a Registration the registery
// stores. The typed Registration[I] lives on inside buildAny's closure, which
// is manufactured generically at registration time, so the value produced by
// buildAny always satisfies the interface it was inserted under and the final
// type assertion in Resolve cannot fail. Erasure is used only for
// heterogeneous storage, never for unchecked reinterpretation.
type registeredType struct {
	component string
	params    *ParameterBag
	buildAny  func(deps Resolver) (any, error)
}

// registery maps interface type identity to exactly one registered type.
//
// Keying by the interface rather than the concrete implementation is what
// gives "one implementation per interface" semantics and lets a later
// registration swap out an earlier one.
//
// It is owned exclusively by the ContainerBuilder during configuration and
// moves into the Container on Build; after that it is read-only.
type registery struct {
	entries map[reflect.Type]*registeredType
}

func newRegistery() *registery {
	return &registery{entries: make(map[reflect.Type]*registeredType)}
}

// insert stores rt under iface. If a registration was already present for
// that interface it is evicted and returned, so the caller can emit the
// overwrite diagnostic.
func (m *registery) insert(iface reflect.Type, rt *registeredType) (prev *registeredType, replaced bool) {
	prev, replaced = m.entries[iface]
	m.entries[iface] = rt
	return prev, replaced
}

// lookup returns the registration for iface, or ok=false if none exists.
func (m *registery) lookup(iface reflect.Type) (*registeredType, bool) {
	rt, ok := m.entries[iface]
	return rt, ok
}

// size returns the number of registered interfaces.
func (m *registery) size() int { return len(m.entries) }

// interfaces returns the reflect strings of all registered interfaces,
// in map order. Callers sort if they need determinism.
func (m *registery) interfaces() []string {
	out := make([]string, 0, len(m.entries))
	for iface := range m.entries {
		out = append(out, iface.String())
	}
	return out
}
