package di

import "reflect"

// Resolver is the handle a build function uses to resolve its own
// dependencies. Both *Container and the per-resolution session implement it;
// user code consumes it through the generic Resolve / MustResolve helpers.
//
// The single method is unexported on purpose: resolution always flows through
// container machinery, never through ad-hoc implementations.
type Resolver interface {
	resolveInterface(iface reflect.Type) (any, error)
}

// Builder constructs an instance of interface I.
//
// It receives the Resolver for nested dependency resolution and the parameter
// bag attached to its registration. Returning an error aborts the resolution;
// the container wraps it in a ComponentBuildError.
type Builder[I any] func(deps Resolver, params *ParameterBag) (I, error)

// Component is the compile-time-checked registration contract: a concrete
// type that knows how to build itself as interface I.
//
// RegisterType instantiates the zero value of the implementing type and uses
// its Build method, so Build must be callable on the zero value (plain struct
// components with value receivers satisfy this naturally).
type Component[I any] interface {
	Build(deps Resolver, params *ParameterBag) (I, error)
}

// Registration binds one interface to one concrete component: the component's
// display name, its build function, and its owned parameter bag.
//
// The build function is fixed for the registration's lifetime; only the
// parameter bag may be mutated afterwards, via the chainable setters below.
// Build seals every registration of its builder: once the owning
// ContainerBuilder is consumed, the setters panic with ErrBuilderConsumed, so
// a retained handle cannot mutate (or race) an already-built Container.
type Registration[I any] struct {
	component string
	build     Builder[I]
	params    *ParameterBag
	owner     *ContainerBuilder
}

func newRegistration[I any](owner *ContainerBuilder, component string, build Builder[I]) *Registration[I] {
	return &Registration[I]{
		component: component,
		build:     build,
		params:    NewParameterBag(),
		owner:     owner,
	}
}

// ensureMutable panics if the owning builder was already consumed by Build.
func (r *Registration[I]) ensureMutable() {
	if r.owner != nil && r.owner.consumed {
		panic(ErrBuilderConsumed)
	}
}

// ComponentName returns the registered component's display name.
// Used only for diagnostics.
func (r *Registration[I]) ComponentName() string { return r.component }

// Parameters returns the registration's parameter bag, mainly for
// introspection in tests.
func (r *Registration[I]) Parameters() *ParameterBag { return r.params }

// WithNamedParameter attaches a construction parameter under a name and
// returns the registration for chaining.
//
// The stored type identity is the dynamic type of value; the component's
// build function retrieves it with RemoveNamed using that same type.
//
// Panics with ErrBuilderConsumed once the owning builder was consumed by Build.
func (r *Registration[I]) WithNamedParameter(name string, value any) *Registration[I] {
	r.ensureMutable()
	r.params.insertDynamicNamed(name, value)
	return r
}

// WithTypedParameter attaches a construction parameter keyed by the dynamic
// type of value and returns the registration for chaining. Only one value per
// type can be attached this way.
//
// Panics with ErrBuilderConsumed once the owning builder was consumed by Build.
func (r *Registration[I]) WithTypedParameter(value any) *Registration[I] {
	r.ensureMutable()
	r.params.insertDynamicTyped(value)
	return r
}
