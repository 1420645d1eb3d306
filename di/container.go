package di

import (
	"reflect"
	"sort"

	"go.uber.org/zap"
)

// ContainerBuilder is the mutable pre-finalization stage: it accumulates
// interface registrations and converts into an immutable Container via Build.
//
// Registration follows last-wins semantics: registering a second component
// for an interface replaces the first entirely (its parameters included) and
// emits a warning on the configured logger. That is a supported override
// mechanism, not an error.
//
// The builder is not safe for concurrent use; configuration is expected to
// happen in a single goroutine (typically the composition root in main).
type ContainerBuilder struct {
	reg      *registery
	log      *zap.Logger
	consumed bool
}

// BuilderOption configures a ContainerBuilder at construction.
type BuilderOption func(*ContainerBuilder)

// WithLogger sets the diagnostic sink used for registration-overwrite
// warnings. The default is a no-op logger.
func WithLogger(log *zap.Logger) BuilderOption {
	return func(b *ContainerBuilder) {
		if log != nil {
			b.log = log
		}
	}
}

// NewContainerBuilder creates an empty builder.
func NewContainerBuilder(opts ...BuilderOption) *ContainerBuilder {
	b := &ContainerBuilder{
		reg: newRegistery(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register binds interface I to a concrete component described by its display
// name and build function, and returns the Registration for chained parameter
// configuration:
//
//	di.Register[Mailer](b, "SMTPMailer", buildSMTPMailer).
//		WithNamedParameter("host", "localhost").
//		WithTypedParameter(tlsConfig)
//
// If I was already registered, the previous registration is replaced and a
// warning is logged naming the interface and the discarded component.
//
// Register panics with ErrNilBuildFunc on a nil build function and with
// ErrBuilderConsumed if the builder was already consumed by Build; both are
// programming errors at the composition root, not runtime conditions.
func Register[I any](b *ContainerBuilder, component string, build Builder[I]) *Registration[I] {
	if build == nil {
		panic(ErrNilBuildFunc)
	}
	if b.consumed {
		panic(ErrBuilderConsumed)
	}

	iface := typeOf[I]()
	reg := newRegistration[I](b, component, build)

	// The closure keeps the typed registration alive behind the erased entry;
	// parameters attached after Register are still seen at build time. Each
	// invocation gets its own shallow copy of the bag, so builders that
	// consume parameters keep resolution idempotent.
	erased := &registeredType{
		component: component,
		params:    reg.params,
		buildAny: func(deps Resolver) (any, error) {
			return reg.build(deps, reg.params.Clone())
		},
	}

	if prev, replaced := b.reg.insert(iface, erased); replaced {
		b.log.Warn("interface already registered, replacing component",
			zap.String("interface", iface.String()),
			zap.String("discarded", prev.component),
			zap.String("replacement", component),
		)
	}
	return reg
}

// RegisterType is the compile-time-checked registration path: C is a concrete
// component type implementing Component[I], and its display name is derived
// from the type itself.
//
//	di.RegisterType[SMTPMailer, Mailer](b)
//
// The zero value of C supplies the build method, so C must be buildable from
// its zero value (plain struct components are).
func RegisterType[C Component[I], I any](b *ContainerBuilder) *Registration[I] {
	var c C
	return Register[I](b, typeOf[C]().String(), c.Build)
}

// Build consumes the builder and moves its registry into a new Container.
// Every Registration handed out by this builder is sealed: its parameter
// setters panic from here on, so the Container's registrations are immutable.
//
// It currently cannot fail: structural validity is enforced at registration
// and compile time. The error return is kept so validation can be added later
// without breaking the API.
func (b *ContainerBuilder) Build() (*Container, error) {
	if b.consumed {
		panic(ErrBuilderConsumed)
	}
	b.consumed = true

	c := &Container{reg: b.reg}
	b.reg = nil
	return c, nil
}

// Container is the immutable, queryable view over a finalized registery.
// It only resolves; no further registration is possible.
//
// Resolution state (the cycle-detection stack) lives in a per-call session,
// so a Container may be used from multiple goroutines concurrently.
type Container struct {
	reg *registery
}

// Size returns the number of registered interfaces.
func (c *Container) Size() int { return c.reg.size() }

// RegisteredInterfaces returns the sorted reflect strings of all registered
// interfaces. Intended for debugging and diagnostics.
func (c *Container) RegisteredInterfaces() []string {
	out := c.reg.interfaces()
	sort.Strings(out)
	return out
}

// resolveInterface implements Resolver by opening a fresh resolution session.
func (c *Container) resolveInterface(iface reflect.Type) (any, error) {
	s := &resolveSession{container: c}
	return s.resolveInterface(iface)
}

// resolveSession carries the in-progress interface stack for one top-level
// Resolve call. Build functions receive the session as their Resolver, so
// nested resolution shares the stack and dependency cycles fail fast instead
// of overflowing the stack.
type resolveSession struct {
	container *Container
	stack     []reflect.Type
}

func (s *resolveSession) resolveInterface(iface reflect.Type) (any, error) {
	for _, pending := range s.stack {
		if pending == iface {
			return nil, CycleError{Chain: chainStrings(s.stack, iface)}
		}
	}

	rt, ok := s.container.reg.lookup(iface)
	if !ok {
		return nil, NotRegisteredError{Interface: iface.String()}
	}

	s.stack = append(s.stack, iface)
	instance, err := rt.buildAny(s)
	s.stack = s.stack[:len(s.stack)-1]

	if err != nil {
		return nil, ComponentBuildError{
			Interface: iface.String(),
			Component: rt.component,
			Err:       err,
		}
	}
	return instance, nil
}

// chainStrings renders the resolution stack plus the closing interface.
func chainStrings(stack []reflect.Type, closing reflect.Type) []string {
	chain := make([]string, 0, len(stack)+1)
	for _, t := range stack {
		chain = append(chain, t.String())
	}
	return append(chain, closing.String())
}

// Resolve produces a freshly constructed instance for interface I.
//
// It works both on a *Container and, inside a build function, on the Resolver
// the build function received (which is how nested dependencies are resolved):
//
//	func buildOrders(deps di.Resolver, _ *di.ParameterBag) (OrderService, error) {
//		mailer, err := di.Resolve[Mailer](deps)
//		...
//	}
//
// Construction is deterministic given fixed parameters; resolving twice
// yields equivalent, independently built instances. Errors are
// NotRegisteredError, CycleError, or ComponentBuildError.
func Resolve[I any](r Resolver) (I, error) {
	v, err := r.resolveInterface(typeOf[I]())
	if err != nil {
		var zero I
		return zero, err
	}
	return v.(I), nil
}

// MustResolve is Resolve or panic. Useful in examples and tests where a
// missing registration should fail fast.
func MustResolve[I any](r Resolver) I {
	v, err := Resolve[I](r)
	if err != nil {
		panic(err)
	}
	return v
}
