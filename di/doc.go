// Package di implements a compile-time-checked dependency injection container.
//
// The model is deliberately small:
//
//   - A ContainerBuilder accumulates registrations: one concrete component per
//     interface, each with an optional bag of named or type-keyed construction
//     parameters. Re-registering an interface replaces the previous component
//     (last registration wins) and logs a warning.
//
//   - Build converts the builder into an immutable Container. It cannot fail
//     today; the error return exists so validation can be added later without
//     an API break.
//
//   - Resolve[I] looks up the registration for interface I and invokes its
//     build function, handing it the parameter bag and a Resolver so the
//     component can resolve its own dependencies. Dependency cycles are
//     detected per resolution call and fail fast with a CycleError.
//
// Correctness is pushed to the type system wherever possible: build functions
// are typed Builder[I] values, registration is generic over the interface, and
// the type-erased internals only ever downcast values they themselves stored
// under the matching identity. The runtime error surface is "interface not
// registered", "dependency cycle", and whatever a component's own construction
// returns.
//
// Quick guidance
//
// Register with an explicit build function when the component needs closure
// state or a custom display name:
//
//	b := di.NewContainerBuilder(di.WithLogger(log))
//	di.Register[Mailer](b, "SMTPMailer", buildSMTPMailer).
//		WithNamedParameter("host", "smtp.internal")
//
// Or implement Component[I] on the concrete type and let RegisterType derive
// the name:
//
//	di.RegisterType[SMTPMailer, Mailer](b)
//
// Then finalize and resolve:
//
//	c, _ := b.Build()
//	mailer, err := di.Resolve[Mailer](c)
//
// Wiring stays explicit in your composition root; there is no global
// container, no struct-tag reflection, and no automatic constructor scanning
// (see cmd/digen if you want generated registration glue).
//
// Import
//
//	"github.com/sghaida/dibox/di"
package di
