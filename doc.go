// Package dibox provides a small, compile-time-checked dependency injection
// container for Go.
//
// The core idea: you register concrete components against the interfaces they
// implement, optionally attach named or type-keyed construction parameters,
// and later resolve a fully constructed instance for an interface. Components
// declare their own build functions, so the wiring stays explicit and the
// type system carries most of the correctness burden; the runtime error
// surface is reduced to "interface not registered" (plus whatever a
// component's own construction may fail with).
//
// Layout:
//   - di: the container library (ContainerBuilder, Container, ParameterBag)
//   - cmd/digen: code generator that turns //dibox:provides annotations into
//     registration glue
//   - examples/*: runnable end-to-end wiring examples
//
// Start with the di package docs and examples/basic for end-to-end wiring style.
package dibox
