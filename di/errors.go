package di

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilBuildFunc is the panic value when a registration is attempted
	// with a nil build function. This is a programming error, not a runtime
	// condition, so it surfaces as a panic rather than an error return.
	ErrNilBuildFunc = errors.New("di: nil build function")

	// ErrBuilderConsumed is the panic value when a ContainerBuilder, or a
	// Registration it handed out, is used after Build. Build is a one-way
	// transition; the builder and its registration handles must be discarded
	// afterwards.
	ErrBuilderConsumed = errors.New("di: container builder already consumed by Build")
)

// NotRegisteredError is returned by Resolve when no component is registered
// for the requested interface.
type NotRegisteredError struct {
	// Interface is the reflect string of the requested interface type.
	Interface string
}

// Error implements the error interface.
func (e NotRegisteredError) Error() string {
	// Example: di: interface "main.Foo" is not registered
	return "di: interface " + strconv.Quote(e.Interface) + " is not registered"
}

// CycleError is returned by Resolve when component build functions form a
// dependency cycle. Chain lists the interfaces in resolution order, ending
// with the interface that closed the cycle.
type CycleError struct {
	Chain []string
}

// Error implements the error interface.
func (e CycleError) Error() string {
	// Example: di: dependency cycle: main.Foo -> main.Bar -> main.Foo
	return "di: dependency cycle: " + strings.Join(e.Chain, " -> ")
}

// ComponentBuildError is returned by Resolve when the registered component's
// own build function fails. It wraps the underlying error, so nested
// resolution failures remain reachable via errors.As / errors.Is.
type ComponentBuildError struct {
	// Interface is the interface being resolved.
	Interface string

	// Component is the display name of the registered component.
	Component string

	// Err is the error returned by the component's build function.
	Err error
}

// Error implements the error interface.
func (e ComponentBuildError) Error() string {
	// Example: di: building "main.Foo" with component "main.FooImpl": boom
	return "di: building " + strconv.Quote(e.Interface) +
		" with component " + strconv.Quote(e.Component) + ": " + e.Err.Error()
}

// Unwrap exposes the underlying build failure.
func (e ComponentBuildError) Unwrap() error { return e.Err }
