// Command digen generates container registration glue from annotations.
//
// You annotate a constructor whose signature already matches di.Builder:
//
//	//dibox:provides Mailer
//	func NewSMTPMailer(deps di.Resolver, params *di.ParameterBag) (Mailer, error) {
//		host, _ := di.RemoveNamed[string](params, "host")
//		return &smtpMailer{host: host}, nil
//	}
//
// and add a go:generate directive anywhere in the same package:
//
//	//go:generate go run github.com/sghaida/dibox/cmd/digen -dir . -out dibox.gen.go
//
// Running go generate ./... then produces a RegisterComponents helper:
//
//	func RegisterComponents(b *di.ContainerBuilder) {
//		di.Register[Mailer](b, "SMTPMailer", NewSMTPMailer)
//		...
//	}
//
// which the composition root calls before Build. The generator only performs
// syntactic validation (free function, two params, two results ending in
// error); the compiler type-checks the generated registrations, so a wrong
// interface name or builder shape fails the build rather than producing a
// container that misbehaves at runtime.
//
// Flags
//
//   - -dir: package directory to scan (required)
//   - -out: output file path (required); written atomically
//   - -pkg: output package name, defaults to the scanned package
//   - -di: import path of the di package, defaults to github.com/sghaida/dibox/di
//
// Component display names are derived from the constructor name with its
// "New" prefix stripped.
package main
