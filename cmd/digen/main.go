// cmd/digen/main.go
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

// This binary is a code-generation tool.
//
// It scans a package directory for constructor functions annotated with
// //dibox:provides <Interface>, validates their signatures syntactically, and
// generates a RegisterComponents helper that registers every annotated
// constructor against its declared interface.
//
// Key behaviors:
// - Scans all non-test, non-generated .go files in the target directory
// - An annotated constructor must look like a di.Builder: two parameters
//   (Resolver, *ParameterBag) and two results (the interface, error)
// - Component display names default to the constructor name minus its "New" prefix
// - Writes output atomically (temp file + rename) to avoid partial writes

// provider describes one annotated constructor discovered during scanning.
type provider struct {
	// Constructor is the function name, e.g. "NewSMTPMailer".
	Constructor string

	// Component is the display name registered with the container.
	Component string

	// Interface is the annotation argument, e.g. "Mailer".
	Interface string
}

// templateData is the input passed to the Go template.
type templateData struct {
	Package   string
	DIImport  string
	Providers []provider
}

// annotationPrefix is the directive digen reacts to in doc comments.
const annotationPrefix = "dibox:provides"

// run executes the generator logic and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("digen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	dirPath := flags.String("dir", "", "package directory to scan")
	outPath := flags.String("out", "", "output .gen.go file path")
	pkgName := flags.String("pkg", "", "output package name (default: scanned package)")
	diImport := flags.String("di", "github.com/sghaida/dibox/di", "import path of the di package")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if strings.TrimSpace(*dirPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: digen -dir <package dir> -out <file.gen.go>")
		return 2
	}

	scannedPackage, providers, err := scanProviders(*dirPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "digen: %v\n", err)
		return 1
	}
	if len(providers) == 0 {
		_, _ = fmt.Fprintf(stderr, "digen: no //%s annotations found in %s\n", annotationPrefix, *dirPath)
		return 1
	}

	outputPackage := strings.TrimSpace(*pkgName)
	if outputPackage == "" {
		outputPackage = scannedPackage
	}

	data := templateData{
		Package:   outputPackage,
		DIImport:  *diImport,
		Providers: providers,
	}

	var out strings.Builder
	must(genTemplate.Execute(&out, data))

	must(writeFileAtomic(filepath.Clean(*outPath), []byte(out.String()), 0o644))
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// scanProviders parses every candidate .go file in dir and collects annotated
// constructors, sorted by interface then constructor name for deterministic
// output. It also returns the scanned package name.
func scanProviders(dir string) (string, []provider, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return "", nil, err
	}

	fileSet := token.NewFileSet()
	packageName := ""
	var providers []provider

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		filePath := filepath.Join(dir, fileName)
		parsedFile, parseErr := parser.ParseFile(fileSet, filePath, nil, parser.ParseComments)
		if parsedFile == nil {
			return "", nil, fmt.Errorf("parse %s: %w", filePath, parseErr)
		}

		if packageName == "" && parsedFile.Name != nil {
			packageName = parsedFile.Name.Name
		}

		for _, declaration := range parsedFile.Decls {
			funcDecl, ok := declaration.(*ast.FuncDecl)
			if !ok {
				continue
			}

			ifaceName, annotated, annErr := parseAnnotation(funcDecl)
			if annErr != nil {
				position := fileSet.Position(funcDecl.Pos())
				return "", nil, fmt.Errorf("%s: %w", position, annErr)
			}
			if !annotated {
				continue
			}

			if sigErr := validateBuilderSignature(funcDecl); sigErr != nil {
				position := fileSet.Position(funcDecl.Pos())
				return "", nil, fmt.Errorf("%s: %w", position, sigErr)
			}

			providers = append(providers, provider{
				Constructor: funcDecl.Name.Name,
				Component:   componentName(funcDecl.Name.Name),
				Interface:   ifaceName,
			})
		}
	}

	sort.Slice(providers, func(i, j int) bool {
		if providers[i].Interface != providers[j].Interface {
			return providers[i].Interface < providers[j].Interface
		}
		return providers[i].Constructor < providers[j].Constructor
	})

	return packageName, providers, nil
}

// parseAnnotation extracts the //dibox:provides directive from a function's
// doc comment. A directive with a missing interface argument is an error.
func parseAnnotation(funcDecl *ast.FuncDecl) (ifaceName string, annotated bool, err error) {
	if funcDecl.Doc == nil {
		return "", false, nil
	}

	for _, comment := range funcDecl.Doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment.Text), "//"))
		if !strings.HasPrefix(text, annotationPrefix) {
			continue
		}

		argument := strings.TrimSpace(strings.TrimPrefix(text, annotationPrefix))
		if argument == "" {
			return "", false, fmt.Errorf("%s: missing interface name on %s", funcDecl.Name.Name, annotationPrefix)
		}
		if len(strings.Fields(argument)) != 1 {
			return "", false, fmt.Errorf("%s: %s takes exactly one interface name, got %q", funcDecl.Name.Name, annotationPrefix, argument)
		}
		return argument, true, nil
	}

	return "", false, nil
}

// validateBuilderSignature checks, syntactically, that an annotated function
// can serve as a di.Builder: a free function with two parameters and two
// results, the second result being error. Type checking proper is left to the
// compiler when the generated file is built.
func validateBuilderSignature(funcDecl *ast.FuncDecl) error {
	name := funcDecl.Name.Name

	if funcDecl.Recv != nil {
		return fmt.Errorf("%s: annotated constructors must be free functions, not methods", name)
	}

	params := funcDecl.Type.Params
	if params == nil || countFields(params) != 2 {
		return fmt.Errorf("%s: expected two parameters (di.Resolver, *di.ParameterBag)", name)
	}

	results := funcDecl.Type.Results
	if results == nil || countFields(results) != 2 {
		return fmt.Errorf("%s: expected two results (the interface, error)", name)
	}

	lastResult := results.List[len(results.List)-1].Type
	if ident, ok := lastResult.(*ast.Ident); !ok || ident.Name != "error" {
		return fmt.Errorf("%s: second result must be error", name)
	}

	return nil
}

// countFields counts declared names in a field list, treating anonymous
// fields as one each (func(a, b Type) has two, func(Type) has one).
func countFields(fields *ast.FieldList) int {
	total := 0
	for _, field := range fields.List {
		if len(field.Names) == 0 {
			total++
			continue
		}
		total += len(field.Names)
	}
	return total
}

// componentName derives a display name from a constructor name by stripping
// a leading "New". "NewSMTPMailer" becomes "SMTPMailer"; a bare "New" stays
// as-is.
func componentName(constructor string) string {
	trimmed := strings.TrimPrefix(constructor, "New")
	if trimmed == "" {
		return constructor
	}
	return trimmed
}

// genTemplate is the Go source template used to generate registration glue.
var genTemplate = template.Must(
	template.New("digen").Parse(`// Code generated by digen; DO NOT EDIT.

package {{.Package}}

import (
	"{{.DIImport}}"
)

// RegisterComponents registers every annotated constructor in this package
// against its declared interface. Call it from your composition root before
// Build.
func RegisterComponents(b *di.ContainerBuilder) {
{{- range .Providers}}
	di.Register[{{.Interface}}](b, "{{.Component}}", {{.Constructor}})
{{- end}}
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes a file atomically.
//
// It writes to a temporary file in the same directory and then renames it
// over the target path, ensuring readers never observe partial writes.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	targetDir := filepath.Dir(targetPath)

	tmpFile, err := createTempFile(targetDir, filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	if err = renameFile(tmpPath, targetPath); err != nil {
		return err
	}
	return nil
}

// must panics if err is non-nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
