// test_helpers.go
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// Shared fixtures
// -----------------------------------------------------------------------------

// annotatedSourceGo returns a package source file with two valid annotated
// constructors, one unannotated function, and a method that must be ignored.
func annotatedSourceGo() string {
	return `package mailer

import "github.com/sghaida/dibox/di"

type Mailer interface{ Send(string) error }
type Queue interface{ Push(string) }

type smtpMailer struct{ host string }

func (m *smtpMailer) Send(string) error { return nil }

// NewSMTPMailer builds the production mailer.
//
//dibox:provides Mailer
func NewSMTPMailer(deps di.Resolver, params *di.ParameterBag) (Mailer, error) {
	host, _ := di.RemoveNamed[string](params, "host")
	return &smtpMailer{host: host}, nil
}

type memQueue struct{}

func (q *memQueue) Push(string) {}

//dibox:provides Queue
func NewMemQueue(deps di.Resolver, params *di.ParameterBag) (Queue, error) {
	return &memQueue{}, nil
}

// helper without annotation, must be skipped
func notAProvider() {}
`
}

//
// -----------------------------------------------------------------------------
// Small helpers
// -----------------------------------------------------------------------------

// writeTempFile writes a file under dir/name and returns its full path.
func writeTempFile(t *testing.T, dir, name, content string, perm os.FileMode) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), perm))
	return p
}

// readFileString reads a file and returns its contents as string (fatal on error).
func readFileString(t *testing.T, p string) string {
	t.Helper()
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(b)
}

//
// -----------------------------------------------------------------------------
// writeFileAtomic() seam helpers
// -----------------------------------------------------------------------------

// fakeTempFile is a controllable file-like object for writeFileAtomic tests.
// It lets us force errors on Write and Close without using a real file.
type fakeTempFile struct {
	fileName string
	writeErr error
	closeErr error
}

func (f *fakeTempFile) Name() string { return f.fileName }

func (f *fakeTempFile) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return len(p), nil
}

func (f *fakeTempFile) Close() error { return f.closeErr }

// withTempFileHooks swaps the file-operation hooks for the duration of a test.
func withTempFileHooks(
	t *testing.T,
	create func(dir, pattern string) (tempFile, error),
	chmod func(string, os.FileMode) error,
	rename func(string, string) error,
	remove func(string) error,
) {
	t.Helper()

	prevCreate, prevChmod := createTempFile, chmodFile
	prevRename, prevRemove := renameFile, removeFile

	if create != nil {
		createTempFile = create
	}
	if chmod != nil {
		chmodFile = chmod
	}
	if rename != nil {
		renameFile = rename
	}
	if remove != nil {
		removeFile = remove
	}

	t.Cleanup(func() {
		createTempFile, chmodFile = prevCreate, prevChmod
		renameFile, removeFile = prevRename, prevRemove
	})
}
