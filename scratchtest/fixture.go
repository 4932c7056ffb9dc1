// Package scratchtest provides test support for provisioning scratch
// directories which are removed when the test completes.
package scratchtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"go.scratchdir.dev/core/scratchdir"
)

// Fixture owns a scratch directory scoped to a test. The directory is named
// for the test and removed via the test's Cleanup hook.
type Fixture struct {
	t   testing.TB
	dir *scratchdir.Dir
}

// NewFixture provisions a scratch directory on the OS filesystem for |t|,
// and arranges its removal at test cleanup.
func NewFixture(t testing.TB) *Fixture {
	var name = strings.ToLower(strings.ReplaceAll(t.Name(), "/", "_")) + "-" + uuid.NewString()

	var dir, err = scratchdir.New(name, nil)
	if err != nil {
		t.Fatalf("creating scratch directory: %v", err)
	}
	t.Cleanup(func() {
		if err := dir.Remove(); err != nil {
			t.Errorf("removing scratch directory: %v", err)
		}
	})
	return &Fixture{t: t, dir: dir}
}

// T returns the testing instance the Fixture is bound to.
func (f *Fixture) T() testing.TB { return f.t }

// Dir returns the underlying scratchdir.Dir.
func (f *Fixture) Dir() *scratchdir.Dir { return f.dir }

// Path of the scratch directory.
func (f *Fixture) Path() string { return f.dir.Path() }

// Join composes |elems| beneath the scratch directory.
func (f *Fixture) Join(elems ...string) string { return f.dir.Join(elems...) }

// WriteFile writes |contents| to |path| (taken relative to the scratch
// directory), creating parent directories as needed.
func (f *Fixture) WriteFile(path, contents string) string {
	var full = f.dir.Join(path)

	if err := os.MkdirAll(filepath.Dir(full), 0700); err != nil {
		f.t.Fatalf("creating parent directories of %s: %v", full, err)
	}
	if err := os.WriteFile(full, []byte(contents), 0600); err != nil {
		f.t.Fatalf("writing %s: %v", full, err)
	}
	return full
}

// Touch writes each of |paths| as an empty file.
func (f *Fixture) Touch(paths ...string) {
	for _, p := range paths {
		f.WriteFile(p, "")
	}
}
