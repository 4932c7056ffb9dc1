package scratchdir

import (
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"go.scratchdir.dev/core/async"
	"go.scratchdir.dev/core/metrics"
)

// Dir is a handle to a temporary directory which is recursively removed at
// most once, by whichever of Remove, RemoveAsync, or the finalizer safety
// net runs first. Its path is fixed at creation and the caller is free to
// create arbitrary files and directories beneath it; they're discovered and
// removed by walking the tree at removal time.
//
// Two Dirs with distinct names own disjoint trees and never interfere.
// Creating two Dirs over the same name is unsupported.
type Dir struct {
	path    string
	fs      afero.Fs
	removed int32 // Set on first entry to any removal path.
}

// New creates a directory named |name| under the temp root of |fs| and
// returns a Dir bound to it. If |name| is empty a fresh lower-cased UUID is
// generated. If |fs| is nil the real OS filesystem is used. Missing parent
// segments are created, and a pre-existing directory at the path is not an
// error. Errors of the filesystem are annotated and returned, and no Dir is
// produced.
func New(name string, fs afero.Fs) (*Dir, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if name == "" {
		name = uuid.NewString()
	}
	var path = filepath.Join(afero.GetTempDir(fs, ""), name)

	if err := fs.MkdirAll(path, 0700); err != nil {
		return nil, errors.WithMessagef(err, "creating scratch directory %s", path)
	}
	var d = &Dir{path: path, fs: fs}

	// Arm the safety net. It's disarmed again by the first explicit removal.
	runtime.SetFinalizer(d, (*Dir).finalize)
	metrics.ScratchdirCreatedTotal.Inc()

	return d, nil
}

// Path of the directory. It's stable for the lifetime of the Dir.
func (d *Dir) Path() string { return d.path }

// Join composes |elems| beneath the directory path.
func (d *Dir) Join(elems ...string) string {
	return filepath.Join(append([]string{d.path}, elems...)...)
}

// Remove recursively removes the directory and everything beneath it.
// Removal runs at most once per Dir: a second call, or a call racing
// RemoveAsync, is a no-op returning nil. A directory already absent (eg,
// removed out-of-band by the caller) is also a no-op. A failed removal is
// not retried; its error is annotated and returned.
func (d *Dir) Remove() error {
	if !atomic.CompareAndSwapInt32(&d.removed, 0, 1) {
		return nil // Already removed.
	}
	runtime.SetFinalizer(d, nil)
	return d.removeTree()
}

// RemoveAsync begins removal in the background, with Remove's semantics, and
// returns an OpFuture resolved with its outcome. If removal already ran,
// the returned OpFuture is already resolved.
func (d *Dir) RemoveAsync() async.OpFuture {
	if !atomic.CompareAndSwapInt32(&d.removed, 0, 1) {
		return async.FinishedOperation(nil)
	}
	runtime.SetFinalizer(d, nil)

	var op = async.NewOperation()
	go func() { op.Resolve(d.removeTree()) }()
	return op
}

// finalize is the last-resort removal path, run by the garbage collector iff
// no explicit removal ran. Finalizers cannot propagate errors, so a failure
// here is logged and dropped.
func (d *Dir) finalize() {
	if !atomic.CompareAndSwapInt32(&d.removed, 0, 1) {
		return
	}
	if err := d.removeTree(); err != nil {
		log.WithFields(log.Fields{"path": d.path, "err": err}).
			Warn("failed to remove scratch directory at finalization")
	} else {
		metrics.ScratchdirFinalizedTotal.Inc()
	}
}

// removeTree is the single removal routine all entry paths converge on.
func (d *Dir) removeTree() error {
	if exists, err := afero.DirExists(d.fs, d.path); err != nil {
		return errors.WithMessagef(err, "checking scratch directory %s", d.path)
	} else if !exists {
		return nil // Nothing to do.
	}

	if err := d.fs.RemoveAll(d.path); err != nil {
		metrics.ScratchdirRemoveFailuresTotal.Inc()
		return errors.WithMessagef(err, "removing scratch directory %s", d.path)
	}
	metrics.ScratchdirRemovedTotal.Inc()
	return nil
}
