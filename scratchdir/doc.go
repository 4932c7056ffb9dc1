// Package scratchdir implements a scoped, self-removing temporary directory.
// A Dir is created under the filesystem's temp root and owns the obligation
// to recursively remove its directory tree exactly once, whether removal is
// triggered synchronously (Remove), asynchronously (RemoveAsync), or as a
// last resort by a runtime finalizer when the handle becomes unreachable
// without an explicit removal.
//
// The filesystem is an injected afero.Fs capability, defaulting to the real
// OS filesystem. Substituting afero.NewMemMapFs() makes Dir fully
// deterministic and I/O-free for tests.
package scratchdir
