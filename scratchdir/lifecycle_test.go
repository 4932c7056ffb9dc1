package scratchdir

import (
	"testing"

	"github.com/spf13/afero"
	gc "gopkg.in/check.v1"
)

type LifecycleSuite struct {
	fs  afero.Fs
	dir *Dir
}

func (s *LifecycleSuite) SetUpTest(c *gc.C) {
	s.fs = afero.NewMemMapFs()

	var err error
	s.dir, err = New("lifecycle-suite", s.fs)
	c.Assert(err, gc.IsNil)
}

func (s *LifecycleSuite) TestRemoveIsIdempotent(c *gc.C) {
	c.Check(s.dir.Remove(), gc.IsNil)
	c.Check(s.dir.Remove(), gc.IsNil)

	var exists, err = afero.DirExists(s.fs, s.dir.Path())
	c.Check(err, gc.IsNil)
	c.Check(exists, gc.Equals, false)
}

func (s *LifecycleSuite) TestRemoveOfOutOfBandDeletionIsNoOp(c *gc.C) {
	c.Assert(s.fs.RemoveAll(s.dir.Path()), gc.IsNil)
	c.Check(s.dir.Remove(), gc.IsNil)
}

func (s *LifecycleSuite) TestRemoveFailurePropagatesWithoutRetry(c *gc.C) {
	// Swap in a read-only view of the filesystem. The existence check still
	// passes, but removal fails.
	s.dir.fs = afero.NewReadOnlyFs(s.fs)

	c.Check(s.dir.Remove(), gc.ErrorMatches, `removing scratch directory .*: operation not permitted`)

	// The removal attempt was consumed. A second call is a no-op, and the
	// directory remains.
	c.Check(s.dir.Remove(), gc.IsNil)

	var exists, err = afero.DirExists(s.fs, s.dir.Path())
	c.Check(err, gc.IsNil)
	c.Check(exists, gc.Equals, true)
}

func (s *LifecycleSuite) TestFinalizeConvergesWithExplicitRemoval(c *gc.C) {
	// Directly drive the finalizer hook: it removes the directory,
	// and a Remove which follows is a no-op.
	s.dir.finalize()

	var exists, err = afero.DirExists(s.fs, s.dir.Path())
	c.Check(err, gc.IsNil)
	c.Check(exists, gc.Equals, false)

	c.Check(s.dir.Remove(), gc.IsNil)
}

func (s *LifecycleSuite) TestFinalizeAfterRemoveIsSuppressed(c *gc.C) {
	c.Assert(s.dir.Remove(), gc.IsNil)

	// Re-create the path out-of-band. A late finalizer must not remove it,
	// as the Dir's removal already ran.
	c.Assert(s.fs.MkdirAll(s.dir.Path(), 0700), gc.IsNil)
	s.dir.finalize()

	var exists, err = afero.DirExists(s.fs, s.dir.Path())
	c.Check(err, gc.IsNil)
	c.Check(exists, gc.Equals, true)
}

func (s *LifecycleSuite) TestFinalizeSwallowsRemovalFailure(c *gc.C) {
	s.dir.fs = afero.NewReadOnlyFs(s.fs)
	s.dir.finalize() // Logs, doesn't panic or propagate.

	var exists, err = afero.DirExists(s.fs, s.dir.Path())
	c.Check(err, gc.IsNil)
	c.Check(exists, gc.Equals, true)
}

var _ = gc.Suite(&LifecycleSuite{})

func Test(t *testing.T) { gc.TestingT(t) }
