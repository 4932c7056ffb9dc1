package scratchdir_test

import (
	"fmt"

	"github.com/spf13/afero"

	"go.scratchdir.dev/core/scratchdir"
)

func ExampleDir() {
	var fs = afero.NewMemMapFs()

	var dir, err = scratchdir.New("example", fs)
	if err != nil {
		panic(err)
	}

	// Work freely within the directory. Everything beneath it is removed
	// along with it.
	if err = afero.WriteFile(fs, dir.Join("f"), []byte("test message"), 0600); err != nil {
		panic(err)
	}

	if err = dir.Remove(); err != nil {
		panic(err)
	}

	var exists, _ = afero.DirExists(fs, dir.Path())
	fmt.Println("exists:", exists)

	// Output:
	// exists: false
}
