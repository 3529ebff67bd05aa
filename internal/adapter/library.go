package adapter

import (
	"go/build"
	"path/filepath"

	"github.com/spf13/afero"
)

// NewLocalLibrarySource returns a read-only view of the real filesystem. The
// standard-library snapshot is copied out of it once per compilation context
// and nothing is ever written back.
func NewLocalLibrarySource() afero.Fs {
	return afero.NewReadOnlyFs(afero.NewOsFs())
}

// LocalLibraryLocation returns the directory holding the declarations of Go's
// predeclared identifiers in the active toolchain.
func LocalLibraryLocation() string {
	return filepath.Join(build.Default.GOROOT, "src", "builtin")
}
