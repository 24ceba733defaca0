package dcosutil

import "os"

const tempDirPattern = "dcos-"

// WithTempDir creates a temporary directory, passes it to fn and removes it
// with all of its contents once fn returns or panics. Removal errors are
// ignored. The returned error is fn's, or the creation error.
func WithTempDir(fn func(dir string) error) error {
	dir, cleanup, err := NewTempDir()
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(dir)
}

// NewTempDir creates a temporary directory. cleanup removes it recursively
// and is safe to call more than once.
func NewTempDir() (dir string, cleanup func(), err error) {
	dir, err = os.MkdirTemp("", tempDirPattern)
	if err != nil {
		return "", nil, err
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}
