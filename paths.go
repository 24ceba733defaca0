package dcosutil

import (
	"os"
	"path/filepath"
)

// ProcessExecutablePath returns the real path of the running executable,
// with symbolic links resolved.
func ProcessExecutablePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

// DCOSPath returns the installation root, the parent of the directory that
// holds the executable (for example /opt/dcos for /opt/dcos/bin/dcos).
func DCOSPath() (string, error) {
	exe, err := ProcessExecutablePath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}
