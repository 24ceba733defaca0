package dcosutil

import (
	"os"
	"path/filepath"
	"strings"
)

// PathEnv names the environment variable holding the executable search path.
const PathEnv = "PATH"

// Which returns the absolute path of the named executable, searching the
// directories listed in PATH. It reports false when nothing matches or PATH
// is not set.
func Which(program string) (string, bool) {
	pathList, ok := os.LookupEnv(PathEnv)
	if !ok {
		return "", false
	}
	return WhichIn(program, pathList)
}

// WhichIn is Which with an explicit search path in the platform's list format
// (colon-separated on Unix, semicolon-separated on Windows).
//
// A program containing a path separator is checked as is. Otherwise every
// directory of pathList is tried in order; surrounding double quotes are
// stripped and an empty entry stands for the current directory.
func WhichIn(program, pathList string) (string, bool) {
	if program == "" {
		return "", false
	}
	if strings.ContainsAny(program, `/`+string(filepath.Separator)) {
		return executable(program)
	}
	for _, dir := range filepath.SplitList(pathList) {
		dir = strings.Trim(dir, `"`)
		if dir == "" {
			dir = "."
		}
		if p, ok := executable(filepath.Join(dir, program)); ok {
			return p, true
		}
	}
	return "", false
}

func executable(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || !isExecutable(path, info) {
		return "", false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, true
	}
	return abs, true
}
