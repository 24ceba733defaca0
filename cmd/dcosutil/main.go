// Command dcosutil exposes the dcosutil helpers on the command line:
//
//	dcosutil validate --schema schema.json config.json other.yaml
//	dcosutil which dcos marathon
//	dcosutil parse-int 42
//	dcosutil info
//
// DCOS_LOG_LEVEL (or --log-level) enables diagnostics on stderr.
package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	root := newRootCmd(getenv)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			color.New(color.FgRed).Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}
