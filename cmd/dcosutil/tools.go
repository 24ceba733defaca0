package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reoring/dcosutil"
)

func newWhichCmd(getenv func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   "which PROGRAM...",
		Short: "Locate executables on the search path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			missing := false
			for _, p := range args {
				path, ok := dcosutil.WhichIn(p, getenv(dcosutil.PathEnv))
				if !ok {
					missing = true
					color.New(color.FgRed).Fprintf(cmd.ErrOrStderr(), "%s: not found\n", p)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			if missing {
				return errReported
			}
			return nil
		},
	}
}

func newParseIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-int VALUE",
		Short: "Parse VALUE as a base-10 integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := dcosutil.ParseInt(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the executable path and installation root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			exe, err := dcosutil.ProcessExecutablePath()
			if err != nil {
				return err
			}
			root, err := dcosutil.DCOSPath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "executable: %s\nroot:       %s\n", exe, root)
			return nil
		},
	}
}
