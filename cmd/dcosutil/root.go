package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/reoring/dcosutil/logging"
)

// errReported marks failures whose details were already written by the
// command itself.
var errReported = errors.New("failure already reported")

func newRootCmd(getenv func(string) string) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:           "dcosutil",
		Short:         "DCOS command-line utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := logging.Config{
				Level:  getenv(logging.EnvLevel),
				Format: getenv(logging.EnvFormat),
				Out:    cmd.ErrOrStderr(),
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Level = logLevel
			}
			logger, err := logging.New(cfg)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.Component(logger, "dcosutil").WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warning, error, critical); overrides "+logging.EnvLevel)

	cmd.AddCommand(
		newValidateCmd(),
		newWhichCmd(getenv),
		newParseIntCmd(),
		newInfoCmd(),
	)
	return cmd
}
