package main

import (
	"fmt"

	"career-compass/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const app = "careerctl"

// Actual version can be specified in build command.
var version = "unknown"

type rootOptions struct {
	debug bool
	json  bool
}

func (o *rootOptions) logger() (*zap.Logger, error) {
	return logger.New(o.json, o.debug)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           app,
		Short:         "careerctl predicts career outcomes and manages the catalog database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	root.AddCommand(
		newPredictCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", app, version)
			},
		},
	)
	return root
}
