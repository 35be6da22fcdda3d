package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logFile  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	play := &playOptions{}

	cmd := &cobra.Command{
		Use:           "showreel [deck]",
		Short:         "Showreel plays slideshow and welcome decks in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// A bare deck path is shorthand for "play <deck>".
			if len(args) == 1 {
				return executePlay(cmd, flags, play, args[0])
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file (discarded when empty)")
	bindPlayFlags(cmd, play)

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
