package main

import (
	"github.com/spf13/cobra"

	"mids/internal/format"
)

func newReportCmds(opts *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(sources))

	for _, src := range sources {
		var verbose bool

		cmd := &cobra.Command{
			Use:   "report-" + src.suffix + " " + src.arg,
			Short: "Report every MIDS level for " + src.noun,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				mids, err := opts.engine()
				if err != nil {
					return err
				}

				r, err := opts.fetch(cmd, src.load, args[0])
				if err != nil {
					return err
				}

				return format.Report(cmd.OutOrStdout(), mids.Report(r), verbose, opts.mode)
			},
		}

		cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every element with hints for misspelled fields")
		cmds = append(cmds, cmd)
	}

	return cmds
}
