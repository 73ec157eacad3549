package main

import (
	"github.com/spf13/cobra"

	"mids/internal/format"
)

func newCheckCmds(opts *options) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(sources))

	for _, src := range sources {
		cmds = append(cmds, &cobra.Command{
			Use:   "check-" + src.suffix + " " + src.arg,
			Short: "Print the MIDS level reached by " + src.noun,
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

				level, ok := mids.Check(r)

				return format.Check(cmd.OutOrStdout(), level, ok)
			},
		})
	}

	return cmds
}
