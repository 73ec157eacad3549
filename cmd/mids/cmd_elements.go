package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mids/internal/format"
	"mids/internal/sssom"
)

func newElementsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the MIDS elements compiled from the mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mids, err := opts.engine()
			if err != nil {
				return err
			}

			return format.Elements(cmd.OutOrStdout(), mids, opts.mode)
		},
	}
}

func newDisciplinesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "disciplines",
		Short: "List the disciplines that have a mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			available, err := sssom.Available(opts.mappingFS())
			if err != nil {
				return err
			}

			for _, d := range available {
				fmt.Fprintln(cmd.OutOrStdout(), d)
			}

			return nil
		},
	}
}
