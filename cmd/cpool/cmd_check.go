package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Decode class files and report which ones fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := decodeAll(cmd.Context(), args, opts.cfg.Jobs)
			if err != nil {
				return err
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.err != nil {
					failed++
					fmt.Fprintf(out, "%s\t%s\n", r.name, r.err)
					continue
				}
				fmt.Fprintf(out, "%s\tok\n", r.name)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to decode", failed, len(results))
			}
			return nil
		},
	}
}
