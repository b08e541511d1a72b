package main

import (
	"fmt"

	"github.com/dhamidi/cpool/format"
	"github.com/spf13/cobra"
)

func newDumpCmd(opts *globalOptions) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Dump the resolved constant pool of .class files or archives",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dumpFormat == "" {
				dumpFormat = opts.cfg.Format
			}
			out := cmd.OutOrStdout()
			enc, err := format.NewEncoder(dumpFormat, out)
			if err != nil {
				return err
			}

			results, err := decodeAll(cmd.Context(), args, opts.cfg.Jobs)
			if err != nil {
				return err
			}

			for _, r := range results {
				if r.err != nil {
					return fmt.Errorf("%s: %w", r.name, r.err)
				}
				if !r.class.HasValidMagic() {
					log.Warningf("%s: unexpected magic number 0x%X", r.name, r.class.Magic)
				}
				if dumpFormat == "line" && len(results) > 1 {
					fmt.Fprintf(out, "file\t%s\n", r.name)
				}
				if err := enc.Encode(r.class); err != nil {
					return fmt.Errorf("encode %s: %w", dumpFormat, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "", "output format (line, json, cbor); defaults to the configured format")

	return cmd
}
