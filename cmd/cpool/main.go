package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:               "cpool",
		Short:             "Decode and inspect Java class file constant pools",
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to cpool.toml (default: search upwards from the working directory)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().IntVarP(&opts.jobs, "jobs", "j", 0, "number of inputs decoded concurrently")

	rootCmd.AddCommand(newDumpCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
