package main

import (
	"github.com/spf13/cobra"

	"github.com/hupe1980/vecdist"
)

func newRootCmd(cfg Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vecdist",
		Short: "SIMD Euclidean distance over JSON-lines vectors",
		Long: `vecdist scores vectors against a query with the fastest available
Euclidean distance kernel (AVX on x86-64, portable Go elsewhere).

Input and output files ending in .gz, .zst or .lz4 are compressed
transparently.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInfoCmd())
	rootCmd.AddCommand(newDistanceCmd(cfg))
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

// newCmdLogger builds the logger for a command, writing to its stderr.
func newCmdLogger(cmd *cobra.Command, cfg Config) (*vecdist.Logger, error) {
	level, err := vecdist.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return vecdist.NewFormatLogger(cmd.ErrOrStderr(), cfg.LogFormat, level)
}
