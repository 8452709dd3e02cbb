package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/vecdist/codec"
	"github.com/hupe1980/vecdist/testutil"
)

type generateFlags struct {
	dim  int
	rows int
	min  float32
	max  float32
	seed int64
	out  string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random vectors as JSON lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.dim, "dim", 1024, "Length of each vector")
	cmd.Flags().IntVar(&flags.rows, "rows", 1000, "Number of vectors")
	cmd.Flags().Float32Var(&flags.min, "min", 0, "Minimum value (inclusive)")
	cmd.Flags().Float32Var(&flags.max, "max", 1, "Maximum value (exclusive)")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "Random seed; 0 uses the current time")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "-", "Output file; .gz, .zst and .lz4 are compressed")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	if flags.dim < 0 || flags.rows < 0 {
		return errors.New("--dim and --rows must not be negative")
	}
	if flags.max < flags.min {
		return errors.New("--max must not be smaller than --min")
	}

	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := testutil.NewRNG(seed)

	out, closer, err := createOutput(flags.out, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	vw := codec.NewVectorWriter(out, nil)
	vec := make([]float32, flags.dim)
	for range flags.rows {
		rng.FillUniformRange(vec, flags.min, flags.max)
		if err := vw.Write(vec); err != nil {
			_ = closer.Close()
			return err
		}
	}

	if err := vw.Flush(); err != nil {
		_ = closer.Close()
		return err
	}
	return closer.Close()
}
