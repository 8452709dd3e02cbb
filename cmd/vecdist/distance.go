package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecdist"
	"github.com/hupe1980/vecdist/codec"
)

type distanceFlags struct {
	squared bool
	isa     string
	workers int
}

func newDistanceCmd(cfg Config) *cobra.Command {
	flags := distanceFlags{isa: cfg.SIMD}

	cmd := &cobra.Command{
		Use:   "distance [file]",
		Short: "Score every vector against the first one",
		Long: `Reads JSON-lines vectors from file (or stdin). The first vector is the
query; for every following vector the distance to the query is printed on
its own line, in input order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runDistance(cmd, cfg, flags, path)
		},
	}

	cmd.Flags().BoolVar(&flags.squared, "squared", false, "Print squared distances")
	cmd.Flags().StringVar(&flags.isa, "isa", flags.isa, "Kernel to use (generic, portable, avx); empty selects the best")
	cmd.Flags().IntVar(&flags.workers, "workers", 1, "Number of goroutines scoring rows")

	return cmd
}

type row struct {
	line int
	vec  []float32
}

func runDistance(cmd *cobra.Command, cfg Config, flags distanceFlags, path string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := newCmdLogger(cmd, cfg)
	if err != nil {
		return err
	}

	calc, err := vecdist.New(vecdist.WithISA(flags.isa), vecdist.WithLogger(logger))
	if err != nil {
		return err
	}

	in, closer, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closer.Close()

	query, rows, err := readRows(in)
	if err != nil {
		return err
	}

	out := make([]float32, len(rows))
	err = scoreRows(ctx, calc, flags, query, rows, out)
	logger.WithISA(calc.ISA()).
		WithDimension(len(query)).
		WithCount(len(rows)).
		LogBatch(ctx, err)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, d := range out {
		w.WriteString(strconv.FormatFloat(float64(d), 'g', -1, 32))
		w.WriteByte('\n')
	}
	return w.Flush()
}

func readRows(r io.Reader) ([]float32, []row, error) {
	vr := codec.NewVectorReader(r, nil)

	query, err := vr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, errors.New("no query vector in input")
	}
	if err != nil {
		return nil, nil, err
	}

	var rows []row
	for {
		vec, err := vr.Read()
		if errors.Is(err, io.EOF) {
			return query, rows, nil
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, row{line: vr.Line(), vec: vec})
	}
}

// scoreRows fills out[i] with the distance of rows[i]. With more than one
// worker, rows are split into contiguous chunks scored concurrently.
func scoreRows(ctx context.Context, calc *vecdist.Calculator, flags distanceFlags, query []float32, rows []row, out []float32) error {
	score := calc.Distance
	if flags.squared {
		score = calc.SquaredDistance
	}

	scoreRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			d, err := score(query, rows[i].vec)
			if err != nil {
				return fmt.Errorf("line %d: %w", rows[i].line, err)
			}
			out[i] = d
		}
		return nil
	}

	workers := max(flags.workers, 1)
	if workers == 1 || len(rows) < 2*workers {
		return scoreRange(0, len(rows))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	chunk := (len(rows) + workers - 1) / workers
	for lo := 0; lo < len(rows); lo += chunk {
		hi := min(lo+chunk, len(rows))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return scoreRange(lo, hi)
		})
	}

	return g.Wait()
}
