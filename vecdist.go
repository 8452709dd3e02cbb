package vecdist

import (
	"context"
	"fmt"
	"runtime"

	"github.com/chewxy/math32"

	"github.com/hupe1980/vecdist/distance"
	"github.com/hupe1980/vecdist/internal/simd"
)

// Calculator computes distances with one fixed kernel.
// It is immutable after New and safe for concurrent use.
type Calculator struct {
	isa    simd.ISA
	kernel func(a, b []float32) float32
	logger *Logger
}

// New returns a Calculator. Without WithISA it uses the kernel selected at
// start-up.
func New(optFns ...Option) (*Calculator, error) {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	isa := simd.ActiveISA()
	if opts.isa != "" {
		parsed, ok := simd.ParseISA(opts.isa)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedISA, opts.isa)
		}
		isa = parsed
	}

	kernel, err := simd.KernelFor(isa)
	if err != nil {
		return nil, err
	}

	opts.logger.LogKernel(context.Background(), isa.String(), isa.BatchWidth(), opts.isa != "")

	return &Calculator{
		isa:    isa,
		kernel: kernel,
		logger: opts.logger.WithISA(isa.String()),
	}, nil
}

// ISA returns the name of the kernel family in use.
func (c *Calculator) ISA() string {
	return c.isa.String()
}

// BatchWidth returns the number of elements the kernel processes per step.
func (c *Calculator) BatchWidth() int {
	return c.isa.BatchWidth()
}

// Distance returns the Euclidean distance between a and b.
func (c *Calculator) Distance(a, b []float32) (float32, error) {
	sum, err := c.squared("distance", a, b)
	if err != nil {
		return 0, err
	}
	return math32.Sqrt(sum), nil
}

// SquaredDistance returns the squared Euclidean distance between a and b.
func (c *Calculator) SquaredDistance(a, b []float32) (float32, error) {
	return c.squared("squared_distance", a, b)
}

func (c *Calculator) squared(op string, a, b []float32) (float32, error) {
	if err := distance.CheckLengths(a, b); err != nil {
		c.logger.LogInvalidArgument(context.Background(), op, err)
		return 0, err
	}
	return c.kernel(a, b), nil
}

// Func returns Distance as a distance.Func.
func (c *Calculator) Func() distance.Func {
	return c.Distance
}

// DistanceBatch writes the Euclidean distance from query to each row of the
// row-major matrix targets into out.
func (c *Calculator) DistanceBatch(query, targets, out []float32) error {
	if err := c.SquaredDistanceBatch(query, targets, out); err != nil {
		return err
	}
	for i, v := range out {
		out[i] = math32.Sqrt(v)
	}
	return nil
}

// SquaredDistanceBatch is DistanceBatch without the square roots.
func (c *Calculator) SquaredDistanceBatch(query, targets, out []float32) error {
	if err := distance.CheckShape(query, targets, out); err != nil {
		c.logger.LogInvalidArgument(context.Background(), "distance_batch", err)
		return err
	}
	if len(query) == 0 {
		clear(out)
		return nil
	}
	simd.SquaredL2BatchWith(c.kernel, query, targets, len(query), out)
	return nil
}

// RuntimeInfo describes the kernel selection on this host.
type RuntimeInfo struct {
	// ISA is the kernel family selected at start-up.
	ISA        string
	BatchWidth int
	// Overridden reports whether VECDIST_SIMD chose ISA.
	Overridden bool
	Available  []string
	Features   map[string]bool
	GOARCH     string
}

// Info returns the runtime kernel selection.
func Info() RuntimeInfo {
	isas := simd.Available()
	names := make([]string, len(isas))
	for i, isa := range isas {
		names[i] = isa.String()
	}

	active := simd.ActiveISA()
	return RuntimeInfo{
		ISA:        active.String(),
		BatchWidth: active.BatchWidth(),
		Overridden: simd.IsOverridden(),
		Available:  names,
		Features:   simd.Features(),
		GOARCH:     runtime.GOARCH,
	}
}
