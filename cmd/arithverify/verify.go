package main

import (
	"context"
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/avdva/arith"
	"github.com/avdva/arith/internal/portable"
)

const (
	// inputs checked between two context checks
	ctxCheckInterval = 1 << 16
	// sample count used for 64-bit domains when no explicit count is given
	defaultSamples64 = 1 << 24
	f64Limit         = 1 << 62
)

// Config controls a verification run.
type Config struct {
	Ops     []string
	Workers int
	Chunks  int
	// Samples is the number of random inputs per operation.
	// Zero checks 32-bit and smaller domains exhaustively.
	Samples uint64
	Seed    int64
}

// Report summarizes the run of a single operation.
type Report struct {
	Op      string
	Checked uint64
	Skipped uint64
}

// MismatchError describes an input on which an implementation disagrees with the reference.
type MismatchError struct {
	Op    string
	Impl  string
	Input string
	Got   string
	Want  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s %s(%s) = %s, want %s", e.Impl, e.Op, e.Input, e.Got, e.Want)
}

// checker tests one raw input pattern. skip is set for inputs outside the domain.
type checker func(x uint64) (skip bool, err error)

type operation struct {
	name string
	// width of the input space in bits
	width uint
	check checker
}

func mismatch[T any](op, impl string, input any, got, want T) error {
	return &MismatchError{
		Op:    op,
		Impl:  impl,
		Input: fmt.Sprint(input),
		Got:   fmt.Sprint(got),
		Want:  fmt.Sprint(want),
	}
}

func rounding32(name string, native, soft func(float32) int32, ref func(float64) float64) operation {
	return operation{name: name, width: 32, check: func(x uint64) (bool, error) {
		f := math.Float32frombits(uint32(x))
		if math.IsNaN(float64(f)) || f < math.MinInt32 || f >= 1<<31 {
			return true, nil
		}
		want := int32(ref(float64(f)))
		if got := native(f); got != want {
			return false, mismatch(name, arith.RoundingStrategy.String(), f, got, want)
		}
		if got := soft(f); got != want {
			return false, mismatch(name, "portable", f, got, want)
		}
		return false, nil
	}}
}

func rounding64(name string, native, soft func(float64) int64, ref func(float64) float64) operation {
	return operation{name: name, width: 64, check: func(x uint64) (bool, error) {
		f := math.Float64frombits(x)
		if math.IsNaN(f) || math.Abs(f) >= f64Limit {
			return true, nil
		}
		want := int64(ref(f))
		if got := native(f); got != want {
			return false, mismatch(name, arith.RoundingStrategy.String(), f, got, want)
		}
		if got := soft(f); got != want {
			return false, mismatch(name, "portable", f, got, want)
		}
		return false, nil
	}}
}

var operations = []operation{
	rounding32("trunc32", arith.TruncF32, portable.TruncF32, math.Trunc),
	rounding32("round32", arith.RoundF32, portable.RoundF32, math.RoundToEven),
	rounding32("floor32", arith.FloorF32, portable.FloorF32, math.Floor),
	rounding32("ceil32", arith.CeilF32, portable.CeilF32, math.Ceil),
	rounding64("trunc64", arith.TruncF64, portable.TruncF64, math.Trunc),
	rounding64("round64", arith.RoundF64, portable.RoundF64, math.RoundToEven),
	rounding64("floor64", arith.FloorF64, portable.FloorF64, math.Floor),
	rounding64("ceil64", arith.CeilF64, portable.CeilF64, math.Ceil),
	{name: "clz32", width: 32, check: func(x uint64) (bool, error) {
		v := uint32(x)
		want := uint32(bits.LeadingZeros32(v))
		if got := arith.LeadingZeros32(v); got != want {
			return false, mismatch("clz32", arith.BitScanStrategy.String(), v, got, want)
		}
		if got := portable.LeadingZeros32(v); got != want {
			return false, mismatch("clz32", "portable", v, got, want)
		}
		return false, nil
	}},
	{name: "clz64", width: 64, check: func(x uint64) (bool, error) {
		want := uint64(bits.LeadingZeros64(x))
		if got := arith.LeadingZeros64(x); got != want {
			return false, mismatch("clz64", arith.BitScanStrategy.String(), x, got, want)
		}
		if got := portable.LeadingZeros64(x); got != want {
			return false, mismatch("clz64", "portable", x, got, want)
		}
		return false, nil
	}},
	{name: "ctz32", width: 32, check: func(x uint64) (bool, error) {
		v := uint32(x)
		if got, want := arith.TrailingZeros32(v), uint32(bits.TrailingZeros32(v)); got != want {
			return false, mismatch("ctz32", arith.BitScanStrategy.String(), v, got, want)
		}
		return false, nil
	}},
	{name: "revbyte", width: 8, check: func(x uint64) (bool, error) {
		v := uint8(x)
		if got, want := arith.ReverseByte(v), bits.Reverse8(v); got != want {
			return false, mismatch("revbyte", "portable", v, got, want)
		}
		return false, nil
	}},
}

// OperationNames returns the names of all verifiable operations.
func OperationNames() []string {
	names := make([]string, 0, len(operations))
	for _, op := range operations {
		names = append(names, op.name)
	}
	sort.Strings(names)
	return names
}

func lookupOperations(names []string) ([]operation, error) {
	if len(names) == 0 || len(names) == 1 && names[0] == "all" {
		return operations, nil
	}
	var result []operation
	for _, name := range names {
		name = strings.TrimSpace(name)
		idx := -1
		for i, op := range operations {
			if op.name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown operation %q", name)
		}
		result = append(result, operations[idx])
	}
	return result, nil
}

// Verify checks the configured operations, stopping at the first mismatch.
func Verify(ctx context.Context, cfg Config, logger zerolog.Logger) ([]Report, error) {
	ops, err := lookupOperations(cfg.Ops)
	if err != nil {
		return nil, err
	}
	if cfg.Workers < 1 || cfg.Chunks < 1 {
		return nil, fmt.Errorf("workers and chunks must be positive, got %d and %d", cfg.Workers, cfg.Chunks)
	}
	reports := make([]Report, 0, len(ops))
	for _, op := range ops {
		r, err := verifyOp(ctx, op, cfg, logger)
		reports = append(reports, r)
		if err != nil {
			return reports, fmt.Errorf("verifying %s: %w", op.name, err)
		}
		logger.Info().Str("op", op.name).Uint64("checked", r.Checked).Uint64("skipped", r.Skipped).Msg("verified")
	}
	return reports, nil
}

// chunk is a contiguous input range [lo, lo+n) or, when sampled, n random inputs.
type chunk struct {
	idx     int
	lo, n   uint64
	sampled bool
}

func splitChunks(op operation, cfg Config) []chunk {
	samples := cfg.Samples
	if samples == 0 && op.width > 32 {
		samples = defaultSamples64
	}
	var total uint64
	if samples == 0 {
		total = 1 << op.width
	} else {
		total = samples
	}
	count := uint64(cfg.Chunks)
	if count > total {
		count = total
	}
	chunks := make([]chunk, 0, count)
	size, rem := total/count, total%count
	var lo uint64
	for i := uint64(0); i < count; i++ {
		n := size
		if i < rem {
			n++
		}
		chunks = append(chunks, chunk{idx: int(i), lo: lo, n: n, sampled: samples != 0})
		lo += n
	}
	return chunks
}

func verifyOp(ctx context.Context, op operation, cfg Config, logger zerolog.Logger) (Report, error) {
	var checked, skipped atomic.Uint64
	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(cfg.Workers))
	mask := uint64(1)<<op.width - 1
	for _, c := range splitChunks(op, cfg) {
		c := c
		if err := sem.Acquire(gctx, 1); err != nil {
			// a worker failed or the run was cancelled; g.Wait reports why.
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			var rng *rand.Rand
			if c.sampled {
				rng = rand.New(rand.NewSource(cfg.Seed + int64(c.idx)))
			}
			var done, skip uint64
			defer func() {
				checked.Add(done)
				skipped.Add(skip)
			}()
			for i := uint64(0); i < c.n; i++ {
				if i%ctxCheckInterval == 0 && gctx.Err() != nil {
					return gctx.Err()
				}
				x := c.lo + i
				if rng != nil {
					x = rng.Uint64() & mask
				}
				s, err := op.check(x)
				if err != nil {
					return err
				}
				if s {
					skip++
				} else {
					done++
				}
			}
			logger.Debug().Str("op", op.name).Int("chunk", c.idx).Uint64("checked", done).Msg("chunk done")
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// cancelled before every chunk was scheduled
		err = ctx.Err()
	}
	return Report{Op: op.name, Checked: checked.Load(), Skipped: skipped.Load()}, err
}
