// Command arithverify checks that the hardware and software implementations
// of the arith package agree with each other and with the math package over
// whole input ranges.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avdva/arith"
)

var (
	opsFlag = flag.String("ops", "all", "Comma separated operations to verify ("+strings.Join(OperationNames(), ", ")+")")
	workers = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
	chunks  = flag.Int("chunks", 1024, "Number of chunks each input space is split into")
	samples = flag.Uint64("samples", 0, "Random inputs per operation; 0 checks 32-bit domains exhaustively")
	seed    = flag.Int64("seed", 1, "Seed for sampled inputs")
	verbose = flag.Bool("v", false, "Log every finished chunk")
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	target := arith.CurrentTarget()
	log.Info().
		Str("arch", target.Arch).
		Bool("big_endian", target.BigEndian).
		Stringer("rounding", target.Rounding).
		Stringer("bit_scan", target.BitScan).
		Strs("features", target.Features.Names).
		Msg("Target")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	cfg := Config{
		Ops:     strings.Split(*opsFlag, ","),
		Workers: *workers,
		Chunks:  *chunks,
		Samples: *samples,
		Seed:    *seed,
	}
	start := time.Now()
	_, err := Verify(ctx, cfg, log.Logger)
	stop()
	if err != nil {
		var me *MismatchError
		if errors.As(err, &me) {
			log.Error().Str("op", me.Op).Str("impl", me.Impl).Str("input", me.Input).
				Str("got", me.Got).Str("want", me.Want).Msg("Mismatch")
		} else {
			log.Error().Err(err).Msg("Verification failed")
		}
		os.Exit(1)
	}
	log.Info().Dur("elapsed", time.Since(start)).Msg("All operations agree")
}
