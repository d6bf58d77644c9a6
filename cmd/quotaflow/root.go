package main

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/quotaflow/assign"
	"github.com/katalvlaran/quotaflow/batch"
	"github.com/katalvlaran/quotaflow/config"
	"github.com/katalvlaran/quotaflow/flow"
)

// newRootCommand wires flags, logging and the solve loop. getenv supplies
// environment overrides (os.Getenv outside tests).
func newRootCommand(getenv func(string) string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "quotaflow [input-file]",
		Short:         "Solve batches of min-cost quota assignments read from a file or stdin.",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := config.BindFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := logrus.New()
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		log := logger.WithField("run", ulid.Make().String())

		cfg, err := config.Load(cmd.Flags(), flags, getenv)
		if err != nil {
			log.WithError(err).Error("invalid configuration")
			return err
		}
		logger.SetLevel(cfg.LogLevel)

		in, closeIn, err := openInput(cmd.InOrStdin(), args)
		if err != nil {
			log.WithError(err).Error("open input")
			return err
		}
		defer closeIn()

		if err := run(cmd.Context(), cfg, in, cmd.OutOrStdout(), log); err != nil {
			log.WithError(err).Error("run failed")
			return err
		}

		return nil
	}

	return cmd
}

// openInput returns stdin when no path (or "-") is given.
func openInput(stdin io.Reader, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", args[0])
	}

	return f, func() { _ = f.Close() }, nil
}

// run solves every case in order. Answers written before a failure are
// still flushed.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log logrus.FieldLogger) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	var m *meter
	if cfg.CheckLimits {
		m = startMeter()
	}

	w, err := batch.NewWriter(out, cfg.Format)
	if err != nil {
		return err
	}
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
	}()

	r := batch.NewReader(in)
	opts := []flow.Option{
		flow.WithPotentialInit(cfg.Potentials),
		flow.WithLogger(log),
	}

	for k := 1; ; k++ {
		inst, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errors.Wrap(err, "read input")
		}

		ans, err := assign.Solve(ctx, inst, opts...)
		if err != nil {
			return errors.Wrapf(err, "case %d", k)
		}
		log.WithFields(logrus.Fields{
			"case":     k,
			"n":        inst.N(),
			"m":        inst.M(),
			"cost":     ans.Cost,
			"feasible": ans.Feasible,
		}).Debug("case solved")

		if err := w.Write(k, ans); err != nil {
			return err
		}
	}

	if m != nil {
		elapsed, allocated := m.stop()
		reportLimits(log, cfg, elapsed, allocated)
	}

	return nil
}

// meter measures wall time and bytes allocated between startMeter and stop.
// Both ends force a GC so the TotalAlloc readings are settled.
type meter struct {
	start time.Time
	alloc uint64
}

func startMeter() *meter {
	var ms runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&ms)

	return &meter{start: time.Now(), alloc: ms.TotalAlloc}
}

func (m *meter) stop() (time.Duration, uint64) {
	elapsed := time.Since(m.start)
	var ms runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&ms)

	return elapsed, ms.TotalAlloc - m.alloc
}

// reportLimits logs elapsed time and allocated memory, and warns when either
// exceeds its configured limit.
func reportLimits(log logrus.FieldLogger, cfg *config.Config, elapsed time.Duration, allocated uint64) {
	allocMB := float64(allocated) / (1 << 20)

	entry := log.WithFields(logrus.Fields{
		"elapsed":  elapsed.String(),
		"alloc_mb": allocMB,
	})
	entry.Info("resource usage")

	if elapsed > cfg.TimeLimit {
		entry.WithField("limit", cfg.TimeLimit.String()).Warn("time limit exceeded")
	}
	if allocMB > float64(cfg.MemoryLimitMB) {
		entry.WithField("limit_mb", cfg.MemoryLimitMB).Warn("memory limit exceeded")
	}
}
