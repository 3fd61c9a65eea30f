// Package verify cross-checks the arithmetic in intx against math/big and
// between the native and generic MulFull64 paths, over operands composed from
// boundary limb sets.
//
// It is meant to be run on a new platform or after building with the purego
// tag, where the generic paths are the ones in use:
//
//	report, err := verify.Run(ctx, verify.FromEnv(verify.DefaultConfig()), verify.NewLogger(os.Stderr))
//	if err != nil {
//		// err joins every *MismatchError found, or is a *ConfigError.
//	}
package verify

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	intx "github.com/shabbyrobe/go-intx"
	"github.com/shabbyrobe/go-intx/internal/logging"
)

// maxReportedMismatches caps the errors kept per check. All mismatches are
// still counted.
const maxReportedMismatches = 8

type (
	Logger = logging.Logger
	Field  = logging.Field
)

// NewLogger returns a Logger writing JSON events to w.
func NewLogger(w io.Writer) Logger { return logging.NewLogger(w, "verify") }

// ZerologLogger wraps an existing zerolog.Logger.
func ZerologLogger(zl zerolog.Logger) Logger { return logging.NewZerologAdapter(zl) }

type CheckResult struct {
	Name       string
	Width      int
	Cases      int
	Mismatches int
	Duration   time.Duration
}

type Report struct {
	Capability intx.Capability
	Config     Config
	Checks     []CheckResult
	Duration   time.Duration
}

// Mismatches returns the total number of mismatches across all checks.
func (r *Report) Mismatches() (n int) {
	for _, c := range r.Checks {
		n += c.Mismatches
	}
	return n
}

// Cases returns the total number of cases across all checks.
func (r *Report) Cases() (n int) {
	for _, c := range r.Checks {
		n += c.Cases
	}
	return n
}

func (r *Report) Failed() bool { return r.Mismatches() > 0 }

// Run executes every check selected by cfg. Checks run concurrently, at most
// cfg.Concurrency at a time.
//
// The returned error is a *ConfigError if cfg is invalid, ctx.Err() if the run
// was cancelled, or errors.Join of the recorded *MismatchError values. The
// Report is returned whenever the checks ran to completion, including when
// mismatches were found.
func Run(ctx context.Context, cfg Config, log Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewNop()
	}

	checks := plan(cfg)
	capability := intx.Capabilities()
	log.Info("verify started",
		logging.String("capability", capability.String()),
		logging.String("set", cfg.Set),
		logging.Int("checks", len(checks)),
		logging.Int("max_pairs", cfg.MaxPairs),
		logging.Int("concurrency", cfg.Concurrency),
		logging.Field{Key: "seed", Value: cfg.Seed})

	start := time.Now()
	results := make([]CheckResult, len(checks))
	found := make([][]error, len(checks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, chk := range checks {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			log.Debug("check started", logging.String("check", chk.name), logging.Int("width", chk.width))
			rec := &recorder{check: chk.name, width: chk.width}
			checkStart := time.Now()
			if err := chk.run(gctx, rec); err != nil {
				return err
			}
			results[i] = CheckResult{
				Name:       chk.name,
				Width:      chk.width,
				Cases:      rec.cases,
				Mismatches: rec.mismatches,
				Duration:   time.Since(checkStart),
			}
			found[i] = rec.errs

			fields := []Field{
				logging.String("check", chk.name),
				logging.Int("width", chk.width),
				logging.Int("cases", rec.cases),
				logging.Int("mismatches", rec.mismatches),
				logging.String("duration", results[i].Duration.String()),
			}
			if rec.mismatches > 0 {
				log.Error("check failed", errors.Join(rec.errs...), fields...)
			} else {
				log.Debug("check passed", fields...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error("verify aborted", err)
		return nil, err
	}

	report := &Report{
		Capability: capability,
		Config:     cfg,
		Checks:     results,
		Duration:   time.Since(start),
	}

	var all []error
	for _, errs := range found {
		all = append(all, errs...)
	}

	log.Info("verify finished",
		logging.Int("cases", report.Cases()),
		logging.Int("mismatches", report.Mismatches()),
		logging.Bool("failed", report.Failed()),
		logging.String("duration", report.Duration.String()))

	return report, errors.Join(all...)
}

// recorder collects the outcome of a single check. Each check owns its
// recorder, so no locking is needed.
type recorder struct {
	check      string
	width      int
	cases      int
	mismatches int
	errs       []error
}

func (r *recorder) pass() { r.cases++ }

func (r *recorder) fail(got, want string, operands ...string) {
	r.cases++
	r.mismatches++
	if len(r.errs) < maxReportedMismatches {
		r.errs = append(r.errs, &MismatchError{
			Check:    r.check,
			Width:    r.width,
			Operands: operands,
			Got:      got,
			Want:     want,
		})
	}
}
