package density

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Sweep runs one DBSCAN per config over the same dataset, using up to
// workers goroutines (runtime.NumCPU() when workers <= 0). Each run is
// sequential and independent; results are returned in config order.
//
// Runs that have not started when ctx is canceled are skipped and Sweep
// returns the context error.
func Sweep(ctx context.Context, data Dataset, configs []Config, workers int) ([]*DBSCANResult, error) {
	return sweep(ctx, configs, workers, func(cfg Config) *DBSCANResult {
		return NewDBSCAN(cfg).Run(data)
	})
}

// SweepOPTICS is Sweep for OPTICS.
func SweepOPTICS(ctx context.Context, data Dataset, configs []Config, workers int) ([]*OPTICSResult, error) {
	return sweep(ctx, configs, workers, func(cfg Config) *OPTICSResult {
		return NewOPTICS(cfg).Run(data)
	})
}

func sweep[R any](ctx context.Context, configs []Config, workers int, run func(Config) R) ([]R, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]R, len(configs))

	// Each goroutine writes only its own slot of results.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, cfg := range configs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = run(cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
