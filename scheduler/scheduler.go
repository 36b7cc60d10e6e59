// Package scheduler runs the periodic table reset.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

const resetTimeout = 30 * time.Second

// Resetter marks every table available and reports how many rows it touched.
type Resetter interface {
	ResetTables(ctx context.Context) (int64, error)
}

// Start schedules the reset on a standard five-field cron spec and starts
// the scheduler. The caller stops it with Stop.
func Start(spec string, r Resetter, log *slog.Logger) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.PrintfLogger(slog.NewLogLogger(log.Handler(), slog.LevelWarn))),
	))
	if _, err := c.AddFunc(spec, func() { ResetJob(context.Background(), r, log) }); err != nil {
		return nil, fmt.Errorf("invalid table reset schedule %q: %w", spec, err)
	}
	c.Start()
	log.Info("table reset scheduled", "schedule", spec)
	return c, nil
}

// ResetJob runs one reset and logs its outcome.
func ResetJob(ctx context.Context, r Resetter, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, resetTimeout)
	defer cancel()

	n, err := r.ResetTables(ctx)
	if err != nil {
		log.Error("table reset failed", "error", err)
		return
	}
	log.Info("tables reset", "affected_rows", n)
}
