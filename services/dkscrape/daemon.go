package dkscrape

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"dkscrape-backend/lib/timezone"

	"github.com/go-co-op/gocron/v2"
)

type DaemonOptions struct {
	// sports to scrape on each tick, in order
	Sports []string
	// time between runs
	Interval time.Duration
	// optional cron expression, takes precedence over Interval
	Cron string
	// per-sport run options, Sport is overwritten per tick
	Run RunOptions
	// called with each finished run's results, may be nil
	OnResults func(ctx context.Context, results Results)
}

// Daemon repeatedly runs the pipeline on a fixed interval. Slow runs
// never overlap, the next tick waits for the previous one.
type Daemon struct {
	scheduler gocron.Scheduler
	service   Service
	opts      DaemonOptions
}

func NewDaemon(service Service, opts DaemonOptions) (*Daemon, error) {
	if len(opts.Sports) == 0 {
		return nil, fmt.Errorf("no sports to scrape")
	}
	if opts.Cron == "" && opts.Interval <= 0 {
		return nil, fmt.Errorf("invalid scrape interval %s", opts.Interval)
	}

	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(timezone.Location),
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &Daemon{
		scheduler: scheduler,
		service:   service,
		opts:      opts,
	}, nil
}

func (d *Daemon) Start(ctx context.Context) error {
	definition := gocron.DurationJob(d.opts.Interval)
	if d.opts.Cron != "" {
		definition = gocron.CronJob(d.opts.Cron, false)
	}

	_, err := d.scheduler.NewJob(
		definition,
		gocron.NewTask(d.tick, ctx),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		return fmt.Errorf("create scrape job: %w", err)
	}

	d.scheduler.Start()
	slog.InfoContext(ctx, "scrape daemon started",
		"sports", d.opts.Sports, "interval", d.opts.Interval, "cron", d.opts.Cron)
	return nil
}

func (d *Daemon) Stop() error {
	return d.scheduler.Shutdown()
}

func (d *Daemon) tick(ctx context.Context) {
	for _, sport := range d.opts.Sports {
		runOpts := d.opts.Run
		runOpts.Sport = sport

		results, err := d.service.Run(ctx, runOpts)
		if err != nil {
			slog.ErrorContext(ctx, "scrape run failed", "sport", sport, "err", err)
			if len(results.Contests) == 0 && len(results.DraftGroups) == 0 {
				continue
			}
			// partial results still flow to the callback
		}
		if d.opts.OnResults != nil {
			d.opts.OnResults(ctx, results)
		}
	}
}
