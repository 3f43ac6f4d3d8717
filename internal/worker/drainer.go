package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/repository/queue"
)

const (
	DefaultBatchSize  = 50
	DefaultStaleAfter = 5 * time.Minute
)

//go:generate mockgen -source=drainer.go -destination=../mocks/worker/mock_drainer.go -package=mocks
type jobQueue interface {
	ReclaimStale(ctx context.Context, olderThan time.Time) (int64, error)
	Pending(ctx context.Context, limit int) ([]model.Job, error)
	MarkProcessing(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
}

type jobHandler interface {
	Handle(ctx context.Context, job model.Job) error
}

// DrainerConfig tunes a drain pass. Zero values fall back to defaults.
type DrainerConfig struct {
	BatchSize  int
	StaleAfter time.Duration
	Workers    int
}

// Stats summarises one drain pass.
type Stats struct {
	Reclaimed int64 // stale leases returned to pending
	Fetched   int   // pending jobs read
	Skipped   int64 // jobs another drainer leased first, or that failed to lease
	Failed    int64 // jobs left leased for a later retry
	Completed int64 // jobs handled and deleted
}

// Drainer moves pending push jobs through the coordinator.
type Drainer struct {
	queue   jobQueue
	handler jobHandler
	cfg     DrainerConfig
	now     func() time.Time
}

func NewDrainer(q jobQueue, h jobHandler, cfg DrainerConfig) *Drainer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	if cfg.StaleAfter <= 0 {
		cfg.StaleAfter = DefaultStaleAfter
	}

	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	return &Drainer{
		queue:   q,
		handler: h,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type counters struct {
	skipped, failed, completed atomic.Int64
}

// Drain runs one pass over the queue.
//
// It returns an error only when the pending batch cannot be read. A job
// that fails anywhere after its lease stays processing until reclaimed.
func (d *Drainer) Drain(ctx context.Context) (Stats, error) {
	var stats Stats

	reclaimed, err := d.queue.ReclaimStale(ctx, d.now().Add(-d.cfg.StaleAfter))
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to reclaim stale push jobs")
	} else if reclaimed > 0 {
		zlog.Logger.Warn().Int64("count", reclaimed).Msg("reclaimed stale push jobs")
	}
	stats.Reclaimed = reclaimed

	jobs, err := d.queue.Pending(ctx, d.cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("fetch pending jobs: %w", err)
	}

	stats.Fetched = len(jobs)
	if len(jobs) == 0 {
		return stats, nil
	}

	var c counters

	if d.cfg.Workers == 1 || len(jobs) == 1 {
		for _, job := range jobs {
			d.process(ctx, job, &c)
		}
	} else {
		d.fanOut(ctx, jobs, &c)
	}

	stats.Skipped = c.skipped.Load()
	stats.Failed = c.failed.Load()
	stats.Completed = c.completed.Load()

	zlog.Logger.Info().
		Int("fetched", stats.Fetched).
		Int64("completed", stats.Completed).
		Int64("failed", stats.Failed).
		Int64("skipped", stats.Skipped).
		Msg("push queue drained")

	return stats, nil
}

func (d *Drainer) fanOut(ctx context.Context, jobs []model.Job, c *counters) {
	var wg sync.WaitGroup
	jobChan := make(chan model.Job)

	workers := d.cfg.Workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for job := range jobChan {
				d.process(ctx, job, c)
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	wg.Wait()
}

func (d *Drainer) process(ctx context.Context, job model.Job, c *counters) {
	if err := d.queue.MarkProcessing(ctx, job.ID, d.now()); err != nil {
		c.skipped.Add(1)

		if errors.Is(err, queue.ErrNotPending) {
			zlog.Logger.Debug().Int64("job_id", job.ID).Msg("push job already leased")
			return
		}

		zlog.Logger.Warn().Err(err).Int64("job_id", job.ID).Msg("failed to lease push job")
		return
	}

	if err := d.handler.Handle(ctx, job); err != nil {
		c.failed.Add(1)
		zlog.Logger.Error().Err(err).Int64("job_id", job.ID).
			Str("object_type", job.Payload.ObjectType).Int64("object_id", job.Payload.ObjectID).
			Msg("failed to handle push job")
		return
	}

	if err := d.queue.Delete(ctx, job.ID); err != nil && !errors.Is(err, queue.ErrJobNotFound) {
		c.failed.Add(1)
		zlog.Logger.Error().Err(err).Int64("job_id", job.ID).Msg("failed to delete handled push job")
		return
	}

	c.completed.Add(1)
}

// Run drains once immediately and then on every tick until ctx is done.
// Passes run on the calling goroutine, so they never overlap.
func (d *Drainer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := d.Drain(ctx); err != nil {
			zlog.Logger.Error().Err(err).Msg("push queue drain failed")
		}

		select {
		case <-ctx.Done():
			zlog.Logger.Print("drainer stopped")
			return
		case <-ticker.C:
		}
	}
}
