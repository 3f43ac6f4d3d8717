package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
)

var (
	ErrEnqueue        = errors.New("push queue: enqueue failed")
	ErrMarkProcessing = errors.New("push queue: mark processing failed")
	ErrDelete         = errors.New("push queue: delete failed")
	ErrNotPending     = errors.New("push queue: job is not pending")
	ErrJobNotFound    = errors.New("push queue: job not found")
)

// Repository provides methods to interact with the push_queue table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new push queue repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Enqueue inserts a pending job and returns its id.
func (r *Repository) Enqueue(ctx context.Context, payload model.Payload, at time.Time) (int64, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: marshal payload: %w", ErrEnqueue, err)
	}

	query := `
		INSERT INTO push_queue (payload, created_at, status)
		VALUES ($1, $2, 'pending')
		RETURNING id;
    `

	var id int64
	if err := r.db.QueryRowContext(ctx, query, data, at).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEnqueue, err)
	}

	return id, nil
}

// Pending returns up to limit pending jobs, oldest first. Jobs are not leased.
//
// Rows whose payload cannot be decoded are dropped from the queue so they
// cannot stay at the head of every later batch.
func (r *Repository) Pending(ctx context.Context, limit int) ([]model.Job, error) {
	query := `
		SELECT id, payload, created_at, status
		FROM push_queue
		WHERE status = 'pending'
		ORDER BY created_at, id
		LIMIT $1;
    `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get pending jobs: %w", err)
	}
	defer rows.Close()

	var (
		jobs []model.Job
		bad  []int64
	)
	for rows.Next() {
		var (
			j    model.Job
			data []byte
		)

		if err := rows.Scan(&j.ID, &data, &j.CreatedAt, &j.Status); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}

		if err := json.Unmarshal(data, &j.Payload); err != nil {
			zlog.Logger.Error().Err(err).Int64("job_id", j.ID).Msg("dropping push job with undecodable payload")
			bad = append(bad, j.ID)
			continue
		}

		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending jobs: %w", err)
	}
	_ = rows.Close()

	if len(bad) > 0 {
		if err := r.deleteIDs(ctx, bad); err != nil {
			zlog.Logger.Error().Err(err).Interface("job_ids", bad).Msg("failed to drop undecodable push jobs")
		}
	}

	return jobs, nil
}

func (r *Repository) deleteIDs(ctx context.Context, ids []int64) error {
	query := `
		DELETE FROM push_queue
		WHERE id = ANY($1);
    `

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	return nil
}

// MarkProcessing leases a pending job. The update is conditional on the
// pending status, so at most one caller wins a given job.
func (r *Repository) MarkProcessing(ctx context.Context, id int64, at time.Time) error {
	query := `
		UPDATE push_queue
		SET status = 'processing', locked_at = $2
		WHERE id = $1 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarkProcessing, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMarkProcessing, err)
	}

	if rows == 0 {
		return ErrNotPending
	}

	return nil
}

// Delete removes a job after it was handled.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM push_queue
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

// ReclaimStale returns processing jobs leased at or before olderThan to pending.
func (r *Repository) ReclaimStale(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		UPDATE push_queue
		SET status = 'pending', locked_at = NULL
		WHERE status = 'processing' AND locked_at <= $1;
    `

	res, err := r.db.ExecContext(ctx, query, olderThan)
	if err != nil {
		return 0, fmt.Errorf("reclaim stale jobs: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reclaim stale jobs: %w", err)
	}

	return rows, nil
}

// Purge deletes every job regardless of status and returns the count.
func (r *Repository) Purge(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM push_queue;`)
	if err != nil {
		return 0, fmt.Errorf("purge push queue: %w", err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}
