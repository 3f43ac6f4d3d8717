// Package event turns content events into queued push jobs.
package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/content"
	"github.com/aliskhannn/push-notifier/internal/model"
)

var ErrInvalidGuestID = errors.New("invalid guest id")

//go:generate mockgen -source=service.go -destination=../../mocks/service/event/mock_service.go -package=mocks
type contentSource interface {
	GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error)
}

type subscriptionCounter interface {
	CountForTargets(ctx context.Context, targets []model.Target) (int64, error)
}

type jobQueue interface {
	Enqueue(ctx context.Context, payload model.Payload, at time.Time) (int64, error)
}

type Service struct {
	source   contentSource
	subs     subscriptionCounter
	queue    jobQueue
	strategy retry.Strategy
	now      func() time.Time
}

func NewService(source contentSource, subs subscriptionCounter, queue jobQueue, strategy retry.Strategy) *Service {
	if strategy.Attempts <= 0 {
		strategy.Attempts = 1
	}

	return &Service{
		source:   source,
		subs:     subs,
		queue:    queue,
		strategy: strategy,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HandleContentInsertion enqueues a push job for ev when anyone is
// subscribed to the new content or its parent. It reports whether a job
// was enqueued.
func (s *Service) HandleContentInsertion(ctx context.Context, ev model.ContentEvent) (bool, error) {
	if ev.ObjectID <= 0 {
		return false, nil
	}

	if ev.GuestID != "" && !model.ValidGuestID(ev.GuestID) {
		return false, ErrInvalidGuestID
	}

	c, err := s.source.GetContent(ctx, ev.ObjectType, ev.ObjectID)
	if err != nil {
		return false, fmt.Errorf("get content: %w", err)
	}

	targets := content.Targets(c)
	if len(targets) == 0 {
		return false, nil
	}

	count, err := s.subs.CountForTargets(ctx, targets)
	if err != nil {
		return false, fmt.Errorf("count subscribers: %w", err)
	}

	if count == 0 {
		return false, nil
	}

	payload := model.Payload{
		ObjectType: ev.ObjectType,
		ObjectID:   ev.ObjectID,
		UserID:     ev.UserID,
		GuestID:    ev.GuestID,
	}

	var id int64
	err = retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			var enqErr error
			id, enqErr = s.queue.Enqueue(ctx, payload, s.now())
			return enqErr
		}
	}, s.strategy)
	if err != nil {
		return false, fmt.Errorf("enqueue push job: %w", err)
	}

	zlog.Logger.Info().Int64("job_id", id).Str("object_type", ev.ObjectType).Int64("object_id", ev.ObjectID).
		Int64("subscribers", count).Msg("push job enqueued")

	return true, nil
}
