// Package coordinator turns a queued push job into deliveries.
package coordinator

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/content"
	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

//go:generate mockgen -source=coordinator.go -destination=../../mocks/service/coordinator/mock_coordinator.go -package=mocks
type contentSource interface {
	GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error)
}

type tokenStore interface {
	TokensForTargets(ctx context.Context, targets []model.Target, excludeUser int64, excludeGuest string) ([]model.Token, error)
	TouchLastActive(ctx context.Context, ids []int64, at time.Time) error
	DeleteByIDs(ctx context.Context, ids []int64) error
}

type transportLocator interface {
	Locate(id string) (transport.Transport, bool)
}

type Coordinator struct {
	source     contentSource
	tokens     tokenStore
	transports transportLocator
	now        func() time.Time
}

func New(source contentSource, tokens tokenStore, transports transportLocator) *Coordinator {
	return &Coordinator{
		source:     source,
		tokens:     tokens,
		transports: transports,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Handle delivers the notification described by job.
//
// Jobs that resolve to nothing to deliver succeed without side effects.
// Failing transports are logged and skipped; only content or token lookup
// failures are returned so the job is retried later.
func (c *Coordinator) Handle(ctx context.Context, job model.Job) error {
	p := job.Payload
	if p.ObjectID <= 0 {
		return nil
	}

	obj, err := c.source.GetContent(ctx, p.ObjectType, p.ObjectID)
	if err != nil {
		return fmt.Errorf("get content %s/%d: %w", p.ObjectType, p.ObjectID, err)
	}

	if obj == nil {
		return nil
	}

	targets := content.Targets(obj)
	if len(targets) == 0 {
		return nil
	}

	tokens, err := c.tokens.TokensForTargets(ctx, targets, p.UserID, p.GuestID)
	if err != nil {
		return fmt.Errorf("get tokens for targets: %w", err)
	}

	if len(tokens) == 0 {
		return nil
	}

	var (
		order  []string
		groups = make(map[string][]model.Token)
	)

	for _, t := range tokens {
		if _, ok := groups[t.Service]; !ok {
			order = append(order, t.Service)
		}

		groups[t.Service] = append(groups[t.Service], t)
	}

	successIDs := newIDSet()
	invalidIDs := newIDSet()

	for _, service := range order {
		tr, ok := c.transports.Locate(service)
		if !ok {
			zlog.Logger.Debug().Str("service", service).Int("tokens", len(groups[service])).
				Msg("no transport registered, skipping tokens")
			continue
		}

		env := content.Envelope(*obj, tr.SupportsSubtitle())

		res, err := tr.HandleScheduledEvent(ctx, groups[service], env, p.ObjectType, p.ObjectID)
		if err != nil {
			zlog.Logger.Error().Err(err).Int64("job_id", job.ID).Str("service", service).
				Int("delivered", len(res.SuccessIDs)).Int("invalid", len(res.InvalidIDs)).
				Msg("transport failed to handle event")
		}

		successIDs.add(res.SuccessIDs...)
		invalidIDs.add(res.InvalidIDs...)
	}

	c.reconcile(ctx, job.ID, successIDs.list(), invalidIDs.list())

	return nil
}

// reconcile applies delivery outcomes to the token registry. Both steps
// are best-effort and independent of each other.
func (c *Coordinator) reconcile(ctx context.Context, jobID int64, success, invalid []int64) {
	if len(success) > 0 {
		if err := c.tokens.TouchLastActive(ctx, success, c.now()); err != nil {
			zlog.Logger.Error().Err(err).Int64("job_id", jobID).Int("tokens", len(success)).
				Msg("failed to touch delivered tokens")
		}
	}

	if len(invalid) > 0 {
		if err := c.tokens.DeleteByIDs(ctx, invalid); err != nil {
			zlog.Logger.Error().Err(err).Int64("job_id", jobID).Int("tokens", len(invalid)).
				Msg("failed to delete invalid tokens")
			return
		}

		zlog.Logger.Info().Int64("job_id", jobID).Int("tokens", len(invalid)).Msg("removed invalid tokens")
	}
}

// idSet keeps first-seen order so reconciliation calls are deterministic.
type idSet struct {
	seen map[int64]struct{}
	ids  []int64
}

func newIDSet() *idSet {
	return &idSet{seen: make(map[int64]struct{})}
}

func (s *idSet) add(ids ...int64) {
	for _, id := range ids {
		if _, ok := s.seen[id]; ok {
			continue
		}

		s.seen[id] = struct{}{}
		s.ids = append(s.ids, id)
	}
}

func (s *idSet) list() []int64 {
	return s.ids
}
