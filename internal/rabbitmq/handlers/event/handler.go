package event

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	eventsvc "github.com/aliskhannn/push-notifier/internal/service/event"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/event/mock.go -package=mocks
type eventService interface {
	HandleContentInsertion(ctx context.Context, ev model.ContentEvent) (bool, error)
}

type Handler struct {
	service   eventService
	validator *validator.Validate
}

func NewHandler(svc eventService, v *validator.Validate) *Handler {
	return &Handler{
		service:   svc,
		validator: v,
	}
}

// HandleMessage feeds one content event to the producer, retrying
// transient failures. Invalid events are dropped.
func (h *Handler) HandleMessage(ctx context.Context, msg model.ContentEvent, strategy retry.Strategy) {
	if err := h.validator.Struct(msg); err != nil {
		zlog.Logger.Warn().Err(err).Interface("event", msg).Msg("dropping invalid content event")
		return
	}

	var enqueued bool
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			ok, err := h.service.HandleContentInsertion(ctx, msg)
			if errors.Is(err, eventsvc.ErrInvalidGuestID) {
				// not retryable
				zlog.Logger.Warn().Err(err).Interface("event", msg).Msg("dropping content event")
				return nil
			}

			enqueued = ok
			return err
		}
	}, strategy)
	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("object_type", msg.ObjectType).Int64("object_id", msg.ObjectID).
			Msg("failed to handle content event")
		return
	}

	zlog.Logger.Debug().
		Str("object_type", msg.ObjectType).Int64("object_id", msg.ObjectID).Bool("enqueued", enqueued).
		Msg("content event handled")
}
