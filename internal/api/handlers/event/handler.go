package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/dto"
	"github.com/aliskhannn/push-notifier/internal/api/respond"
	"github.com/aliskhannn/push-notifier/internal/model"
	eventsvc "github.com/aliskhannn/push-notifier/internal/service/event"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type eventProducer interface {
	HandleContentInsertion(ctx context.Context, ev model.ContentEvent) (bool, error)
}

type eventPublisher interface {
	Publish(ev model.ContentEvent, strategy retry.Strategy) error
}

// Handler accepts content insertion events from the CMS.
//
// With a publisher the event is handed to the broker and processed by the
// intake workers; otherwise it is handled inline.
type Handler struct {
	producer  eventProducer
	publisher eventPublisher
	strategy  retry.Strategy
	validator *validator.Validate
}

func NewHandler(p eventProducer, pub eventPublisher, strategy retry.Strategy, v *validator.Validate) *Handler {
	return &Handler{producer: p, publisher: pub, strategy: strategy, validator: v}
}

// Create handles POST /events.
func (h *Handler) Create(c *ginext.Context) {
	var ev model.ContentEvent

	if err := json.NewDecoder(c.Request.Body).Decode(&ev); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(ev); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	if ev.GuestID != "" && !model.ValidGuestID(ev.GuestID) {
		respond.Fail(c.Writer, http.StatusBadRequest, eventsvc.ErrInvalidGuestID)
		return
	}

	if h.publisher != nil {
		if err := h.publisher.Publish(ev, h.strategy); err != nil {
			zlog.Logger.Error().Err(err).Str("object_type", ev.ObjectType).Int64("object_id", ev.ObjectID).
				Msg("failed to publish content event")
			respond.Fail(c.Writer, http.StatusServiceUnavailable, fmt.Errorf("event broker unavailable"))
			return
		}

		respond.JSON(c.Writer, http.StatusAccepted, map[string]string{"result": "accepted"})
		return
	}

	enqueued, err := h.producer.HandleContentInsertion(c.Request.Context(), ev)
	if err != nil {
		if errors.Is(err, eventsvc.ErrInvalidGuestID) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("object_type", ev.ObjectType).Int64("object_id", ev.ObjectID).
			Msg("failed to handle content event")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.EventResponse{Enqueued: enqueued})
}
