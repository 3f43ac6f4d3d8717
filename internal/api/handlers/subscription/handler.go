package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/dto"
	"github.com/aliskhannn/push-notifier/internal/api/respond"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
	"github.com/aliskhannn/push-notifier/internal/model"
	subsvc "github.com/aliskhannn/push-notifier/internal/service/subscription"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/subscription/mock.go -package=mocks
type subscriptionService interface {
	Subscribe(ctx context.Context, owner model.Owner, objectType string, objectID int64) error
	Unsubscribe(ctx context.Context, owner model.Owner, objectType string, objectID int64) error
	List(ctx context.Context, owner model.Owner) ([]model.Subscription, error)
}

// Handler serves subscriptions of the requesting owner. Authenticated
// users take precedence over the guest header.
type Handler struct {
	service   subscriptionService
	validator *validator.Validate
}

func NewHandler(s subscriptionService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func owner(c *ginext.Context) (model.Owner, bool) {
	o := model.OwnerFrom(middlewares.UserID(c), middlewares.GuestID(c))
	if o.IsUnbound() {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("user or guest identity required"))
		return o, false
	}

	return o, true
}

func (h *Handler) decode(c *ginext.Context) (dto.SubscriptionRequest, bool) {
	var req dto.SubscriptionRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return req, false
	}

	return req, true
}

func fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, subsvc.ErrInvalidGuestID),
		errors.Is(err, subsvc.ErrInvalidUserID),
		errors.Is(err, subsvc.ErrInvalidObject):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, subsvc.ErrInvalidOwner):
		respond.Fail(c.Writer, http.StatusUnauthorized, err)
	case errors.Is(err, subsvc.ErrForbidden):
		respond.Fail(c.Writer, http.StatusForbidden, err)
	case errors.Is(err, subsvc.ErrObjectNotFound),
		errors.Is(err, subsvc.ErrSubscriptionNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, err)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

// List handles GET /subscriptions.
func (h *Handler) List(c *ginext.Context) {
	o, ok := owner(c)
	if !ok {
		return
	}

	subs, err := h.service.List(c.Request.Context(), o)
	if err != nil {
		fail(c, err, "failed to list subscriptions")
		return
	}

	if subs == nil {
		subs = []model.Subscription{}
	}

	respond.OK(c.Writer, subs)
}

// Subscribe handles POST /subscriptions.
func (h *Handler) Subscribe(c *ginext.Context) {
	o, ok := owner(c)
	if !ok {
		return
	}

	req, ok := h.decode(c)
	if !ok {
		return
	}

	if err := h.service.Subscribe(c.Request.Context(), o, req.ObjectType, req.ObjectID); err != nil {
		fail(c, err, "failed to subscribe")
		return
	}

	respond.Created(c.Writer, req)
}

// Unsubscribe handles DELETE /subscriptions.
func (h *Handler) Unsubscribe(c *ginext.Context) {
	o, ok := owner(c)
	if !ok {
		return
	}

	req, ok := h.decode(c)
	if !ok {
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), o, req.ObjectType, req.ObjectID); err != nil {
		fail(c, err, "failed to unsubscribe")
		return
	}

	respond.OK(c.Writer, "subscription deleted")
}
