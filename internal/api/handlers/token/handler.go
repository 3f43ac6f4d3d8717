package token

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/dto"
	"github.com/aliskhannn/push-notifier/internal/api/respond"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
	"github.com/aliskhannn/push-notifier/internal/model"
	tokenrepo "github.com/aliskhannn/push-notifier/internal/repository/token"
	tokensvc "github.com/aliskhannn/push-notifier/internal/service/token"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

// tokenService is the device registry the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/token/mock.go -package=mocks
type tokenService interface {
	Submit(ctx context.Context, p tokensvc.SubmitParams) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID, owner model.Owner) error
	ForgetGuest(ctx context.Context, guestID string) (int64, error)
}

// Handler serves device token registration.
type Handler struct {
	service   tokenService
	validator *validator.Validate
}

func NewHandler(s tokenService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

func isValidation(err error) bool {
	return errors.Is(err, tokensvc.ErrServiceNotFound) ||
		errors.Is(err, tokensvc.ErrInvalidGuestID) ||
		errors.Is(err, tokensvc.ErrInvalidUserID) ||
		errors.Is(err, tokensvc.ErrInvalidUUID) ||
		errors.Is(err, tokensvc.ErrInvalidOwner) ||
		errors.Is(err, transport.ErrInvalidToken)
}

// Submit handles POST /tokens.
//
// The owner is the authenticated user, the guest from the body or the
// guest header, or both. A token may also be registered with no owner and
// bound later by a resubmit.
func (h *Handler) Submit(c *ginext.Context) {
	var req dto.SubmitTokenRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if req.GuestID == "" {
		req.GuestID = middlewares.GuestID(c)
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	id, err := h.service.Submit(c.Request.Context(), tokensvc.SubmitParams{
		UserID:  middlewares.UserID(c),
		GuestID: req.GuestID,
		Service: req.Service,
		Token:   req.Token,
		UUID:    req.UUID,
	})
	if err != nil {
		if isValidation(err) {
			zlog.Logger.Warn().Err(err).Str("service", req.Service).Msg("rejected push token")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("service", req.Service).Msg("failed to submit push token")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, dto.SubmitTokenResponse{UUID: id.String()})
}

// Delete handles DELETE /tokens/:uuid for the requesting owner.
func (h *Handler) Delete(c *ginext.Context) {
	idStr := c.Param("uuid")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("uuid", idStr).Msg("invalid token uuid")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid uuid"))
		return
	}

	owner := model.OwnerFrom(middlewares.UserID(c), middlewares.GuestID(c))
	if owner.IsUnbound() {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("user or guest identity required"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, owner); err != nil {
		switch {
		case errors.Is(err, tokenrepo.ErrTokenNotFound):
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("token not found"))
		case isValidation(err):
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		default:
			zlog.Logger.Error().Err(err).Stringer("uuid", id).Msg("failed to delete push token")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.OK(c.Writer, "token deleted")
}

// Forget handles DELETE /tokens: every token of the requesting guest is removed.
func (h *Handler) Forget(c *ginext.Context) {
	guestID := middlewares.GuestID(c)
	if guestID == "" {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("guest identity required"))
		return
	}

	n, err := h.service.ForgetGuest(c.Request.Context(), guestID)
	if err != nil {
		if isValidation(err) {
			respond.Fail(c.Writer, http.StatusBadRequest, err)
			return
		}

		zlog.Logger.Error().Err(err).Str("guest_id", guestID).Msg("failed to forget guest tokens")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, dto.ForgetGuestResponse{Deleted: n})
}
