package migrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/dto"
	"github.com/aliskhannn/push-notifier/internal/api/respond"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
	subsvc "github.com/aliskhannn/push-notifier/internal/service/subscription"
	tokensvc "github.com/aliskhannn/push-notifier/internal/service/token"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/migrate/mock.go -package=mocks
type guestMigrator interface {
	MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error
}

// Handler moves a guest's tokens and subscriptions to the signed-in user.
type Handler struct {
	tokens        guestMigrator
	subscriptions guestMigrator
	validator     *validator.Validate
}

func NewHandler(tokens, subscriptions guestMigrator, v *validator.Validate) *Handler {
	return &Handler{tokens: tokens, subscriptions: subscriptions, validator: v}
}

func isValidation(err error) bool {
	return errors.Is(err, tokensvc.ErrInvalidGuestID) ||
		errors.Is(err, tokensvc.ErrInvalidUserID) ||
		errors.Is(err, subsvc.ErrInvalidGuestID) ||
		errors.Is(err, subsvc.ErrInvalidUserID)
}

// Migrate handles POST /migrate. Tokens move before subscriptions.
// The guest header is used when the body names no guest.
func (h *Handler) Migrate(c *ginext.Context) {
	var req dto.MigrateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
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

	userID := middlewares.UserID(c)
	ctx := c.Request.Context()

	if err := h.tokens.MigrateGuestToUser(ctx, userID, req.GuestID); err != nil {
		h.fail(c, err, "tokens")
		return
	}

	if err := h.subscriptions.MigrateGuestToUser(ctx, userID, req.GuestID); err != nil {
		h.fail(c, err, "subscriptions")
		return
	}

	zlog.Logger.Info().Int64("user_id", userID).Str("guest_id", req.GuestID).Msg("guest migrated")

	respond.OK(c.Writer, "guest migrated")
}

func (h *Handler) fail(c *ginext.Context, err error, what string) {
	if isValidation(err) {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	zlog.Logger.Error().Err(err).Str("stage", what).Msg("failed to migrate guest")
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
