package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

// DefaultCapacity is how many tokens a single user may hold.
const DefaultCapacity = 100

var (
	ErrServiceNotFound = errors.New("push service not found")
	ErrInvalidGuestID  = errors.New("invalid guest id")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUUID     = errors.New("invalid token uuid")
	ErrInvalidOwner    = errors.New("token owner is required")
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/token/mock_service.go -package=mocks
type tokenRepository interface {
	GetExisting(ctx context.Context, service string, value []byte) (*model.Token, error)
	UpdateLastActiveAndBind(ctx context.Context, id int64, userID int64, guestID string, at time.Time) error
	CountForUser(ctx context.Context, userID int64) (int, error)
	DeleteOldestForUser(ctx context.Context, userID int64) error
	Insert(ctx context.Context, t model.Token) error
	MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error
	DeleteByUUIDForUser(ctx context.Context, id uuid.UUID, userID int64) error
	DeleteByUUIDForGuest(ctx context.Context, id uuid.UUID, guestID string) error
	DeleteByGuest(ctx context.Context, guestID string) (int64, error)
}

type transportLocator interface {
	Locate(id string) (transport.Transport, bool)
}

// SubmitParams is a device registration request.
type SubmitParams struct {
	UserID  int64
	GuestID string
	Service string
	Token   string
	UUID    string // client uuid, generated when empty
}

type Service struct {
	repo       tokenRepository
	transports transportLocator
	capacity   int
	now        func() time.Time
}

// NewService creates a token service. A non-positive capacity falls back to DefaultCapacity.
func NewService(repo tokenRepository, transports transportLocator, capacity int) *Service {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Service{
		repo:       repo,
		transports: transports,
		capacity:   capacity,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Submit registers a device token or refreshes an already known one.
//
// The known row is found by service and encoded token only, so the same
// device submitted under a new user or guest gains that binding and keeps
// its uuid. New rows may evict the user's least recently active token.
func (s *Service) Submit(ctx context.Context, p SubmitParams) (uuid.UUID, error) {
	t, ok := s.transports.Locate(p.Service)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrServiceNotFound, p.Service)
	}

	if p.UserID < 0 {
		return uuid.Nil, ErrInvalidUserID
	}

	if p.GuestID != "" && !model.ValidGuestID(p.GuestID) {
		return uuid.Nil, ErrInvalidGuestID
	}

	if err := t.ValidateToken(p.Token); err != nil {
		return uuid.Nil, err
	}

	clientID := uuid.New()
	if p.UUID != "" {
		parsed, err := uuid.Parse(p.UUID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidUUID, err)
		}

		clientID = parsed
	}

	value := t.EncodeToken(p.Token)
	now := s.now()

	existing, err := s.repo.GetExisting(ctx, p.Service, value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("look up token: %w", err)
	}

	if existing != nil {
		var (
			bindUser  int64
			bindGuest string
		)

		if p.UserID > 0 && existing.UserID != p.UserID {
			bindUser = p.UserID
		}

		if p.GuestID != "" && existing.GuestID != p.GuestID {
			bindGuest = p.GuestID
		}

		if err := s.repo.UpdateLastActiveAndBind(ctx, existing.ID, bindUser, bindGuest, now); err != nil {
			return uuid.Nil, fmt.Errorf("refresh token: %w", err)
		}

		return existing.UUID, nil
	}

	if p.UserID > 0 {
		if err := s.makeRoom(ctx, p.UserID); err != nil {
			return uuid.Nil, err
		}
	}

	err = s.repo.Insert(ctx, model.Token{
		UUID:       clientID,
		UserID:     p.UserID,
		GuestID:    p.GuestID,
		Service:    p.Service,
		Value:      value,
		LastActive: now,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert token: %w", err)
	}

	return clientID, nil
}

// makeRoom evicts the oldest token when the user is at capacity.
func (s *Service) makeRoom(ctx context.Context, userID int64) error {
	count, err := s.repo.CountForUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("count user tokens: %w", err)
	}

	if count < s.capacity {
		return nil
	}

	if err := s.repo.DeleteOldestForUser(ctx, userID); err != nil {
		return fmt.Errorf("evict oldest token: %w", err)
	}

	zlog.Logger.Info().Int64("user_id", userID).Int("count", count).Msg("evicted oldest push token")

	return nil
}

// MigrateGuestToUser reassigns every token of the guest to the user.
func (s *Service) MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error {
	if !model.ValidGuestID(guestID) {
		return ErrInvalidGuestID
	}

	if userID <= 0 {
		return ErrInvalidUserID
	}

	if err := s.repo.MigrateGuestToUser(ctx, userID, guestID); err != nil {
		return fmt.Errorf("migrate guest tokens: %w", err)
	}

	return nil
}

// Delete removes the token with the client uuid when owner holds it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, owner model.Owner) error {
	if userID, ok := owner.UserID(); ok {
		if err := s.repo.DeleteByUUIDForUser(ctx, id, userID); err != nil {
			return fmt.Errorf("delete user token: %w", err)
		}

		return nil
	}

	if guestID, ok := owner.GuestID(); ok {
		if !model.ValidGuestID(guestID) {
			return ErrInvalidGuestID
		}

		if err := s.repo.DeleteByUUIDForGuest(ctx, id, guestID); err != nil {
			return fmt.Errorf("delete guest token: %w", err)
		}

		return nil
	}

	return ErrInvalidOwner
}

// ForgetGuest removes every token registered by the guest and returns the count.
func (s *Service) ForgetGuest(ctx context.Context, guestID string) (int64, error) {
	if !model.ValidGuestID(guestID) {
		return 0, ErrInvalidGuestID
	}

	n, err := s.repo.DeleteByGuest(ctx, guestID)
	if err != nil {
		return 0, fmt.Errorf("delete guest tokens: %w", err)
	}

	zlog.Logger.Info().Str("guest_id", guestID).Int64("count", n).Msg("forgot guest push tokens")

	return n, nil
}
