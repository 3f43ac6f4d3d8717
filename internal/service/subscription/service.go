package subscription

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	subrepo "github.com/aliskhannn/push-notifier/internal/repository/subscription"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

var (
	ErrInvalidGuestID       = errors.New("invalid guest id")
	ErrInvalidUserID        = errors.New("invalid user id")
	ErrInvalidOwner         = errors.New("subscription owner is required")
	ErrInvalidObject        = errors.New("object type and positive object id are required")
	ErrObjectNotFound       = errors.New("object not found")
	ErrForbidden            = errors.New("owner may not view object")
	ErrSubscriptionNotFound = subrepo.ErrSubscriptionNotFound
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/subscription/mock_service.go -package=mocks
type subscriptionRepository interface {
	Exists(ctx context.Context, owner model.Owner, objectType string, objectID int64) (bool, error)
	Create(ctx context.Context, owner model.Owner, objectType string, objectID int64) error
	Delete(ctx context.Context, owner model.Owner, objectType string, objectID int64) error
	ListForOwner(ctx context.Context, owner model.Owner) ([]model.Subscription, error)
	MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error
}

type contentChecker interface {
	GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error)
	UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error)
}

type Service struct {
	repo    subscriptionRepository
	checker contentChecker
}

// NewService creates a subscription service. A nil checker disables the
// object existence and visibility checks on Subscribe.
func NewService(repo subscriptionRepository, checker contentChecker) *Service {
	return &Service{
		repo:    repo,
		checker: checker,
	}
}

func validOwner(owner model.Owner) error {
	switch owner.Kind() {
	case model.OwnerUser:
		if id, _ := owner.UserID(); id <= 0 {
			return ErrInvalidUserID
		}
	case model.OwnerGuest:
		if id, _ := owner.GuestID(); !model.ValidGuestID(id) {
			return ErrInvalidGuestID
		}
	default:
		return ErrInvalidOwner
	}

	return nil
}

func validObject(objectType string, objectID int64) error {
	if objectType == "" || objectID <= 0 {
		return ErrInvalidObject
	}

	return nil
}

// Subscribe links owner to the object. Subscribing twice succeeds.
func (s *Service) Subscribe(ctx context.Context, owner model.Owner, objectType string, objectID int64) error {
	if err := validOwner(owner); err != nil {
		return err
	}
	if err := validObject(objectType, objectID); err != nil {
		return err
	}

	exists, err := s.repo.Exists(ctx, owner, objectType, objectID)
	if err != nil {
		return fmt.Errorf("check subscription: %w", err)
	}
	if exists {
		return nil
	}

	if s.checker != nil {
		if err := s.checkVisible(ctx, owner, objectType, objectID); err != nil {
			return err
		}
	}

	if err := s.repo.Create(ctx, owner, objectType, objectID); err != nil {
		return err
	}

	zlog.Logger.Debug().Str("owner", owner.String()).Str("object_type", objectType).Int64("object_id", objectID).
		Msg("subscription created")

	return nil
}

func (s *Service) checkVisible(ctx context.Context, owner model.Owner, objectType string, objectID int64) error {
	obj, err := s.checker.GetContent(ctx, objectType, objectID)
	if err != nil {
		return fmt.Errorf("get content: %w", err)
	}
	if obj == nil {
		return ErrObjectNotFound
	}

	// guests are checked as the anonymous user
	userID, _ := owner.UserID()
	ok, err := s.checker.UserCan(ctx, userID, transport.ActionView, objectType, objectID)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}
	if !ok {
		return ErrForbidden
	}

	return nil
}

// Unsubscribe removes the link, returning ErrSubscriptionNotFound when absent.
func (s *Service) Unsubscribe(ctx context.Context, owner model.Owner, objectType string, objectID int64) error {
	if err := validOwner(owner); err != nil {
		return err
	}
	if err := validObject(objectType, objectID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, owner, objectType, objectID)
}

// List returns the owner's subscriptions, newest first.
func (s *Service) List(ctx context.Context, owner model.Owner) ([]model.Subscription, error) {
	if err := validOwner(owner); err != nil {
		return nil, err
	}

	subs, err := s.repo.ListForOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}

	return subs, nil
}

// MigrateGuestToUser moves every guest subscription to the user.
func (s *Service) MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error {
	if !model.ValidGuestID(guestID) {
		return ErrInvalidGuestID
	}
	if userID <= 0 {
		return ErrInvalidUserID
	}

	return s.repo.MigrateGuestToUser(ctx, userID, guestID)
}
