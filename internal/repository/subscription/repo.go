package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/push-notifier/internal/model"
)

var (
	ErrInsert               = errors.New("subscription: insert failed")
	ErrDelete               = errors.New("subscription: delete failed")
	ErrMigrate              = errors.New("subscription: guest migration failed")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUnboundOwner         = errors.New("subscription: owner is unbound")
)

// Repository provides methods to interact with the push_subscriptions table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscription repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ownerClause returns the owner column and its argument.
func ownerClause(owner model.Owner) (string, any, error) {
	if id, ok := owner.UserID(); ok {
		return "user_id", id, nil
	}

	if id, ok := owner.GuestID(); ok {
		return "guest_id", id, nil
	}

	return "", nil, ErrUnboundOwner
}

// Exists reports whether the owner is subscribed to the object.
func (r *Repository) Exists(ctx context.Context, owner model.Owner, objectType string, objectID int64) (bool, error) {
	column, arg, err := ownerClause(owner)
	if err != nil {
		return false, err
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM push_subscriptions
			WHERE ` + column + ` = $1 AND object_type = $2 AND object_id = $3
		);
    `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, arg, objectType, objectID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check subscription: %w", err)
	}

	return exists, nil
}

// Create stores a subscription. An existing identical row is left as is.
func (r *Repository) Create(ctx context.Context, owner model.Owner, objectType string, objectID int64) error {
	column, arg, err := ownerClause(owner)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO push_subscriptions (` + column + `, object_type, object_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
    `

	if _, err := r.db.ExecContext(ctx, query, arg, objectType, objectID); err != nil {
		return fmt.Errorf("%w: %w", ErrInsert, err)
	}

	return nil
}

// Delete removes the owner's subscription to the object.
func (r *Repository) Delete(ctx context.Context, owner model.Owner, objectType string, objectID int64) error {
	column, arg, err := ownerClause(owner)
	if err != nil {
		return err
	}

	query := `
		DELETE FROM push_subscriptions
		WHERE ` + column + ` = $1 AND object_type = $2 AND object_id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, arg, objectType, objectID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrSubscriptionNotFound
	}

	return nil
}

// ListForOwner returns every subscription of the owner, newest first.
func (r *Repository) ListForOwner(ctx context.Context, owner model.Owner) ([]model.Subscription, error) {
	column, arg, err := ownerClause(owner)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, object_type, object_id
		FROM push_subscriptions
		WHERE ` + column + ` = $1
		ORDER BY id DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []model.Subscription
	for rows.Next() {
		s := model.Subscription{Owner: owner}
		if err := rows.Scan(&s.ID, &s.ObjectType, &s.ObjectID); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}

		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return subs, nil
}

// MigrateGuestToUser moves the guest's subscriptions to the user in one
// transaction, dropping those the user already has.
func (r *Repository) MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrMigrate, err)
	}
	defer func() { _ = tx.Rollback() }()

	dedup := `
		DELETE FROM push_subscriptions g
		USING push_subscriptions u
		WHERE g.guest_id = $1
		  AND u.user_id = $2
		  AND u.object_type = g.object_type
		  AND u.object_id = g.object_id;
    `

	if _, err := tx.ExecContext(ctx, dedup, guestID, userID); err != nil {
		return fmt.Errorf("%w: drop duplicates: %w", ErrMigrate, err)
	}

	reassign := `
		UPDATE push_subscriptions
		SET user_id = $1, guest_id = NULL
		WHERE guest_id = $2;
    `

	if _, err := tx.ExecContext(ctx, reassign, userID, guestID); err != nil {
		return fmt.Errorf("%w: reassign: %w", ErrMigrate, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrMigrate, err)
	}

	return nil
}

// CountForTargets counts subscriptions matching any of the targets.
func (r *Repository) CountForTargets(ctx context.Context, targets []model.Target) (int64, error) {
	if len(targets) == 0 {
		return 0, nil
	}

	var (
		sb   strings.Builder
		args = make([]any, 0, len(targets)*2)
	)

	sb.WriteString(`SELECT COUNT(*) FROM push_subscriptions WHERE `)

	for i, target := range targets {
		if i > 0 {
			sb.WriteString(" OR ")
		}

		args = append(args, target.ObjectType, target.ObjectID)
		sb.WriteString("(object_type = $" + strconv.Itoa(len(args)-1) + " AND object_id = $" + strconv.Itoa(len(args)) + ")")
	}

	sb.WriteString(";")

	var n sql.NullInt64
	if err := r.db.QueryRowContext(ctx, sb.String(), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscriptions: %w", err)
	}

	return n.Int64, nil
}
