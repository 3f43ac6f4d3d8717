package token

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/push-notifier/internal/model"
)

var (
	ErrTokenNotFound = errors.New("push token not found")
	ErrInsert        = errors.New("push token: insert failed")
	ErrUpdate        = errors.New("push token: update failed")
	ErrDelete        = errors.New("push token: delete failed")
	ErrMigrate       = errors.New("push token: guest migration failed")
)

const tokenColumns = `id, uuid, user_id, guest_id, service, token, last_active`

// Repository provides methods to interact with the push_tokens table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new push token repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanToken(s scanner) (model.Token, error) {
	var (
		t       model.Token
		userID  sql.NullInt64
		guestID sql.NullString
	)

	if err := s.Scan(&t.ID, &t.UUID, &userID, &guestID, &t.Service, &t.Value, &t.LastActive); err != nil {
		return model.Token{}, err
	}

	t.UserID = userID.Int64
	t.GuestID = guestID.String

	return t, nil
}

func nullUser(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func nullGuest(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

// GetExisting finds a token by service and encoded value regardless of owner.
// It returns nil when no row matches.
func (r *Repository) GetExisting(ctx context.Context, service string, value []byte) (*model.Token, error) {
	query := `
		SELECT ` + tokenColumns + `
		FROM push_tokens
		WHERE service = $1 AND token = $2
		ORDER BY id
		LIMIT 1;
    `

	t, err := scanToken(r.db.QueryRowContext(ctx, query, service, value))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("get existing token: %w", err)
	}

	return &t, nil
}

// UpdateLastActiveAndBind refreshes last_active and sets the given bindings.
// A zero userID or empty guestID keeps the current value.
func (r *Repository) UpdateLastActiveAndBind(ctx context.Context, id int64, userID int64, guestID string, at time.Time) error {
	query := `
		UPDATE push_tokens
		SET last_active = $2,
		    user_id = COALESCE($3, user_id),
		    guest_id = COALESCE($4, guest_id)
		WHERE id = $1;
    `

	if _, err := r.db.ExecContext(ctx, query, id, at, nullUser(userID), nullGuest(guestID)); err != nil {
		return fmt.Errorf("%w: %w", ErrUpdate, err)
	}

	return nil
}

// CountForUser returns how many tokens are bound to the user.
func (r *Repository) CountForUser(ctx context.Context, userID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM push_tokens
		WHERE user_id = $1;
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tokens for user: %w", err)
	}

	return n, nil
}

// DeleteOldestForUser removes the least recently active token of the user.
func (r *Repository) DeleteOldestForUser(ctx context.Context, userID int64) error {
	query := `
		DELETE FROM push_tokens
		WHERE id = (
			SELECT id FROM push_tokens
			WHERE user_id = $1
			ORDER BY last_active, id
			LIMIT 1
		);
    `

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("%w: oldest for user: %w", ErrDelete, err)
	}

	return nil
}

// Insert stores a new token row.
func (r *Repository) Insert(ctx context.Context, t model.Token) error {
	query := `
		INSERT INTO push_tokens (uuid, user_id, guest_id, service, token, last_active)
		VALUES ($1, $2, $3, $4, $5, $6);
    `

	_, err := r.db.ExecContext(ctx, query,
		t.UUID, nullUser(t.UserID), nullGuest(t.GuestID), t.Service, t.Value, t.LastActive,
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInsert, err)
	}

	return nil
}

// MigrateGuestToUser moves every token of the guest to the user in one
// transaction. Guest rows duplicating a token the user already holds are dropped.
func (r *Repository) MigrateGuestToUser(ctx context.Context, userID int64, guestID string) error {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrMigrate, err)
	}
	defer func() { _ = tx.Rollback() }()

	dedup := `
		DELETE FROM push_tokens g
		USING push_tokens u
		WHERE g.guest_id = $1
		  AND u.user_id = $2
		  AND u.id <> g.id
		  AND u.service = g.service
		  AND u.token = g.token;
    `

	if _, err := tx.ExecContext(ctx, dedup, guestID, userID); err != nil {
		return fmt.Errorf("%w: drop duplicates: %w", ErrMigrate, err)
	}

	reassign := `
		UPDATE push_tokens
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

// DeleteByUUIDForUser removes the user's tokens carrying the client uuid.
func (r *Repository) DeleteByUUIDForUser(ctx context.Context, id uuid.UUID, userID int64) error {
	query := `
		DELETE FROM push_tokens
		WHERE uuid = $1 AND user_id = $2;
    `

	return r.deleteOne(ctx, query, id, userID)
}

// DeleteByUUIDForGuest removes the guest's tokens carrying the client uuid.
func (r *Repository) DeleteByUUIDForGuest(ctx context.Context, id uuid.UUID, guestID string) error {
	query := `
		DELETE FROM push_tokens
		WHERE uuid = $1 AND guest_id = $2;
    `

	return r.deleteOne(ctx, query, id, guestID)
}

func (r *Repository) deleteOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrTokenNotFound
	}

	return nil
}

// DeleteByGuest removes every token of the guest and returns the count.
func (r *Repository) DeleteByGuest(ctx context.Context, guestID string) (int64, error) {
	query := `
		DELETE FROM push_tokens
		WHERE guest_id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, guestID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDelete, err)
	}

	rows, _ := res.RowsAffected()

	return rows, nil
}

// TokensForTargets returns tokens whose owner is subscribed to any target.
//
// Tokens bound to excludeUser or excludeGuest are left out so the author
// of an event is not notified about it.
func (r *Repository) TokensForTargets(ctx context.Context, targets []model.Target, excludeUser int64, excludeGuest string) ([]model.Token, error) {
	if len(targets) == 0 {
		return nil, nil
	}

	var (
		sb   strings.Builder
		args = make([]any, 0, len(targets)*2+2)
	)

	sb.WriteString(`
		SELECT DISTINCT t.id, t.uuid, t.user_id, t.guest_id, t.service, t.token, t.last_active
		FROM push_tokens t
		JOIN push_subscriptions s
		  ON (s.user_id IS NOT NULL AND s.user_id = t.user_id)
		  OR (s.guest_id IS NOT NULL AND s.guest_id = t.guest_id)
		WHERE (`)

	for i, target := range targets {
		if i > 0 {
			sb.WriteString(" OR ")
		}

		args = append(args, target.ObjectType, target.ObjectID)
		sb.WriteString("(s.object_type = $" + strconv.Itoa(len(args)-1) + " AND s.object_id = $" + strconv.Itoa(len(args)) + ")")
	}

	sb.WriteString(")")

	if excludeUser > 0 {
		args = append(args, excludeUser)
		sb.WriteString(" AND (t.user_id IS NULL OR t.user_id <> $" + strconv.Itoa(len(args)) + ")")
	}

	if excludeGuest != "" {
		args = append(args, excludeGuest)
		sb.WriteString(" AND (t.guest_id IS NULL OR t.guest_id <> $" + strconv.Itoa(len(args)) + ")")
	}

	sb.WriteString(" ORDER BY t.id;")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("get tokens for targets: %w", err)
	}
	defer rows.Close()

	var tokens []model.Token
	for rows.Next() {
		t, err := scanToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scan token: %w", err)
		}

		tokens = append(tokens, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tokens: %w", err)
	}

	return tokens, nil
}

// TouchLastActive sets last_active for every id. Setting an absolute
// timestamp keeps concurrent touches idempotent.
func (r *Repository) TouchLastActive(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE push_tokens
		SET last_active = $1
		WHERE id = ANY($2);
    `

	if _, err := r.db.ExecContext(ctx, query, at, pq.Array(ids)); err != nil {
		return fmt.Errorf("%w: touch last active: %w", ErrUpdate, err)
	}

	return nil
}

// DeleteByIDs removes tokens by row id. Missing ids are ignored.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		DELETE FROM push_tokens
		WHERE id = ANY($1);
    `

	if _, err := r.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("%w: %w", ErrDelete, err)
	}

	return nil
}
