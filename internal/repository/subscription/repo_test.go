package subscription

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/push-notifier/internal/model"
)

const guest = "123e4567-e89b-12d3-a456-426614174000"

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestExists(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1 AND object_type = $2 AND object_id = $3`)).
		WithArgs(int64(3), "topic", int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(context.Background(), model.UserOwner(3), "topic", 9)
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE guest_id = $1 AND object_type = $2 AND object_id = $3`)).
		WithArgs(guest, "topic", int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err = repo.Exists(context.Background(), model.GuestOwner(guest), "topic", 9)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnboundOwnerIsRejected(t *testing.T) {
	repo, mock := setupMockDB(t)
	unbound := model.UserOwner(0)

	_, err := repo.Exists(context.Background(), unbound, "topic", 1)
	assert.ErrorIs(t, err, ErrUnboundOwner)
	assert.ErrorIs(t, repo.Create(context.Background(), unbound, "topic", 1), ErrUnboundOwner)
	assert.ErrorIs(t, repo.Delete(context.Background(), unbound, "topic", 1), ErrUnboundOwner)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate(t *testing.T) {
	repo, mock := setupMockDB(t)
	query := regexp.QuoteMeta(`
		INSERT INTO push_subscriptions (guest_id, object_type, object_id)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING;
    `)

	mock.ExpectExec(query).
		WithArgs(guest, "reply", int64(4)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	assert.NoError(t, repo.Create(context.Background(), model.GuestOwner(guest), "reply", 4))

	mock.ExpectExec(query).WillReturnError(errors.New("conn refused"))
	assert.ErrorIs(t, repo.Create(context.Background(), model.GuestOwner(guest), "reply", 4), ErrInsert)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	repo, mock := setupMockDB(t)
	query := regexp.QuoteMeta(`
		DELETE FROM push_subscriptions
		WHERE user_id = $1 AND object_type = $2 AND object_id = $3;
    `)

	mock.ExpectExec(query).WithArgs(int64(2), "topic", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), model.UserOwner(2), "topic", 1))

	mock.ExpectExec(query).WithArgs(int64(2), "topic", int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), model.UserOwner(2), "topic", 1), ErrSubscriptionNotFound)

	mock.ExpectExec(query).WillReturnError(errors.New("timeout"))
	assert.ErrorIs(t, repo.Delete(context.Background(), model.UserOwner(2), "topic", 1), ErrDelete)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListForOwner(t *testing.T) {
	repo, mock := setupMockDB(t)
	owner := model.UserOwner(5)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, object_type, object_id
		FROM push_subscriptions
		WHERE user_id = $1
		ORDER BY id DESC;
    `)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "object_type", "object_id"}).
			AddRow(int64(8), "topic", int64(1)).
			AddRow(int64(3), "reply", int64(7)))

	subs, err := repo.ListForOwner(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.Equal(t, model.Subscription{ID: 8, Owner: owner, ObjectType: "topic", ObjectID: 1}, subs[0])
	assert.Equal(t, "reply", subs[1].ObjectType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateGuestToUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM push_subscriptions g`)).
		WithArgs(guest, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`SET user_id = $1, guest_id = NULL`)).
		WithArgs(int64(1), guest).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	assert.NoError(t, repo.MigrateGuestToUser(context.Background(), 1, guest))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateGuestToUser_BeginFails(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	assert.ErrorIs(t, repo.MigrateGuestToUser(context.Background(), 1, guest), ErrMigrate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountForTargets(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT COUNT(*) FROM push_subscriptions WHERE (object_type = $1 AND object_id = $2) OR (object_type = $3 AND object_id = $4);`)).
		WithArgs("reply", int64(10), "topic", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(6)))

	n, err := repo.CountForTargets(context.Background(), []model.Target{
		{ObjectType: "reply", ObjectID: 10, Scope: model.ScopeObject},
		{ObjectType: "topic", ObjectID: 2, Scope: model.ScopeParent},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(6), n)

	n, err = repo.CountForTargets(context.Background(), nil)
	assert.NoError(t, err)
	assert.Zero(t, n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
