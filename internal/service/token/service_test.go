package token

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/push-notifier/internal/mocks/service/token"
	"github.com/aliskhannn/push-notifier/internal/model"
	tokenrepo "github.com/aliskhannn/push-notifier/internal/repository/token"
	"github.com/aliskhannn/push-notifier/internal/transport"
	"github.com/aliskhannn/push-notifier/internal/transport/transporttest"
)

const guestA = "123e4567-e89b-12d3-a456-426614174000"

// memRepo mimics push_tokens closely enough to check registry behaviour.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Token
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[int64]model.Token)}
}

func (m *memRepo) GetExisting(_ context.Context, service string, value []byte) (*model.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found *model.Token
	for _, t := range m.rows {
		if t.Service == service && string(t.Value) == string(value) && (found == nil || t.ID < found.ID) {
			t := t
			found = &t
		}
	}

	return found, nil
}

func (m *memRepo) UpdateLastActiveAndBind(_ context.Context, id int64, userID int64, guestID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.rows[id]
	t.LastActive = at
	if userID > 0 {
		t.UserID = userID
	}
	if guestID != "" {
		t.GuestID = guestID
	}
	m.rows[id] = t

	return nil
}

func (m *memRepo) CountForUser(_ context.Context, userID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.forUser(userID)), nil
}

func (m *memRepo) forUser(userID int64) []model.Token {
	var out []model.Token
	for _, t := range m.rows {
		if t.UserID == userID {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastActive.Equal(out[j].LastActive) {
			return out[i].LastActive.Before(out[j].LastActive)
		}
		return out[i].ID < out[j].ID
	})

	return out
}

func (m *memRepo) DeleteOldestForUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if tokens := m.forUser(userID); len(tokens) > 0 {
		delete(m.rows, tokens[0].ID)
	}

	return nil
}

var errUniqueViolation = errors.New("duplicate key value violates unique constraint")

// Insert enforces the (user_id, service, token) and (guest_id, service, token)
// constraints of push_tokens.
func (m *memRepo) Insert(_ context.Context, t model.Token) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.rows {
		if r.Service != t.Service || string(r.Value) != string(t.Value) {
			continue
		}
		if (t.UserID > 0 && r.UserID == t.UserID) || (t.GuestID != "" && r.GuestID == t.GuestID) {
			return fmt.Errorf("%w: %w", tokenrepo.ErrInsert, errUniqueViolation)
		}
	}

	m.nextID++
	t.ID = m.nextID
	m.rows[t.ID] = t

	return nil
}

func (m *memRepo) MigrateGuestToUser(_ context.Context, userID int64, guestID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, t := range m.rows {
		if t.GuestID == guestID {
			t.UserID, t.GuestID = userID, ""
			m.rows[id] = t
		}
	}

	return nil
}

func (m *memRepo) DeleteByUUIDForUser(_ context.Context, id uuid.UUID, userID int64) error {
	return m.deleteWhere(func(t model.Token) bool { return t.UUID == id && t.UserID == userID })
}

func (m *memRepo) DeleteByUUIDForGuest(_ context.Context, id uuid.UUID, guestID string) error {
	return m.deleteWhere(func(t model.Token) bool { return t.UUID == id && t.GuestID == guestID })
}

func (m *memRepo) DeleteByGuest(_ context.Context, guestID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, t := range m.rows {
		if t.GuestID == guestID {
			delete(m.rows, id)
			n++
		}
	}

	return n, nil
}

func (m *memRepo) deleteWhere(match func(model.Token) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	deleted := false
	for id, t := range m.rows {
		if match(t) {
			delete(m.rows, id)
			deleted = true
		}
	}

	if !deleted {
		return tokenrepo.ErrTokenNotFound
	}

	return nil
}

func (m *memRepo) all() []model.Token {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Token, 0, len(m.rows))
	for _, t := range m.rows {
		out = append(out, t)
	}

	return out
}

func newTestService(repo tokenRepository) *Service {
	svc := NewService(repo, transport.NewRegistry(transporttest.New("fcm"), transporttest.New("apns")), 0)

	clock := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	return svc
}

func TestSubmit_UnknownService(t *testing.T) {
	svc := newTestService(newMemRepo())

	_, err := svc.Submit(context.Background(), SubmitParams{UserID: 1, Service: "webpush", Token: "abc"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSubmit_ValidationErrors(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	_, err := svc.Submit(context.Background(), SubmitParams{UserID: 1, Service: "fcm", Token: "has space"})
	assert.ErrorIs(t, err, transport.ErrInvalidToken)

	_, err = svc.Submit(context.Background(), SubmitParams{GuestID: "not-a-uuid", Service: "fcm", Token: "abc"})
	assert.ErrorIs(t, err, ErrInvalidGuestID)

	_, err = svc.Submit(context.Background(), SubmitParams{UserID: 1, Service: "fcm", Token: "abc", UUID: "zzz"})
	assert.ErrorIs(t, err, ErrInvalidUUID)

	_, err = svc.Submit(context.Background(), SubmitParams{UserID: -4, Service: "fcm", Token: "abc"})
	assert.ErrorIs(t, err, ErrInvalidUserID)

	assert.Empty(t, repo.all())
}

func TestSubmit_Idempotent(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	clientID := uuid.NewString()

	first, err := svc.Submit(context.Background(), SubmitParams{UserID: 7, Service: "fcm", Token: "abc", UUID: clientID})
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), SubmitParams{UserID: 7, Service: "fcm", Token: "abc", UUID: uuid.NewString()})
	require.NoError(t, err)

	assert.Equal(t, clientID, first.String())
	assert.Equal(t, first, second)
	assert.Len(t, repo.all(), 1)
}

func TestSubmit_RotatedTokenKeepsClientUUID(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	clientID := uuid.NewString()

	first, err := svc.Submit(context.Background(), SubmitParams{UserID: 7, Service: "fcm", Token: "old-token", UUID: clientID})
	require.NoError(t, err)

	second, err := svc.Submit(context.Background(), SubmitParams{UserID: 7, Service: "fcm", Token: "new-token", UUID: clientID})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, clientID, second.String())

	rows := repo.all()
	require.Len(t, rows, 2)
	assert.Equal(t, rows[0].UUID, rows[1].UUID)
}

func TestSubmit_GeneratesUUID(t *testing.T) {
	svc := newTestService(newMemRepo())

	id, err := svc.Submit(context.Background(), SubmitParams{GuestID: guestA, Service: "fcm", Token: "abc"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestSubmit_BindsNewOwnerToKnownToken(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	guestUUID, err := svc.Submit(context.Background(), SubmitParams{GuestID: guestA, Service: "fcm", Token: "abc"})
	require.NoError(t, err)

	userUUID, err := svc.Submit(context.Background(), SubmitParams{UserID: 9, Service: "fcm", Token: "abc"})
	require.NoError(t, err)

	assert.Equal(t, guestUUID, userUUID)

	rows := repo.all()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(9), rows[0].UserID)
	assert.Equal(t, guestA, rows[0].GuestID)
}

func TestSubmit_SameRawTokenDifferentService(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)

	a, err := svc.Submit(context.Background(), SubmitParams{UserID: 1, Service: "fcm", Token: "abc"})
	require.NoError(t, err)

	b, err := svc.Submit(context.Background(), SubmitParams{UserID: 1, Service: "apns", Token: "abc"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, repo.all(), 2)
}

func TestSubmit_EvictsOldestAtCapacity(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	var oldest uuid.UUID
	for i := 0; i < DefaultCapacity; i++ {
		service := "fcm"
		if i%2 == 1 {
			service = "apns"
		}

		id, err := svc.Submit(ctx, SubmitParams{UserID: 3, Service: service, Token: uuid.NewString()})
		require.NoError(t, err)

		if i == 0 {
			oldest = id
		}
	}

	// Another user's tokens are never evicted.
	_, err := svc.Submit(ctx, SubmitParams{UserID: 4, Service: "fcm", Token: "other"})
	require.NoError(t, err)

	newest, err := svc.Submit(ctx, SubmitParams{UserID: 3, Service: "fcm", Token: "fresh"})
	require.NoError(t, err)

	count, _ := repo.CountForUser(ctx, 3)
	assert.Equal(t, DefaultCapacity, count)

	uuids := make(map[uuid.UUID]bool)
	for _, tok := range repo.all() {
		uuids[tok.UUID] = true
	}

	assert.False(t, uuids[oldest])
	assert.True(t, uuids[newest])
	assert.Len(t, repo.all(), DefaultCapacity+1)
}

func TestSubmit_RefreshKeepsTokenFromEviction(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo, transport.NewRegistry(transporttest.New("fcm")), 2)

	clock := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	ctx := context.Background()
	first, _ := svc.Submit(ctx, SubmitParams{UserID: 1, Service: "fcm", Token: "a"})
	second, _ := svc.Submit(ctx, SubmitParams{UserID: 1, Service: "fcm", Token: "b"})

	// Touching "a" makes "b" the least recently active.
	_, _ = svc.Submit(ctx, SubmitParams{UserID: 1, Service: "fcm", Token: "a"})
	_, err := svc.Submit(ctx, SubmitParams{UserID: 1, Service: "fcm", Token: "c"})
	require.NoError(t, err)

	uuids := make(map[uuid.UUID]bool)
	for _, tok := range repo.all() {
		uuids[tok.UUID] = true
	}

	assert.True(t, uuids[first])
	assert.False(t, uuids[second])
	assert.Len(t, uuids, 2)
}

func TestMigrateGuestToUser(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitParams{GuestID: guestA, Service: "fcm", Token: "abc"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.MigrateGuestToUser(ctx, 1, "not-a-uuid"), ErrInvalidGuestID)
	assert.ErrorIs(t, svc.MigrateGuestToUser(ctx, 0, guestA), ErrInvalidUserID)
	// Guest syntax is checked before the user id.
	assert.ErrorIs(t, svc.MigrateGuestToUser(ctx, 0, "nope"), ErrInvalidGuestID)
	assert.Equal(t, guestA, repo.all()[0].GuestID)

	require.NoError(t, svc.MigrateGuestToUser(ctx, 1, guestA))

	rows := repo.all()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].UserID)
	assert.Empty(t, rows[0].GuestID)
}

func TestDelete(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	id, err := svc.Submit(ctx, SubmitParams{UserID: 2, Service: "fcm", Token: "abc"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, id, model.UserOwner(3)), tokenrepo.ErrTokenNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, id, model.UserOwner(0)), ErrInvalidOwner)
	assert.ErrorIs(t, svc.Delete(ctx, id, model.GuestOwner("bad")), ErrInvalidGuestID)
	assert.NoError(t, svc.Delete(ctx, id, model.UserOwner(2)))
	assert.Empty(t, repo.all())
}

func TestSubmit_RepositoryFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktokenRepository(ctrl)
	locatorMock := mocks.NewMocktransportLocator(ctrl)
	svc := NewService(repoMock, locatorMock, 0)
	fake := transporttest.New("fcm")

	locatorMock.EXPECT().Locate("fcm").Return(fake, true).Times(2)

	repoMock.EXPECT().GetExisting(gomock.Any(), "fcm", []byte("fake:abc")).Return(nil, nil)
	repoMock.EXPECT().CountForUser(gomock.Any(), int64(5)).Return(0, nil)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(model.Token{})).
		Return(tokenrepo.ErrInsert)

	_, err := svc.Submit(context.Background(), SubmitParams{UserID: 5, Service: "fcm", Token: "abc"})
	assert.ErrorIs(t, err, tokenrepo.ErrInsert)

	lookupErr := errors.New("connection reset")
	repoMock.EXPECT().GetExisting(gomock.Any(), "fcm", []byte("fake:abc")).Return(nil, lookupErr)

	_, err = svc.Submit(context.Background(), SubmitParams{UserID: 5, Service: "fcm", Token: "abc"})
	assert.ErrorIs(t, err, lookupErr)
}

func TestSubmit_GuestOnlySkipsCapacityCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoMock := mocks.NewMocktokenRepository(ctrl)
	svc := NewService(repoMock, transport.NewRegistry(transporttest.New("fcm")), 0)

	repoMock.EXPECT().GetExisting(gomock.Any(), "fcm", gomock.Any()).Return(nil, nil)
	repoMock.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tok model.Token) error {
			assert.Equal(t, guestA, tok.GuestID)
			assert.False(t, tok.HasUser())
			return nil
		},
	)

	_, err := svc.Submit(context.Background(), SubmitParams{GuestID: guestA, Service: "fcm", Token: "abc"})
	assert.NoError(t, err)
}

func TestForgetGuest(t *testing.T) {
	repo := newMemRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Submit(ctx, SubmitParams{GuestID: guestA, Service: "fcm", Token: "a"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitParams{GuestID: guestA, Service: "apns", Token: "b"})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, SubmitParams{UserID: 3, Service: "fcm", Token: "c"})
	require.NoError(t, err)

	n, err := svc.ForgetGuest(ctx, guestA)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rows := repo.all()
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].UserID)

	_, err = svc.ForgetGuest(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidGuestID)
}

func TestForgetGuest_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMocktokenRepository(ctrl)
	svc := NewService(repoMock, transport.NewRegistry(), 0)

	repoMock.EXPECT().DeleteByGuest(gomock.Any(), guestA).Return(int64(0), tokenrepo.ErrDelete)

	_, err := svc.ForgetGuest(context.Background(), guestA)
	assert.ErrorIs(t, err, tokenrepo.ErrDelete)
}
