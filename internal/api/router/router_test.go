package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/push-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/migrate"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/subscription"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/system"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/token"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
	eventmocks "github.com/aliskhannn/push-notifier/internal/mocks/api/handlers/event"
	migratemocks "github.com/aliskhannn/push-notifier/internal/mocks/api/handlers/migrate"
	submocks "github.com/aliskhannn/push-notifier/internal/mocks/api/handlers/subscription"
	tokenmocks "github.com/aliskhannn/push-notifier/internal/mocks/api/handlers/token"
	"github.com/aliskhannn/push-notifier/internal/transport"
	"github.com/aliskhannn/push-notifier/internal/transport/transporttest"
)

const secret = "router-secret"

func signJWT(t *testing.T, userID int64) string {
	t.Helper()

	claims := middlewares.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute))},
		UserID:           userID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

type fixture struct {
	engine   http.Handler
	tokenSvc *tokenmocks.MocktokenService
	tokens   *migratemocks.MockguestMigrator
	subs     *migratemocks.MockguestMigrator
	producer *eventmocks.MockeventProducer
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	v := validator.New()

	tokens := migratemocks.NewMockguestMigrator(ctrl)
	subs := migratemocks.NewMockguestMigrator(ctrl)
	producer := eventmocks.NewMockeventProducer(ctrl)
	tokenSvc := tokenmocks.NewMocktokenService(ctrl)

	e := New(Handlers{
		Token:        token.NewHandler(tokenSvc, v),
		Subscription: subscription.NewHandler(submocks.NewMocksubscriptionService(ctrl), v),
		Migrate:      migrate.NewHandler(tokens, subs, v),
		Event:        event.NewHandler(producer, nil, retry.Strategy{Attempts: 1}, v),
		System:       system.NewHandler(transport.NewRegistry(transporttest.New("fcm")), nil),
	}, Options{JWTSecret: secret, EventAPIKey: "cms"})

	return fixture{engine: e, tokenSvc: tokenSvc, tokens: tokens, subs: subs, producer: producer}
}

func TestRouter_Transports(t *testing.T) {
	f := newFixture(t)

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/push/transports", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":["fcm"]}`, w.Body.String())
}

func TestRouter_MigrateRequiresAuth(t *testing.T) {
	f := newFixture(t)
	body := `{"guest_id":"123e4567-e89b-12d3-a456-426614174000"}`

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/push/migrate", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	bearer := signJWT(t, 3)

	f.tokens.EXPECT().MigrateGuestToUser(gomock.Any(), int64(3), gomock.Any()).Return(nil)
	f.subs.EXPECT().MigrateGuestToUser(gomock.Any(), int64(3), gomock.Any()).Return(nil)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/push/migrate", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+bearer)
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_EventsRequireAPIKey(t *testing.T) {
	f := newFixture(t)
	body := `{"object_type":"reply","object_id":1}`

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/push/events", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	f.producer.EXPECT().HandleContentInsertion(gomock.Any(), gomock.Any()).Return(false, nil)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/push/events", strings.NewReader(body))
	req.Header.Set(middlewares.APIKeyHeader, "cms")
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ForgetGuestTokens(t *testing.T) {
	f := newFixture(t)
	guest := "123e4567-e89b-12d3-a456-426614174000"

	f.tokenSvc.EXPECT().ForgetGuest(gomock.Any(), guest).Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/push/tokens", nil)
	req.Header.Set(middlewares.GuestIDHeader, guest)
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":{"deleted":1}}`, w.Body.String())
}
