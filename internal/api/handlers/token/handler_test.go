package token

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/push-notifier/internal/api/dto"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
	mocks "github.com/aliskhannn/push-notifier/internal/mocks/api/handlers/token"
	"github.com/aliskhannn/push-notifier/internal/model"
	tokenrepo "github.com/aliskhannn/push-notifier/internal/repository/token"
	tokensvc "github.com/aliskhannn/push-notifier/internal/service/token"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

const guest = "123e4567-e89b-12d3-a456-426614174000"

func setupHandler(t *testing.T) (*Handler, *mocks.MocktokenService) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMocktokenService(ctrl)
	return NewHandler(mockService, validator.New()), mockService
}

func submitContext(t *testing.T, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	bodyBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/push/tokens", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestHandler_Submit_Success(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := submitContext(t, dto.SubmitTokenRequest{Service: "telegram", Token: "12345", GuestID: guest})
	c.Set(middlewares.UserIDKey, int64(9))

	id := uuid.New()
	mockService.EXPECT().
		Submit(gomock.Any(), tokensvc.SubmitParams{UserID: 9, GuestID: guest, Service: "telegram", Token: "12345"}).
		Return(id, nil)

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"result":{"uuid":%q}}`, id), w.Body.String())
}

func TestHandler_Submit_GuestFromHeader(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := submitContext(t, dto.SubmitTokenRequest{Service: "telegram", Token: "12345"})
	c.Request.Header.Set(middlewares.GuestIDHeader, guest)

	mockService.EXPECT().
		Submit(gomock.Any(), tokensvc.SubmitParams{GuestID: guest, Service: "telegram", Token: "12345"}).
		Return(uuid.New(), nil)

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Submit_WithoutOwner(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := submitContext(t, dto.SubmitTokenRequest{Service: "telegram", Token: "12345"})
	mockService.EXPECT().
		Submit(gomock.Any(), tokensvc.SubmitParams{Service: "telegram", Token: "12345"}).
		Return(uuid.New(), nil)

	handler.Submit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_Submit_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unknown service", fmt.Errorf("%w: webpush", tokensvc.ErrServiceNotFound)},
		{"bad token", fmt.Errorf("%w: malformed", transport.ErrInvalidToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockService := setupHandler(t)

			c, w := submitContext(t, dto.SubmitTokenRequest{Service: "webpush", Token: "x", GuestID: guest})
			mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uuid.Nil, tt.err)

			handler.Submit(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Submit_BadBody(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := submitContext(t, dto.SubmitTokenRequest{Token: "x", GuestID: guest})
	handler.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = submitContext(t, dto.SubmitTokenRequest{Service: "fcm", Token: "x", GuestID: "not-a-uuid"})
	handler.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Submit_InternalError(t *testing.T) {
	handler, mockService := setupHandler(t)

	c, w := submitContext(t, dto.SubmitTokenRequest{Service: "fcm", Token: "x", GuestID: guest})
	mockService.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(uuid.Nil, tokenrepo.ErrInsert)

	handler.Submit(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func deleteContext(id string) (*gin.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodDelete, "/api/push/tokens/"+id, nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "uuid", Value: id}}
	return c, w
}

func TestHandler_Delete(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		handler, mockService := setupHandler(t)
		id := uuid.New()

		c, w := deleteContext(id.String())
		c.Set(middlewares.UserIDKey, int64(4))
		mockService.EXPECT().Delete(gomock.Any(), id, model.UserOwner(4)).Return(nil)

		handler.Delete(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("guest not found", func(t *testing.T) {
		handler, mockService := setupHandler(t)
		id := uuid.New()

		c, w := deleteContext(id.String())
		c.Request.Header.Set(middlewares.GuestIDHeader, guest)
		mockService.EXPECT().Delete(gomock.Any(), id, model.GuestOwner(guest)).
			Return(fmt.Errorf("delete guest token: %w", tokenrepo.ErrTokenNotFound))

		handler.Delete(c)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad uuid", func(t *testing.T) {
		handler, _ := setupHandler(t)

		c, w := deleteContext("nope")
		handler.Delete(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		handler, _ := setupHandler(t)

		c, w := deleteContext(uuid.NewString())
		handler.Delete(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Forget(t *testing.T) {
	newContext := func() (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/api/push/tokens", nil)
		return c, w
	}

	t.Run("guest", func(t *testing.T) {
		handler, mockService := setupHandler(t)

		c, w := newContext()
		c.Request.Header.Set(middlewares.GuestIDHeader, guest)
		mockService.EXPECT().ForgetGuest(gomock.Any(), guest).Return(int64(2), nil)

		handler.Forget(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":{"deleted":2}}`, w.Body.String())
	})

	t.Run("no guest", func(t *testing.T) {
		handler, _ := setupHandler(t)

		c, w := newContext()
		handler.Forget(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed guest", func(t *testing.T) {
		handler, mockService := setupHandler(t)

		c, w := newContext()
		c.Request.Header.Set(middlewares.GuestIDHeader, "nope")
		mockService.EXPECT().ForgetGuest(gomock.Any(), "nope").Return(int64(0), tokensvc.ErrInvalidGuestID)

		handler.Forget(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("repository failure", func(t *testing.T) {
		handler, mockService := setupHandler(t)

		c, w := newContext()
		c.Request.Header.Set(middlewares.GuestIDHeader, guest)
		mockService.EXPECT().ForgetGuest(gomock.Any(), guest).Return(int64(0), tokenrepo.ErrDelete)

		handler.Forget(c)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
