package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// UserIDKey is the context key holding the authenticated user id (int64).
	UserIDKey     = "user_id"
	GuestIDHeader = "X-Guest-ID"
)

var (
	ErrMissingToken = errors.New("authorization required")
	ErrInvalidToken = errors.New("invalid authorization token")
)

// Claims carries the authenticated user of a request.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func parse(secret, header string) (int64, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return 0, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID <= 0 {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// OptionalAuth stores the user id of a valid bearer token in the context.
// Requests without an Authorization header pass through as anonymous.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || secret == "" {
			c.Next()
			return
		}

		userID, err := parse(secret, header)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// RequireAuth rejects requests that OptionalAuth did not authenticate.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrMissingToken.Error()})
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id, or 0.
func UserID(c *gin.Context) int64 {
	id, ok := c.Get(UserIDKey)
	if !ok {
		return 0
	}

	userID, _ := id.(int64)
	return userID
}

// GuestID returns the guest identity sent by the client, if any.
func GuestID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(GuestIDHeader))
}
