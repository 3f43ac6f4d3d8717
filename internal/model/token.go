package model

import (
	"time"

	"github.com/google/uuid"
)

// Token is a registered device token.
//
// A row may be bound to a user, a guest, or both at once when a device
// is shared between a guest session and a signed-in account.
type Token struct {
	ID         int64     `json:"id"`
	UUID       uuid.UUID `json:"uuid"`     // client-visible identifier, never changes
	UserID     int64     `json:"user_id"`  // 0 when not bound to a user
	GuestID    string    `json:"guest_id"` // empty when not bound to a guest
	Service    string    `json:"service"`  // transport id
	Value      []byte    `json:"-"`        // token as encoded by the transport
	LastActive time.Time `json:"last_active"`
}

func (t Token) HasUser() bool { return t.UserID > 0 }

func (t Token) HasGuest() bool { return t.GuestID != "" }

// Subscription links an owner to an object they want notifications for.
type Subscription struct {
	ID         int64  `json:"id"`
	Owner      Owner  `json:"-"`
	ObjectType string `json:"object_type"`
	ObjectID   int64  `json:"object_id"`
}
