package model

import (
	"fmt"
	"regexp"
	"strconv"
)

var guestIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidGuestID reports whether s is a canonical textual UUID.
func ValidGuestID(s string) bool {
	return guestIDPattern.MatchString(s)
}

// OwnerKind tells which identity an Owner carries.
type OwnerKind uint8

const (
	OwnerUnbound OwnerKind = iota
	OwnerUser
	OwnerGuest
)

// Owner is either an authenticated user, a guest or nobody.
type Owner struct {
	kind    OwnerKind
	userID  int64
	guestID string
}

// UserOwner returns an owner bound to a user. Non-positive ids yield an unbound owner.
func UserOwner(id int64) Owner {
	if id <= 0 {
		return Owner{}
	}

	return Owner{kind: OwnerUser, userID: id}
}

// GuestOwner returns an owner bound to a guest. An empty id yields an unbound owner.
func GuestOwner(id string) Owner {
	if id == "" {
		return Owner{}
	}

	return Owner{kind: OwnerGuest, guestID: id}
}

// OwnerFrom prefers the user identity over the guest one.
func OwnerFrom(userID int64, guestID string) Owner {
	if userID > 0 {
		return UserOwner(userID)
	}

	return GuestOwner(guestID)
}

func (o Owner) Kind() OwnerKind { return o.kind }

func (o Owner) IsUnbound() bool { return o.kind == OwnerUnbound }

// UserID returns the user id and true for user owners.
func (o Owner) UserID() (int64, bool) {
	return o.userID, o.kind == OwnerUser
}

// GuestID returns the guest id and true for guest owners.
func (o Owner) GuestID() (string, bool) {
	return o.guestID, o.kind == OwnerGuest
}

func (o Owner) String() string {
	switch o.kind {
	case OwnerUser:
		return "user:" + strconv.FormatInt(o.userID, 10)
	case OwnerGuest:
		return "guest:" + o.guestID
	default:
		return "unbound"
	}
}

// GoString keeps %#v output readable in test failures.
func (o Owner) GoString() string {
	return fmt.Sprintf("model.Owner(%s)", o.String())
}
