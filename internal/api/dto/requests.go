package dto

// SubmitTokenRequest registers a device token.
type SubmitTokenRequest struct {
	Service string `json:"service" validate:"required"`
	Token   string `json:"token" validate:"required"`
	UUID    string `json:"uuid" validate:"omitempty,uuid"`
	GuestID string `json:"guest_id" validate:"omitempty,uuid"`
}

// SubmitTokenResponse carries the stable client identifier of the device.
type SubmitTokenResponse struct {
	UUID string `json:"uuid"`
}

// ForgetGuestResponse reports how many guest tokens were removed.
type ForgetGuestResponse struct {
	Deleted int64 `json:"deleted"`
}

// SubscriptionRequest identifies the subscribed object.
type SubscriptionRequest struct {
	ObjectType string `json:"object_type" validate:"required"`
	ObjectID   int64  `json:"object_id" validate:"required,gt=0"`
}

// MigrateRequest names the guest being claimed by the signed-in user.
type MigrateRequest struct {
	GuestID string `json:"guest_id" validate:"required,uuid"`
}

// EventResponse reports whether a content event produced a delivery job.
type EventResponse struct {
	Enqueued bool `json:"enqueued"`
}
