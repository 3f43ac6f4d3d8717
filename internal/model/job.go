package model

import "time"

// JobStatus is the lease state of a queued notification job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
)

// Payload is the notification data stored with a queued job.
//
// UserID and GuestID identify the owner whose action produced the event;
// their devices are excluded from delivery.
type Payload struct {
	ObjectType string `json:"object_type"`
	ObjectID   int64  `json:"object_id"`
	UserID     int64  `json:"user_id,omitempty"`
	GuestID    string `json:"guest_id,omitempty"`
}

// Job is a notification job owned by the push queue.
type Job struct {
	ID        int64     `json:"id"`         // queue row id
	Payload   Payload   `json:"payload"`    // what to notify about
	CreatedAt time.Time `json:"created_at"` // enqueue time, drives ordering
	Status    JobStatus `json:"status"`     // pending or processing
}

// ContentEvent is emitted by a content producer when an object is created.
type ContentEvent struct {
	ObjectType string `json:"object_type" validate:"required"`
	ObjectID   int64  `json:"object_id" validate:"required,gt=0"`
	UserID     int64  `json:"user_id,omitempty"`
	GuestID    string `json:"guest_id,omitempty"`
}
