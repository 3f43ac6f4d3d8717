// Package transport defines the delivery backend contract and the registry
// that maps a service id to its transport.
package transport

import (
	"context"
	"errors"

	"github.com/aliskhannn/push-notifier/internal/model"
)

// ErrInvalidToken is returned by ValidateToken implementations.
var ErrInvalidToken = errors.New("invalid push token")

// Message is the provider-neutral content of one send call.
type Message struct {
	Title    string
	Body     string
	Subtitle string
	ImageURL string
	URL      string
	Badge    *int
	Data     map[string]string
}

// SendOutcome splits raw tokens by delivery result. Tokens in neither list
// failed transiently and are left untouched.
type SendOutcome struct {
	Delivered []string
	Invalid   []string
}

// Result carries token row ids to reconcile after a scheduled delivery.
type Result struct {
	SuccessIDs []int64
	InvalidIDs []int64
}

// Transport is a delivery backend for one push network.
type Transport interface {
	// ID is the service id tokens are stored under.
	ID() string
	// SupportsSubtitle tells the coordinator whether the envelope may keep a separate subtitle.
	SupportsSubtitle() bool
	ValidateToken(raw string) error
	EncodeToken(raw string) []byte
	DecodeToken(encoded []byte) string
	// Send delivers msg to raw tokens. On error the outcome still reports
	// the tokens that were handled before the failure.
	Send(ctx context.Context, tokens []string, msg Message) (SendOutcome, error)
	// HandleScheduledEvent may return a partial Result together with an error.
	HandleScheduledEvent(ctx context.Context, tokens []model.Token, env model.Envelope, objectType string, objectID int64) (Result, error)
}

// MessageFromEnvelope converts an envelope into a send message.
func MessageFromEnvelope(env model.Envelope) Message {
	return Message{
		Title:    env.Title,
		Body:     env.Body,
		Subtitle: env.Subtitle,
		ImageURL: env.ImageURL,
		URL:      env.URL,
		Badge:    env.Badge,
		Data:     env.Data,
	}
}
