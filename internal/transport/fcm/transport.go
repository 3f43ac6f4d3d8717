package fcm

import (
	"context"
	"fmt"
	"regexp"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
	"github.com/aliskhannn/push-notifier/pkg/fcm"
)

// ServiceID is the id FCM tokens are stored under.
const ServiceID = "fcm"

const maxTokenLength = 4096

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_:\-]+$`)

type sender interface {
	SendToDevices(ctx context.Context, tokens []string, n fcm.NotificationData) (fcm.Delivery, error)
}

// Transport delivers notifications through Firebase Cloud Messaging.
type Transport struct {
	client sender
	viewer transport.Viewer
}

// New creates an FCM transport. viewer may be nil to skip permission checks.
func New(client sender, viewer transport.Viewer) *Transport {
	return &Transport{client: client, viewer: viewer}
}

func (t *Transport) ID() string { return ServiceID }

// SupportsSubtitle is false: FCM notifications have no subtitle field.
func (t *Transport) SupportsSubtitle() bool { return false }

func (t *Transport) ValidateToken(raw string) error {
	if raw == "" || len(raw) > maxTokenLength || !tokenPattern.MatchString(raw) {
		return fmt.Errorf("%w: malformed fcm registration token", transport.ErrInvalidToken)
	}

	return nil
}

func (t *Transport) EncodeToken(raw string) []byte { return []byte(raw) }

func (t *Transport) DecodeToken(encoded []byte) string { return string(encoded) }

func (t *Transport) Send(ctx context.Context, tokens []string, msg transport.Message) (transport.SendOutcome, error) {
	if len(tokens) == 0 {
		return transport.SendOutcome{}, nil
	}

	data := make(map[string]string, len(msg.Data)+1)
	for k, v := range msg.Data {
		data[k] = v
	}
	if msg.URL != "" {
		data["url"] = msg.URL
	}

	title := msg.Title
	if msg.Subtitle != "" {
		title = msg.Subtitle + ": " + msg.Title
	}

	d, err := t.client.SendToDevices(ctx, tokens, fcm.NotificationData{
		Title:    title,
		Body:     msg.Body,
		ImageURL: msg.ImageURL,
		Data:     data,
		Badge:    msg.Badge,
	})
	out := transport.SendOutcome{Delivered: d.Delivered, Invalid: d.Invalid}
	if err != nil {
		return out, err
	}

	return out, nil
}

func (t *Transport) HandleScheduledEvent(
	ctx context.Context,
	tokens []model.Token,
	env model.Envelope,
	objectType string,
	objectID int64,
) (transport.Result, error) {
	return transport.Dispatch(ctx, t, t.viewer, tokens, env, objectType, objectID)
}
