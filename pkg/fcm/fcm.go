// Package fcm wraps Firebase Cloud Messaging multicast delivery.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MaxMulticastTokens is the FCM limit of tokens per multicast request.
const MaxMulticastTokens = 500

type multicaster interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// Client wraps Firebase Cloud Messaging functionality.
type Client struct {
	messaging multicaster
}

// NewClient creates a new FCM client using the provided credentials file.
// An empty path falls back to application default credentials.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("get messaging client: %w", err)
	}

	return &Client{messaging: messagingClient}, nil
}

// NotificationData contains the data to send in a push notification.
type NotificationData struct {
	Title    string
	Body     string
	ImageURL string            // optional notification image
	Data     map[string]string // custom data payload
	Badge    *int              // iOS badge count
}

// Delivery splits tokens by result. Tokens in neither list failed transiently.
type Delivery struct {
	Delivered []string
	Invalid   []string
}

// SendToDevices sends a notification to tokens, batching by MaxMulticastTokens.
// When a batch fails, the returned Delivery holds the results of the
// batches sent before it.
func (c *Client) SendToDevices(ctx context.Context, tokens []string, n NotificationData) (Delivery, error) {
	var d Delivery

	for start := 0; start < len(tokens); start += MaxMulticastTokens {
		end := min(start+MaxMulticastTokens, len(tokens))
		chunk := tokens[start:end]

		resp, err := c.messaging.SendEachForMulticast(ctx, multicast(chunk, n))
		if err != nil {
			return d, fmt.Errorf("send FCM multicast message: %w", err)
		}

		part := classify(chunk, resp)
		d.Delivered = append(d.Delivered, part.Delivered...)
		d.Invalid = append(d.Invalid, part.Invalid...)
	}

	return d, nil
}

func multicast(tokens []string, n NotificationData) *messaging.MulticastMessage {
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title:    n.Title,
			Body:     n.Body,
			ImageURL: n.ImageURL,
		},
		Data: n.Data,
	}

	if n.Badge != nil {
		msg.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Badge: n.Badge},
			},
		}
	}

	return msg
}

func classify(tokens []string, resp *messaging.BatchResponse) Delivery {
	var d Delivery
	if resp == nil {
		return d
	}

	for i, r := range resp.Responses {
		if i >= len(tokens) {
			break
		}

		switch {
		case r.Success:
			d.Delivered = append(d.Delivered, tokens[i])
		case permanent(r.Error):
			d.Invalid = append(d.Invalid, tokens[i])
		}
	}

	return d
}

// permanent reports errors that condemn the token itself. INVALID_ARGUMENT
// is not one of them: FCM also returns it for a bad message body.
func permanent(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err)
}
