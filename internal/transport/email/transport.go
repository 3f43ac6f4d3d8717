package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

// ServiceID is the id e-mail address tokens are stored under.
const ServiceID = "email"

type sender interface {
	SendEach(to []string, subject, body string) (map[string]error, error)
}

// Transport delivers notifications as plain-text e-mail. The token is an address.
type Transport struct {
	client sender
	viewer transport.Viewer
}

func New(client sender, viewer transport.Viewer) *Transport {
	return &Transport{client: client, viewer: viewer}
}

func (t *Transport) ID() string { return ServiceID }

func (t *Transport) SupportsSubtitle() bool { return true }

func (t *Transport) ValidateToken(raw string) error {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return fmt.Errorf("%w: malformed e-mail address", transport.ErrInvalidToken)
	}

	return nil
}

// EncodeToken lowercases the address so the same mailbox dedups.
func (t *Transport) EncodeToken(raw string) []byte { return []byte(strings.ToLower(raw)) }

func (t *Transport) DecodeToken(encoded []byte) string { return string(encoded) }

// Send mails every address. SMTP failures are treated as transient.
func (t *Transport) Send(_ context.Context, tokens []string, msg transport.Message) (transport.SendOutcome, error) {
	var out transport.SendOutcome
	if len(tokens) == 0 {
		return out, nil
	}

	subject := msg.Title
	if msg.Subtitle != "" {
		subject = msg.Subtitle + ": " + msg.Title
	}

	body := msg.Body
	if msg.URL != "" {
		body += "\n\n" + msg.URL
	}

	failed, err := t.client.SendEach(tokens, subject, body)
	if err != nil {
		return out, fmt.Errorf("dial smtp: %w", err)
	}

	for _, addr := range tokens {
		if ferr, ok := failed[addr]; ok {
			zlog.Logger.Warn().Err(ferr).Msg("email delivery failed")
			continue
		}

		out.Delivered = append(out.Delivered, addr)
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
