package telegram

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
	"github.com/aliskhannn/push-notifier/pkg/telegram"
)

// ServiceID is the id Telegram chat tokens are stored under.
const ServiceID = "telegram"

var chatPattern = regexp.MustCompile(`^(-?[0-9]{1,20}|@[A-Za-z][A-Za-z0-9_]{4,31})$`)

type sender interface {
	Send(ctx context.Context, to string, msg string) error
}

// Transport delivers notifications as Telegram bot messages. The token is a chat id.
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
	if !chatPattern.MatchString(raw) {
		return fmt.Errorf("%w: malformed telegram chat id", transport.ErrInvalidToken)
	}

	return nil
}

func (t *Transport) EncodeToken(raw string) []byte { return []byte(raw) }

func (t *Transport) DecodeToken(encoded []byte) string { return string(encoded) }

// Send posts one message per chat. Unreachable chats are reported invalid.
func (t *Transport) Send(ctx context.Context, tokens []string, msg transport.Message) (transport.SendOutcome, error) {
	var out transport.SendOutcome
	text := render(msg)

	for _, chat := range tokens {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		err := t.client.Send(ctx, chat, text)
		switch {
		case err == nil:
			out.Delivered = append(out.Delivered, chat)
		case telegram.IsChatUnreachable(err):
			out.Invalid = append(out.Invalid, chat)
		default:
			zlog.Logger.Warn().Err(err).Str("chat", chat).Msg("telegram delivery failed")
		}
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

func render(msg transport.Message) string {
	lines := make([]string, 0, 4)
	for _, s := range []string{msg.Title, msg.Subtitle, msg.Body, msg.URL} {
		if s != "" {
			lines = append(lines, s)
		}
	}

	return strings.Join(lines, "\n")
}
