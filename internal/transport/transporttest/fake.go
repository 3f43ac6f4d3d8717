// Package transporttest provides an in-memory Transport for tests.
package transporttest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/transport"
)

// ScheduledCall records one HandleScheduledEvent invocation.
type ScheduledCall struct {
	Tokens     []model.Token
	Envelope   model.Envelope
	ObjectType string
	ObjectID   int64
}

// Fake is a configurable Transport. Tokens are stored as "fake:" + raw.
type Fake struct {
	Service  string
	Subtitle bool

	// Result is returned from HandleScheduledEvent when Scheduled is nil.
	Result transport.Result
	// Err is returned from HandleScheduledEvent.
	Err error
	// Outcome and SendErr are returned from Send.
	Outcome transport.SendOutcome
	SendErr error

	mu        sync.Mutex
	calls     []ScheduledCall
	sendCalls [][]string
}

// New returns a fake registered under service.
func New(service string) *Fake {
	return &Fake{Service: service}
}

func (f *Fake) ID() string { return f.Service }

func (f *Fake) SupportsSubtitle() bool { return f.Subtitle }

func (f *Fake) ValidateToken(raw string) error {
	if raw == "" || strings.ContainsAny(raw, " \t\n") {
		return fmt.Errorf("%w: %q", transport.ErrInvalidToken, raw)
	}

	return nil
}

func (f *Fake) EncodeToken(raw string) []byte { return []byte("fake:" + raw) }

func (f *Fake) DecodeToken(encoded []byte) string {
	return strings.TrimPrefix(string(encoded), "fake:")
}

func (f *Fake) Send(_ context.Context, tokens []string, _ transport.Message) (transport.SendOutcome, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sendCalls = append(f.sendCalls, append([]string(nil), tokens...))

	return f.Outcome, f.SendErr
}

func (f *Fake) HandleScheduledEvent(
	_ context.Context,
	tokens []model.Token,
	env model.Envelope,
	objectType string,
	objectID int64,
) (transport.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, ScheduledCall{
		Tokens:     append([]model.Token(nil), tokens...),
		Envelope:   env,
		ObjectType: objectType,
		ObjectID:   objectID,
	})

	return f.Result, f.Err
}

// Calls returns the recorded HandleScheduledEvent invocations.
func (f *Fake) Calls() []ScheduledCall {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]ScheduledCall(nil), f.calls...)
}

// SendCalls returns the token lists passed to Send.
func (f *Fake) SendCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([][]string(nil), f.sendCalls...)
}
