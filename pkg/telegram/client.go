// Package telegram provides a minimal Telegram Bot API client for sending messages.
//
// It is used by the telegram push transport, where the device token is a chat id.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.telegram.org"

// APIError is returned when the Bot API answers with a non-200 status.
type APIError struct {
	StatusCode  int    // HTTP status returned by the API
	Description string // description field from the response body
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram API error: %d %s", e.StatusCode, e.Description)
}

// IsChatUnreachable reports whether err means the chat can never receive
// messages from this bot (deleted chat, bot blocked or kicked).
func IsChatUnreachable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.StatusCode {
	case http.StatusForbidden:
		return true
	case http.StatusBadRequest:
		return strings.Contains(strings.ToLower(apiErr.Description), "chat not found")
	default:
		return false
	}
}

// Client represents a Telegram client used to send notifications.
type Client struct {
	token   string       // bot token for authentication
	baseURL string       // API root, overridable for tests
	client  *http.Client // HTTP client used to make requests
}

// NewClient creates a new Telegram Client instance with the given bot token.
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// WithBaseURL returns a copy of c talking to baseURL instead of the public API.
func (c *Client) WithBaseURL(baseURL string) *Client {
	cp := *c
	cp.baseURL = strings.TrimRight(baseURL, "/")
	return &cp
}

// sendMessageRequest represents the payload for the Telegram sendMessage API.
type sendMessageRequest struct {
	ChatID string `json:"chat_id"` // chat id to send message to
	Text   string `json:"text"`    // message text
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send sends a message to the specified Telegram chat id.
//
// It returns an *APIError if the API responds with a non-200 status.
func (c *Client) Send(ctx context.Context, to string, msg string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)

	body, err := json.Marshal(sendMessageRequest{ChatID: to, Text: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		// the request URL carries the bot token
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var out apiResponse
		_ = json.NewDecoder(resp.Body).Decode(&out)

		return &APIError{StatusCode: resp.StatusCode, Description: out.Description}
	}

	return nil
}
