// Package content talks to the external CMS that owns notifiable objects.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/push-notifier/internal/model"
)

var ErrUnexpectedStatus = errors.New("content source: unexpected status")

// Client is an HTTP client for the content source.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a content source client. A zero timeout defaults to 5s.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type permissionResponse struct {
	Allowed bool `json:"allowed"`
}

// GetContent fetches an object. It returns nil when the source does not know it.
func (c *Client) GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error) {
	endpoint := fmt.Sprintf("%s/content/%s/%d", c.baseURL, url.PathEscape(objectType), objectID)

	resp, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out model.Content
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	return &out, nil
}

// UserCan asks the source whether userID may perform action on the object.
// User 0 stands for an anonymous visitor.
func (c *Client) UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error) {
	q := url.Values{}
	q.Set("user_id", strconv.FormatInt(userID, 10))
	q.Set("action", action)
	q.Set("object_type", objectType)
	q.Set("object_id", strconv.FormatInt(objectID, 10))

	resp, err := c.get(ctx, c.baseURL+"/permissions?"+q.Encode())
	if err != nil {
		return false, fmt.Errorf("check permission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var out permissionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("decode permission: %w", err)
	}

	return out.Allowed, nil
}

func (c *Client) get(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	return c.client.Do(req)
}
