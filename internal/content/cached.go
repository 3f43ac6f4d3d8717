package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
)

//go:generate mockgen -source=cached.go -destination=../mocks/content/mock_cached.go -package=mocks
type source interface {
	GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error)
	UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Cached reads content through a Redis cache. Permission checks are
// always forwarded to the source.
type Cached struct {
	src      source
	cache    cache
	strategy retry.Strategy
}

func NewCached(src source, cache cache, strategy retry.Strategy) *Cached {
	return &Cached{src: src, cache: cache, strategy: strategy}
}

func cacheKey(objectType string, objectID int64) string {
	return "push:content:" + objectType + ":" + strconv.FormatInt(objectID, 10)
}

// GetContent returns cached content or loads it from the source.
// Cache failures are logged and fall through to the source.
func (c *Cached) GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error) {
	key := cacheKey(objectType, objectID)

	raw, err := c.cache.GetWithRetry(ctx, c.strategy, key)
	if err == nil {
		var out model.Content
		if jerr := json.Unmarshal([]byte(raw), &out); jerr == nil {
			return &out, nil
		}

		zlog.Logger.Warn().Str("key", key).Msg("dropping undecodable cached content")
	} else if !errors.Is(err, redis.Nil) {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to read content cache")
	}

	content, err := c.src.GetContent(ctx, objectType, objectID)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	if content == nil {
		return nil, nil
	}

	data, err := json.Marshal(content)
	if err != nil {
		return content, nil
	}

	if err := c.cache.SetWithRetry(ctx, c.strategy, key, string(data)); err != nil {
		zlog.Logger.Warn().Err(err).Str("key", key).Msg("failed to cache content")
	}

	return content, nil
}

func (c *Cached) UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error) {
	return c.src.UserCan(ctx, userID, action, objectType, objectID)
}
