package system

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/respond"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/system/mock.go -package=mocks
type transportLister interface {
	IDs() []string
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type Handler struct {
	transports transportLister
	checks     map[string]Pinger
	timeout    time.Duration
}

// NewHandler creates a handler reporting the registered transports and
// the health of every named check.
func NewHandler(transports transportLister, checks map[string]Pinger) *Handler {
	return &Handler{transports: transports, checks: checks, timeout: 2 * time.Second}
}

// Transports handles GET /transports.
func (h *Handler) Transports(c *ginext.Context) {
	respond.OK(c.Writer, h.transports.IDs())
}

// Health handles GET /health.
func (h *Handler) Health(c *ginext.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := make(map[string]string, len(h.checks))
	healthy := true

	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			zlog.Logger.Warn().Err(err).Str("check", name).Msg("health check failed")
			status[name] = err.Error()
			healthy = false
			continue
		}

		status[name] = "ok"
	}

	if !healthy {
		respond.JSON(c.Writer, http.StatusServiceUnavailable, map[string]any{
			"error":  fmt.Sprintf("%d of %d checks failed", countFailed(status), len(status)),
			"checks": status,
		})
		return
	}

	respond.OK(c.Writer, status)
}

func countFailed(status map[string]string) int {
	n := 0
	for _, s := range status {
		if s != "ok" {
			n++
		}
	}

	return n
}
