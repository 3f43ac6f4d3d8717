package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/push-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/migrate"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/subscription"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/system"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/token"
	"github.com/aliskhannn/push-notifier/internal/middlewares"
)

type Handlers struct {
	Token        *token.Handler
	Subscription *subscription.Handler
	Migrate      *migrate.Handler
	Event        *event.Handler
	System       *system.Handler
}

type Options struct {
	JWTSecret   string
	EventAPIKey string
	CORSOrigins []string
}

func New(h Handlers, opts Options) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(opts.CORSOrigins...))
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", h.System.Health)

	api := e.Group("/api/push")
	api.Use(middlewares.OptionalAuth(opts.JWTSecret))
	{
		api.GET("/transports", h.System.Transports)

		api.POST("/tokens", h.Token.Submit)
		api.DELETE("/tokens", h.Token.Forget)
		api.DELETE("/tokens/:uuid", h.Token.Delete)

		api.GET("/subscriptions", h.Subscription.List)
		api.POST("/subscriptions", h.Subscription.Subscribe)
		api.DELETE("/subscriptions", h.Subscription.Unsubscribe)

		api.POST("/migrate", middlewares.RequireAuth(), h.Migrate.Migrate)
		api.POST("/events", middlewares.APIKey(opts.EventAPIKey), h.Event.Create)
	}

	return e
}
