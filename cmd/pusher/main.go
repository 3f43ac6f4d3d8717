package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/migrate"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/subscription"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/system"
	"github.com/aliskhannn/push-notifier/internal/api/handlers/token"
	"github.com/aliskhannn/push-notifier/internal/api/router"
	"github.com/aliskhannn/push-notifier/internal/api/server"
	"github.com/aliskhannn/push-notifier/internal/app"
	"github.com/aliskhannn/push-notifier/internal/config"
	"github.com/aliskhannn/push-notifier/internal/pubsub"
	eventmsg "github.com/aliskhannn/push-notifier/internal/rabbitmq/handlers/event"
	"github.com/aliskhannn/push-notifier/internal/rabbitmq/queue"
	subrepo "github.com/aliskhannn/push-notifier/internal/repository/subscription"
	tokenrepo "github.com/aliskhannn/push-notifier/internal/repository/token"
	eventsvc "github.com/aliskhannn/push-notifier/internal/service/event"
	subsvc "github.com/aliskhannn/push-notifier/internal/service/subscription"
	tokensvc "github.com/aliskhannn/push-notifier/internal/service/token"
	"github.com/aliskhannn/push-notifier/internal/worker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	source, rdb, err := app.NewContentSource(ctx, cfg)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init content source")
	}

	registry, err := app.NewTransports(ctx, cfg, source)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init transports")
	}

	tokens := tokenrepo.NewRepository(db)
	subs := subrepo.NewRepository(db)
	drainer, queueRepo := app.NewDrainer(db, source, registry, cfg)

	tokenService := tokensvc.NewService(tokens, registry, cfg.Tokens.Capacity)

	var checker app.ContentSource
	if cfg.Content.ValidateSubscriptions {
		checker = source
	}
	subService := subsvc.NewService(subs, checker)
	eventService := eventsvc.NewService(source, subs, queueRepo, cfg.Retry)

	var (
		wg           sync.WaitGroup
		brokerClose  []func() error
		eventHandler *event.Handler
	)

	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}

		// channel first, then connection
		brokerClose = append(brokerClose, ch.Close, conn.Close)

		q, err := queue.NewEventQueue(ch, queue.Topology{
			Exchange:   cfg.RabbitMQ.Exchange,
			Queue:      cfg.RabbitMQ.Queue,
			RetryQueue: cfg.RabbitMQ.RetryQueue,
			DLQ:        cfg.RabbitMQ.DLQ,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			RetryTTL:   cfg.RabbitMQ.RetryTTL,
		})
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
		}

		intake := worker.NewIntake(q, eventmsg.NewHandler(eventService, val))

		wg.Add(1)
		go func() {
			defer wg.Done()
			intake.Run(ctx, cfg.Retry, cfg.RabbitMQ.Workers)
		}()

		if cfg.RabbitMQ.Publish {
			eventHandler = event.NewHandler(eventService, q, cfg.Retry, val)
		}
	}

	if cfg.PubSub.Enabled {
		pq, err := pubsub.New(ctx, pubsub.Config{
			ProjectID:       cfg.PubSub.ProjectID,
			Topic:           cfg.PubSub.Topic,
			Subscription:    cfg.PubSub.Subscription,
			CredentialsFile: cfg.PubSub.CredentialsFile,
		})
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to pubsub")
		}

		brokerClose = append(brokerClose, pq.Close)

		intake := worker.NewIntake(pq, eventmsg.NewHandler(eventService, val))

		wg.Add(1)
		go func() {
			defer wg.Done()
			intake.Run(ctx, cfg.Retry, cfg.PubSub.Workers)
		}()

		if cfg.PubSub.Publish && eventHandler == nil {
			eventHandler = event.NewHandler(eventService, pq, cfg.Retry, val)
		}
	}

	if eventHandler == nil {
		eventHandler = event.NewHandler(eventService, nil, cfg.Retry, val)
	}

	if cfg.Drainer.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			drainer.Run(ctx, cfg.Drainer.Interval)
		}()
	}

	checks := map[string]system.Pinger{
		"postgres": system.PingFunc(db.Master.PingContext),
	}
	if rdb != nil {
		checks["redis"] = system.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	r := router.New(router.Handlers{
		Token:        token.NewHandler(tokenService, val),
		Subscription: subscription.NewHandler(subService, val),
		Migrate:      migrate.NewHandler(tokenService, subService, val),
		Event:        eventHandler,
		System:       system.NewHandler(registry, checks),
	}, router.Options{
		JWTSecret:   cfg.JWT.Secret,
		EventAPIKey: cfg.Server.EventAPIKey,
		CORSOrigins: cfg.CORS.Origins,
	})
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("http server listening")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	wg.Wait()

	app.CloseDB(db)

	for _, closeFn := range brokerClose {
		if err := closeFn(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close broker")
		}
	}
}
