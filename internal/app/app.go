// Package app wires configuration into the components shared by the binaries.
package app

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/config"
	"github.com/aliskhannn/push-notifier/internal/content"
	"github.com/aliskhannn/push-notifier/internal/migrations"
	"github.com/aliskhannn/push-notifier/internal/model"
	queuerepo "github.com/aliskhannn/push-notifier/internal/repository/queue"
	tokenrepo "github.com/aliskhannn/push-notifier/internal/repository/token"
	"github.com/aliskhannn/push-notifier/internal/service/coordinator"
	"github.com/aliskhannn/push-notifier/internal/transport"
	emailtr "github.com/aliskhannn/push-notifier/internal/transport/email"
	fcmtr "github.com/aliskhannn/push-notifier/internal/transport/fcm"
	telegramtr "github.com/aliskhannn/push-notifier/internal/transport/telegram"
	"github.com/aliskhannn/push-notifier/internal/worker"
	"github.com/aliskhannn/push-notifier/pkg/email"
	"github.com/aliskhannn/push-notifier/pkg/fcm"
	"github.com/aliskhannn/push-notifier/pkg/telegram"
)

// ContentSource loads content and answers permission checks.
type ContentSource interface {
	GetContent(ctx context.Context, objectType string, objectID int64) (*model.Content, error)
	UserCan(ctx context.Context, userID int64, action, objectType string, objectID int64) (bool, error)
}

// OpenDB connects to the master and replicas and applies migrations when enabled.
func OpenDB(ctx context.Context, cfg *config.Config) (*dbpg.DB, error) {
	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), cfg.Database.SlaveDSNs(), opts)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if cfg.Database.Migrate {
		n, err := migrations.Apply(ctx, db)
		if err != nil {
			CloseDB(db)
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		zlog.Logger.Info().Int("applied", n).Msg("database schema up to date")
	}

	return db, nil
}

// CloseDB closes the master and every replica.
func CloseDB(db *dbpg.DB) {
	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}

// NewContentSource returns the CMS client, behind the Redis cache when enabled.
// The returned client is nil without a cache.
func NewContentSource(ctx context.Context, cfg *config.Config) (ContentSource, *redis.Client, error) {
	client := content.NewClient(cfg.Content.BaseURL, cfg.Content.APIKey, cfg.Content.Timeout)
	if !cfg.Redis.Enabled {
		return client, nil, nil
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return content.NewCached(client, rdb, cfg.Retry), rdb, nil
}

// NewTransports registers every enabled transport. Order decides which
// transport wins an id clash and how ids are listed.
func NewTransports(ctx context.Context, cfg *config.Config, viewer transport.Viewer) (*transport.Registry, error) {
	reg := transport.NewRegistry()

	if cfg.FCM.Enabled {
		client, err := fcm.NewClient(ctx, cfg.FCM.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("init fcm: %w", err)
		}
		reg.Register(fcmtr.New(client, viewer))
	}

	if cfg.Telegram.Enabled {
		client := telegram.NewClient(cfg.Telegram.Token)
		if cfg.Telegram.BaseURL != "" {
			client = client.WithBaseURL(cfg.Telegram.BaseURL)
		}
		reg.Register(telegramtr.New(client, viewer))
	}

	if cfg.Email.Enabled {
		client := email.NewClient(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.Username,
			cfg.Email.Password,
			cfg.Email.From,
		)
		reg.Register(emailtr.New(client, viewer))
	}

	if reg.Len() == 0 {
		zlog.Logger.Warn().Msg("no push transports enabled")
	}

	zlog.Logger.Info().Strs("transports", reg.IDs()).Msg("push transports registered")

	return reg, nil
}

// NewDrainer builds the queue drainer around the notification coordinator.
func NewDrainer(db *dbpg.DB, source ContentSource, reg *transport.Registry, cfg *config.Config) (*worker.Drainer, *queuerepo.Repository) {
	queue := queuerepo.NewRepository(db)
	coord := coordinator.New(source, tokenrepo.NewRepository(db), reg)

	return worker.NewDrainer(queue, coord, worker.DrainerConfig{
		BatchSize:  cfg.Drainer.BatchSize,
		StaleAfter: cfg.Drainer.StaleAfter,
		Workers:    cfg.Drainer.Workers,
	}), queue
}
