// Package pubsub carries content events over Google Cloud Pub/Sub.
package pubsub

import (
	"context"
	"errors"
	"fmt"
	"time"

	ps "cloud.google.com/go/pubsub"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"google.golang.org/api/option"

	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/rabbitmq/queue"
)

const ackDeadline = 10 * time.Second

var ErrTopicNotFound = errors.New("pubsub topic not found")

// Config names the topic and subscription content events travel through.
type Config struct {
	ProjectID       string
	Topic           string
	Subscription    string
	CredentialsFile string
}

// EventQueue publishes and consumes content events on a Pub/Sub topic.
type EventQueue struct {
	client *ps.Client
	topic  *ps.Topic
	sub    *ps.Subscription
}

// New connects to Pub/Sub and makes sure the subscription exists.
// The topic must already exist.
func New(ctx context.Context, cfg Config, opts ...option.ClientOption) (*EventQueue, error) {
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	if cfg.Subscription == "" {
		cfg.Subscription = cfg.Topic + "-sub"
	}

	client, err := ps.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}

	q := &EventQueue{client: client, topic: client.Topic(cfg.Topic)}

	q.sub, err = q.ensureSubscription(ctx, cfg.Subscription)
	if err != nil {
		_ = client.Close()
		return nil, err
	}

	return q, nil
}

func (q *EventQueue) ensureSubscription(ctx context.Context, name string) (*ps.Subscription, error) {
	sub := q.client.Subscription(name)

	exists, err := sub.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check subscription %s: %w", name, err)
	}
	if exists {
		return sub, nil
	}

	topicExists, err := q.topic.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("check topic %s: %w", q.topic.ID(), err)
	}
	if !topicExists {
		return nil, fmt.Errorf("%w: %s", ErrTopicNotFound, q.topic.ID())
	}

	sub, err = q.client.CreateSubscription(ctx, name, ps.SubscriptionConfig{
		Topic:       q.topic,
		AckDeadline: ackDeadline,
	})
	if err != nil {
		return nil, fmt.Errorf("create subscription %s: %w", name, err)
	}

	zlog.Logger.Info().Str("subscription", name).Msg("created pubsub subscription")

	return sub, nil
}

// Publish sends ev to the topic and waits for the server to accept it.
func (q *EventQueue) Publish(ev model.ContentEvent, strategy retry.Strategy) error {
	body, err := queue.EncodeEvent(ev)
	if err != nil {
		return err
	}

	return retry.Do(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), ackDeadline)
		defer cancel()

		_, err := q.topic.Publish(ctx, &ps.Message{Data: body}).Get(ctx)
		return err
	}, strategy)
}

// Consume decodes messages into out until ctx is done. Undecodable
// messages are acked and dropped; messages that cannot be handed off
// before ctx ends are nacked for redelivery.
func (q *EventQueue) Consume(ctx context.Context, out chan<- model.ContentEvent, strategy retry.Strategy) error {
	return retry.Do(func() error {
		err := q.sub.Receive(ctx, func(ctx context.Context, msg *ps.Message) {
			ev, err := queue.DecodeEvent(msg.Data)
			if err != nil {
				zlog.Logger.Error().Err(err).Str("message_id", msg.ID).Msg("failed to unmarshal content event")
				msg.Ack()
				return
			}

			select {
			case out <- ev:
				msg.Ack()
			case <-ctx.Done():
				msg.Nack()
			}
		})
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("pubsub receive stopped")
		}

		return err
	}, strategy)
}

// Close flushes pending publishes and releases the client.
func (q *EventQueue) Close() error {
	q.topic.Stop()
	return q.client.Close()
}
