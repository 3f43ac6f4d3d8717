package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
)

const (
	ExchangeName   = "push-exchange"
	MainQueueName  = "push-events"
	RetryQueueName = "push-events-retry"
	DLQName        = "push-events-dlq"
	RoutingKey     = "content.inserted"

	defaultRetryTTL = 5 * time.Second
)

// Topology names the exchange and queues content events travel through.
// Empty fields fall back to the package defaults.
type Topology struct {
	Exchange   string
	Queue      string
	RetryQueue string
	DLQ        string
	RoutingKey string
	RetryTTL   time.Duration
}

func (t Topology) withDefaults() Topology {
	if t.Exchange == "" {
		t.Exchange = ExchangeName
	}
	if t.Queue == "" {
		t.Queue = MainQueueName
	}
	if t.RetryQueue == "" {
		t.RetryQueue = RetryQueueName
	}
	if t.DLQ == "" {
		t.DLQ = DLQName
	}
	if t.RoutingKey == "" {
		t.RoutingKey = RoutingKey
	}
	if t.RetryTTL <= 0 {
		t.RetryTTL = defaultRetryTTL
	}

	return t
}

// EventQueue publishes and consumes content events.
type EventQueue struct {
	Publisher  *rabbitmq.Publisher
	Consumer   *rabbitmq.Consumer
	routingKey string
}

// NewEventQueue declares the topology on ch and returns a queue bound to it.
func NewEventQueue(ch *rabbitmq.Channel, topo Topology) (*EventQueue, error) {
	topo = topo.withDefaults()

	exchange := rabbitmq.NewExchange(topo.Exchange, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(topo.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": topo.Queue,
		"x-message-ttl":             int32(topo.RetryTTL / time.Millisecond),
	}

	_, err = qm.DeclareQueue(topo.RetryQueue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": topo.DLQ,
	}

	mainQ, err := qm.DeclareQueue(topo.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, topo.RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &EventQueue{Publisher: pub, Consumer: cons, routingKey: topo.RoutingKey}, nil
}

// Publish sends ev to the exchange.
func (q *EventQueue) Publish(ev model.ContentEvent, strategy retry.Strategy) error {
	body, err := EncodeEvent(ev)
	if err != nil {
		return err
	}

	return q.Publisher.PublishWithRetry(body, q.routingKey, "application/json", strategy)
}

// Consume decodes deliveries into out until ctx is done or the consumer stops.
// Undecodable messages are logged and dropped.
func (q *EventQueue) Consume(ctx context.Context, out chan<- model.ContentEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				ev, err := DecodeEvent(m)
				if err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal content event")
					continue
				}

				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// EncodeEvent marshals ev into a message body.
func EncodeEvent(ev model.ContentEvent) ([]byte, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return body, nil
}

// DecodeEvent parses a message body.
func DecodeEvent(body []byte) (model.ContentEvent, error) {
	var ev model.ContentEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return model.ContentEvent{}, fmt.Errorf("decode content event: %w", err)
	}

	return ev, nil
}
