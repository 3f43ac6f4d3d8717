package pubsub

import (
	"context"
	"testing"
	"time"

	ps "cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/push-notifier/internal/model"
)

const project = "push-test"

func newServer(t *testing.T) *pstest.Server {
	t.Helper()

	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })
	t.Setenv("PUBSUB_EMULATOR_HOST", srv.Addr)

	return srv
}

func createTopic(t *testing.T, name string) {
	t.Helper()

	ctx := context.Background()
	client, err := ps.NewClient(ctx, project)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.CreateTopic(ctx, name)
	require.NoError(t, err)
}

func TestNew_MissingTopic(t *testing.T) {
	newServer(t)

	_, err := New(context.Background(), Config{ProjectID: project, Topic: "absent"})
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestNew_CreatesSubscription(t *testing.T) {
	newServer(t)
	createTopic(t, "events")

	q, err := New(context.Background(), Config{ProjectID: project, Topic: "events"})
	require.NoError(t, err)
	defer q.Close()

	assert.Equal(t, "events-sub", q.sub.ID())

	// Second start finds the existing subscription.
	q2, err := New(context.Background(), Config{ProjectID: project, Topic: "events"})
	require.NoError(t, err)
	defer q2.Close()
}

func TestEventQueue_PublishConsume(t *testing.T) {
	newServer(t)
	createTopic(t, "events")

	q, err := New(context.Background(), Config{ProjectID: project, Topic: "events", Subscription: "intake"})
	require.NoError(t, err)
	defer q.Close()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan model.ContentEvent, 1)
	done := make(chan error, 1)
	go func() { done <- q.Consume(ctx, out, strategy) }()

	ev := model.ContentEvent{ObjectType: "reply", ObjectID: 4, UserID: 3}
	require.NoError(t, q.Publish(ev, strategy))

	select {
	case got := <-out:
		assert.Equal(t, ev, got)
	case <-time.After(5 * time.Second):
		t.Fatal("event not consumed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("consume did not stop")
	}
}
