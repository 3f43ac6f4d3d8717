package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/push-notifier/internal/model"
)

//go:generate mockgen -source=intake.go -destination=../mocks/worker/mock_intake.go -package=mocks
type eventConsumer interface {
	Consume(ctx context.Context, out chan<- model.ContentEvent, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg model.ContentEvent, strategy retry.Strategy)
}

// Intake pulls content events off the broker and hands them to a pool of
// workers that turn them into delivery jobs.
type Intake struct {
	consumer eventConsumer
	handler  messageHandler
}

func NewIntake(c eventConsumer, h messageHandler) *Intake {
	return &Intake{
		consumer: c,
		handler:  h,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (in *Intake) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan model.ContentEvent, workerCount*10)

	go func() {
		if err := in.consumer.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume content events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Debug().Int("worker", id).Msg("intake worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Debug().Int("worker", id).Msg("intake worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						return
					}

					in.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("intake stopped")
}
