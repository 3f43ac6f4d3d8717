package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/push-notifier/internal/mocks/worker"
	"github.com/aliskhannn/push-notifier/internal/model"
	"github.com/aliskhannn/push-notifier/internal/repository/queue"
)

var drainNow = time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

func newTestDrainer(t *testing.T, cfg DrainerConfig) (*Drainer, *mocks.MockjobQueue, *mocks.MockjobHandler) {
	ctrl := gomock.NewController(t)
	queueMock := mocks.NewMockjobQueue(ctrl)
	handlerMock := mocks.NewMockjobHandler(ctrl)

	d := NewDrainer(queueMock, handlerMock, cfg)
	d.now = func() time.Time { return drainNow }

	return d, queueMock, handlerMock
}

func job(id int64) model.Job {
	return model.Job{ID: id, Payload: model.Payload{ObjectType: "reply", ObjectID: id}, Status: model.JobStatusPending}
}

func TestDrain_Empty(t *testing.T) {
	d, queueMock, _ := newTestDrainer(t, DrainerConfig{})

	queueMock.EXPECT().ReclaimStale(gomock.Any(), drainNow.Add(-5*time.Minute)).Return(int64(0), nil)
	queueMock.EXPECT().Pending(gomock.Any(), 50).Return(nil, nil)

	stats, err := d.Drain(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestDrain_IsolatesJobFailures(t *testing.T) {
	d, queueMock, handlerMock := newTestDrainer(t, DrainerConfig{BatchSize: 10})

	queueMock.EXPECT().ReclaimStale(gomock.Any(), gomock.Any()).Return(int64(1), nil)
	queueMock.EXPECT().Pending(gomock.Any(), 10).Return([]model.Job{job(1), job(2), job(3), job(4)}, nil)

	// 1: lease lost to another drainer.
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(1), drainNow).Return(queue.ErrNotPending)

	// 2: handler fails, job stays leased.
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(2), drainNow).Return(nil)
	handlerMock.EXPECT().Handle(gomock.Any(), job(2)).Return(errors.New("cms down"))

	// 3: handled and deleted.
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(3), drainNow).Return(nil)
	handlerMock.EXPECT().Handle(gomock.Any(), job(3)).Return(nil)
	queueMock.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)

	// 4: lease write fails.
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(4), drainNow).Return(queue.ErrMarkProcessing)

	stats, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{Reclaimed: 1, Fetched: 4, Skipped: 2, Failed: 1, Completed: 1}, stats)
}

func TestDrain_ReclaimFailureDoesNotAbort(t *testing.T) {
	d, queueMock, handlerMock := newTestDrainer(t, DrainerConfig{})

	queueMock.EXPECT().ReclaimStale(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("timeout"))
	queueMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.Job{job(1)}, nil)
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	handlerMock.EXPECT().Handle(gomock.Any(), job(1)).Return(nil)
	queueMock.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)

	stats, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Completed)
}

func TestDrain_DeleteFailureLeavesJob(t *testing.T) {
	d, queueMock, handlerMock := newTestDrainer(t, DrainerConfig{})

	queueMock.EXPECT().ReclaimStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	queueMock.EXPECT().Pending(gomock.Any(), 50).Return([]model.Job{job(1)}, nil)
	queueMock.EXPECT().MarkProcessing(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	handlerMock.EXPECT().Handle(gomock.Any(), job(1)).Return(nil)
	queueMock.EXPECT().Delete(gomock.Any(), int64(1)).Return(queue.ErrDelete)

	stats, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Failed)
	assert.Zero(t, stats.Completed)
}

func TestDrain_PendingFailure(t *testing.T) {
	d, queueMock, _ := newTestDrainer(t, DrainerConfig{})

	queueMock.EXPECT().ReclaimStale(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	queueMock.EXPECT().Pending(gomock.Any(), 50).Return(nil, errors.New("db down"))

	_, err := d.Drain(context.Background())
	assert.Error(t, err)
}

func TestDrain_WorkerPool(t *testing.T) {
	d, queueMock, handlerMock := newTestDrainer(t, DrainerConfig{Workers: 4, StaleAfter: time.Minute})

	jobs := make([]model.Job, 0, 20)
	for i := int64(1); i <= 20; i++ {
		jobs = append(jobs, job(i))
	}

	var (
		mu      sync.Mutex
		handled = make(map[int64]int)
	)

	queueMock.EXPECT().ReclaimStale(gomock.Any(), drainNow.Add(-time.Minute)).Return(int64(0), nil)
	queueMock.EXPECT().Pending(gomock.Any(), 50).Return(jobs, nil)
	queueMock.EXPECT().MarkProcessing(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(20)
	handlerMock.EXPECT().Handle(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j model.Job) error {
			mu.Lock()
			handled[j.ID]++
			mu.Unlock()

			if j.ID%5 == 0 {
				return errors.New("boom")
			}
			return nil
		},
	).Times(20)
	queueMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(16)

	stats, err := d.Drain(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(16), stats.Completed)
	assert.Equal(t, int64(4), stats.Failed)
	assert.Len(t, handled, 20)

	for id, n := range handled {
		assert.Equal(t, 1, n, "job %d handled more than once", id)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	d, queueMock, _ := newTestDrainer(t, DrainerConfig{})

	ctx, cancel := context.WithCancel(context.Background())

	queueMock.EXPECT().ReclaimStale(gomock.Any(), gomock.Any()).Return(int64(0), nil).MinTimes(1)
	queueMock.EXPECT().Pending(gomock.Any(), 50).DoAndReturn(
		func(context.Context, int) ([]model.Job, error) {
			cancel()
			return nil, nil
		},
	).MinTimes(1)

	done := make(chan struct{})
	go func() {
		d.Run(ctx, time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("drainer did not stop")
	}
}
