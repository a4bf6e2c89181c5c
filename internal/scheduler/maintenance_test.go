package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/localnerve/waitinglist/internal/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeJobs struct {
	removes   atomic.Int32
	urgencies atomic.Int32
	removeErr error
}

func (f *fakeJobs) AutoRemove(context.Context) (int, error) {
	f.removes.Add(1)
	return 1, f.removeErr
}

func (f *fakeJobs) AutoUpdateUrgencies(context.Context) (int, error) {
	f.urgencies.Add(1)
	return 2, nil
}

func TestRunContinuesAfterFailure(t *testing.T) {
	jobs := &fakeJobs{removeErr: errors.New("boom")}
	m := NewMaintenance(jobs, logger.NewNop(), time.Hour)

	m.Run(context.Background())

	assert.Equal(t, int32(1), jobs.removes.Load())
	assert.Equal(t, int32(1), jobs.urgencies.Load())
}

func TestStartRunsImmediatelyAndOnInterval(t *testing.T) {
	jobs := &fakeJobs{}
	m := NewMaintenance(jobs, logger.NewNop(), 10*time.Millisecond)

	m.Start(context.Background())
	assert.GreaterOrEqual(t, jobs.removes.Load(), int32(1))

	assert.Eventually(t, func() bool {
		return jobs.urgencies.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	m.Stop()
	m.Stop()
}

func TestStartStopsWithContext(t *testing.T) {
	jobs := &fakeJobs{}
	m := NewMaintenance(jobs, logger.NewNop(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)
	cancel()
	m.Stop()

	assert.Equal(t, int32(1), jobs.removes.Load())
}

func TestDefaultInterval(t *testing.T) {
	m := NewMaintenance(&fakeJobs{}, logger.NewNop(), 0)
	assert.Equal(t, DefaultInterval, m.interval)
}
