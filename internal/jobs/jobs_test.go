package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReconciler struct{ mock.Mock }

func (m *MockReconciler) Handle(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockArchiver struct{ mock.Mock }

func (m *MockArchiver) Handle(ctx context.Context, cmd commands.ArchiveDeliveryTrackingCommand) (int, error) {
	args := m.Called(ctx, cmd.BatchSize())
	return args.Int(0), args.Error(1)
}

type fakeJob struct {
	name     string
	startErr error
	log      *[]string
}

func (f fakeJob) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f fakeJob) Stop() { *f.log = append(*f.log, "stop "+f.name) }

var discard = slog.New(slog.DiscardHandler)

func TestRatingReconcileJob_RunOnce(t *testing.T) {
	ctx := t.Context()
	handler := new(MockReconciler)
	handler.On("Handle", ctx).Return(3, nil).Once()
	handler.On("Handle", ctx).Return(1, errors.New("db down")).Once()

	job := jobs.NewRatingReconcileJob(handler, "", discard)
	job.RunOnce(ctx)
	job.RunOnce(ctx)

	handler.AssertExpectations(t)
}

func TestTrackingArchiveJob_RunOnceUsesBatch(t *testing.T) {
	ctx := t.Context()
	handler := new(MockArchiver)
	handler.On("Handle", ctx, 100).Return(0, nil).Once()

	jobs.NewTrackingArchiveJob(handler, "", discard).RunOnce(ctx)

	handler.AssertExpectations(t)
}

func TestJobs_InvalidScheduleFailsToStart(t *testing.T) {
	err := jobs.NewRatingReconcileJob(new(MockReconciler), "not a schedule", discard).Start()
	assert.Error(t, err)
}

func TestJobs_StartAndStop(t *testing.T) {
	job := jobs.NewTrackingArchiveJob(new(MockArchiver), "0 0 0 1 1 *", discard)
	require.NoError(t, job.Start())
	job.Stop()
}

func TestJobManager_SkipsNilAndStopsInReverse(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(fakeJob{name: "a", log: &log}, nil, fakeJob{name: "b", log: &log})

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, log)
}

func TestJobManager_StartFailureStopsStartedJobs(t *testing.T) {
	var log []string
	jm := jobs.NewJobManager(
		fakeJob{name: "a", log: &log},
		fakeJob{name: "b", log: &log, startErr: errors.New("bad schedule")},
	)

	err := jm.StartAll()

	require.Error(t, err)
	assert.Equal(t, []string{"start a", "stop a"}, log)
}
