package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
	"shipmatrix/mocks"
)

func TestParseQueueWorker_DispatchesClaimedRuns(t *testing.T) {
	runRepo := new(mocks.MockParseRunRepo)
	parseSvc := new(mocks.MockParseService)

	run := domain.ParseRun{ID: uuid.New(), FileName: "invoice.txt"}
	claimed := make(chan struct{})
	var once sync.Once

	runRepo.On("ClaimPending", mock.Anything, 2).Return([]domain.ParseRun{run}, nil).Once()
	runRepo.On("ClaimPending", mock.Anything, mock.Anything).Return([]domain.ParseRun{}, nil)
	parseSvc.On("ProcessRun", mock.Anything, mock.MatchedBy(func(r *domain.ParseRun) bool {
		return r.ID == run.ID
	})).Run(func(args mock.Arguments) {
		once.Do(func() { close(claimed) })
	}).Return()

	worker := service.NewParseQueueWorker(runRepo, parseSvc, service.ParseQueueConfig{
		PollInterval: 5 * time.Millisecond,
		Concurrency:  2,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	select {
	case <-claimed:
	case <-time.After(2 * time.Second):
		t.Fatal("run was never dispatched")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not shut down")
	}

	parseSvc.AssertExpectations(t)
}

func TestParseQueueWorker_StopsOnCancelWithoutWork(t *testing.T) {
	runRepo := new(mocks.MockParseRunRepo)
	parseSvc := new(mocks.MockParseService)

	runRepo.On("ClaimPending", mock.Anything, mock.Anything).Return([]domain.ParseRun{}, nil)

	worker := service.NewParseQueueWorker(runRepo, parseSvc, service.ParseQueueConfig{
		PollInterval: 5 * time.Millisecond,
		Concurrency:  1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not shut down")
	}

	parseSvc.AssertNotCalled(t, "ProcessRun", mock.Anything, mock.Anything)
}
