package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
)

// MockStatsRepo is a mock implementation of port.StatsRepository.
type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Save(ctx context.Context, runID uuid.UUID, stats *domain.RunStats) error {
	args := m.Called(ctx, runID, stats)
	return args.Error(0)
}

func (m *MockStatsRepo) GetByRun(ctx context.Context, runID uuid.UUID) (*domain.RunStats, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunStats), args.Error(1)
}
