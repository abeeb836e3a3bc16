package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
)

// MockRecordRepo is a mock implementation of port.RecordRepository.
type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) CreateBatch(ctx context.Context, runID uuid.UUID, records []domain.ShipmentRecord) error {
	args := m.Called(ctx, runID, records)
	return args.Error(0)
}

func (m *MockRecordRepo) ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentRecord), args.Error(1)
}

func (m *MockRecordRepo) CountByRun(ctx context.Context, runID uuid.UUID) (int, error) {
	args := m.Called(ctx, runID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepo) DeleteByRun(ctx context.Context, runID uuid.UUID) error {
	args := m.Called(ctx, runID)
	return args.Error(0)
}
