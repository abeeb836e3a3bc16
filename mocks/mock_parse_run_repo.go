package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
)

// MockParseRunRepo is a mock implementation of port.ParseRunRepository.
type MockParseRunRepo struct {
	mock.Mock
}

func (m *MockParseRunRepo) Create(ctx context.Context, run *domain.ParseRun) error {
	args := m.Called(ctx, run)
	return args.Error(0)
}

func (m *MockParseRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseRun), args.Error(1)
}

func (m *MockParseRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseRun), args.Int(1), args.Error(2)
}

func (m *MockParseRunRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseRun), args.Int(1), args.Error(2)
}

func (m *MockParseRunRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ParseRun, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParseRun), args.Error(1)
}

func (m *MockParseRunRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockParseRunRepo) MarkCompleted(ctx context.Context, id uuid.UUID, invoiceCount, shipmentCount int) error {
	args := m.Called(ctx, id, invoiceCount, shipmentCount)
	return args.Error(0)
}

func (m *MockParseRunRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockParseRunRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
