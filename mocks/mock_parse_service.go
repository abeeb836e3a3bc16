package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
)

// MockParseService is a mock implementation of service.ParseService.
type MockParseService struct {
	mock.Mock
}

func (m *MockParseService) Upload(ctx context.Context, input service.UploadInput) (*domain.ParseRun, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseRun), args.Error(1)
}

func (m *MockParseService) ProcessRun(ctx context.Context, run *domain.ParseRun) {
	m.Called(ctx, run)
}

func (m *MockParseService) GetRun(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseRun), args.Error(1)
}

func (m *MockParseService) ListRuns(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseRun), args.Int(1), args.Error(2)
}

func (m *MockParseService) ListRunsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.ParseRun), args.Int(1), args.Error(2)
}

func (m *MockParseService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
