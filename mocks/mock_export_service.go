package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/service"
)

// MockExportService is a mock implementation of service.ExportService.
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, runID uuid.UUID, format domain.ExportFormat) (*service.ExportOutput, error) {
	args := m.Called(ctx, runID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportOutput), args.Error(1)
}

func (m *MockExportService) Records(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShipmentRecord), args.Error(1)
}
