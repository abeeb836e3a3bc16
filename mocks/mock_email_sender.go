package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendRunCompleted(ctx context.Context, toEmail, toName string, run *domain.ParseRun, stats *domain.RunStats) error {
	args := m.Called(ctx, toEmail, toName, run, stats)
	return args.Error(0)
}

func (m *MockEmailSender) SendRunFailed(ctx context.Context, toEmail, toName string, run *domain.ParseRun) error {
	args := m.Called(ctx, toEmail, toName, run)
	return args.Error(0)
}
