package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"shipmatrix/internal/domain"
)

// MockPageTokenizer is a mock implementation of port.PageTokenizer.
type MockPageTokenizer struct {
	mock.Mock
}

func (m *MockPageTokenizer) Tokenize(ctx context.Context, r io.Reader) ([]domain.Page, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Page), args.Error(1)
}
