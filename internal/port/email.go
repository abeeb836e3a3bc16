package port

import (
	"context"

	"shipmatrix/internal/domain"
)

// EmailSender defines the contract for outbound notification email.
type EmailSender interface {
	SendRunCompleted(ctx context.Context, toEmail, toName string, run *domain.ParseRun, stats *domain.RunStats) error
	SendRunFailed(ctx context.Context, toEmail, toName string, run *domain.ParseRun) error
}
