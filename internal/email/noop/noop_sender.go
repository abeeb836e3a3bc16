package noop

import (
	"context"
	"log"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendRunCompleted(_ context.Context, toEmail, toName string, run *domain.ParseRun, stats *domain.RunStats) error {
	log.Printf("[NOOP EMAIL] Run completed for %s (%s): %s, %d invoices, %d shipments",
		toName, toEmail, run.FileName, stats.TotalInvoices, stats.TotalShipments)
	return nil
}

func (s *noopSender) SendRunFailed(_ context.Context, toEmail, toName string, run *domain.ParseRun) error {
	log.Printf("[NOOP EMAIL] Run failed for %s (%s): %s: %s",
		toName, toEmail, run.FileName, run.Error)
	return nil
}
