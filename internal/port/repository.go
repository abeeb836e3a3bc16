package port

import (
	"context"

	"github.com/google/uuid"

	"shipmatrix/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ParseRunRepository defines the contract for parse run persistence.
type ParseRunRepository interface {
	Create(ctx context.Context, run *domain.ParseRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error)
	List(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error)
	ClaimPending(ctx context.Context, limit int) ([]domain.ParseRun, error)
	MarkProcessing(ctx context.Context, id uuid.UUID) error
	MarkCompleted(ctx context.Context, id uuid.UUID, invoiceCount, shipmentCount int) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordRepository defines the contract for extracted shipment record
// persistence. Records are written in one batch per run and read back
// for export, so there is no per-record update surface.
type RecordRepository interface {
	CreateBatch(ctx context.Context, runID uuid.UUID, records []domain.ShipmentRecord) error
	ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error)
	CountByRun(ctx context.Context, runID uuid.UUID) (int, error)
	DeleteByRun(ctx context.Context, runID uuid.UUID) error
}

// StatsRepository persists and retrieves per-run aggregate statistics.
type StatsRepository interface {
	Save(ctx context.Context, runID uuid.UUID, stats *domain.RunStats) error
	GetByRun(ctx context.Context, runID uuid.UUID) (*domain.RunStats, error)
}
