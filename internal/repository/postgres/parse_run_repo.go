package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

type parseRunRepo struct {
	db *sqlx.DB
}

// NewParseRunRepo creates a new PostgreSQL-backed ParseRunRepository.
func NewParseRunRepo(db *sqlx.DB) port.ParseRunRepository {
	return &parseRunRepo{db: db}
}

func (r *parseRunRepo) Create(ctx context.Context, run *domain.ParseRun) error {
	run.ID = uuid.New()
	run.Status = domain.RunStatusPending
	run.CreatedAt = time.Now().UTC()

	query := `INSERT INTO parse_runs (id, file_name, s3_bucket, s3_key, status, error,
		invoice_count, shipment_count, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.FileName, run.S3Bucket, run.S3Key, run.Status, run.Error,
		run.InvoiceCount, run.ShipmentCount, run.CreatedBy, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("parseRunRepo.Create: %w", err)
	}
	return nil
}

func (r *parseRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error) {
	var run domain.ParseRun
	err := r.db.GetContext(ctx, &run, "SELECT * FROM parse_runs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("parseRunRepo.GetByID: %w", err)
	}
	return &run, nil
}

func (r *parseRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM parse_runs"); err != nil {
		return nil, 0, fmt.Errorf("parseRunRepo.List count: %w", err)
	}

	var runs []domain.ParseRun
	err := r.db.SelectContext(ctx, &runs,
		"SELECT * FROM parse_runs ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("parseRunRepo.List: %w", err)
	}
	return runs, total, nil
}

func (r *parseRunRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM parse_runs WHERE created_by = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("parseRunRepo.ListByUser count: %w", err)
	}

	var runs []domain.ParseRun
	err = r.db.SelectContext(ctx, &runs,
		"SELECT * FROM parse_runs WHERE created_by = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("parseRunRepo.ListByUser: %w", err)
	}
	return runs, total, nil
}

// ClaimPending atomically flips up to limit pending runs to processing
// and returns them, using SKIP LOCKED so concurrent workers never claim
// the same run.
func (r *parseRunRepo) ClaimPending(ctx context.Context, limit int) ([]domain.ParseRun, error) {
	var runs []domain.ParseRun
	err := r.db.SelectContext(ctx, &runs,
		`UPDATE parse_runs SET status = $1, started_at = $2
		WHERE id IN (
			SELECT id FROM parse_runs WHERE status = $3
			ORDER BY created_at LIMIT $4
			FOR UPDATE SKIP LOCKED
		)
		RETURNING *`,
		domain.RunStatusProcessing, time.Now().UTC(), domain.RunStatusPending, limit)
	if err != nil {
		return nil, fmt.Errorf("parseRunRepo.ClaimPending: %w", err)
	}
	return runs, nil
}

func (r *parseRunRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE parse_runs SET status = $1, started_at = $2 WHERE id = $3 AND status = $4`,
		domain.RunStatusProcessing, time.Now().UTC(), id, domain.RunStatusPending)
	if err != nil {
		return fmt.Errorf("parseRunRepo.MarkProcessing: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *parseRunRepo) MarkCompleted(ctx context.Context, id uuid.UUID, invoiceCount, shipmentCount int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE parse_runs SET status = $1, invoice_count = $2, shipment_count = $3, completed_at = $4
		WHERE id = $5`,
		domain.RunStatusCompleted, invoiceCount, shipmentCount, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("parseRunRepo.MarkCompleted: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *parseRunRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE parse_runs SET status = $1, error = $2, completed_at = $3 WHERE id = $4`,
		domain.RunStatusFailed, reason, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("parseRunRepo.MarkFailed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *parseRunRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM parse_runs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("parseRunRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
