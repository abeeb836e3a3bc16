package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

type recordRepo struct {
	db *sqlx.DB
}

// NewRecordRepo creates a new PostgreSQL-backed RecordRepository.
// Each shipment row keeps the most-queried fields in dedicated columns
// and the full typed record as a JSONB payload, so the schema does not
// have to track the sixty-plus optional surcharge fields.
func NewRecordRepo(db *sqlx.DB) port.RecordRepository {
	return &recordRepo{db: db}
}

type recordRow struct {
	RunID          uuid.UUID       `db:"run_id"`
	Position       int             `db:"position"`
	InvoiceNumber  string          `db:"invoice_number"`
	TrackingNumber string          `db:"tracking_number"`
	PageNumber     int             `db:"page_number"`
	Payload        json.RawMessage `db:"payload"`
}

func (r *recordRepo) CreateBatch(ctx context.Context, runID uuid.UUID, records []domain.ShipmentRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("recordRepo.CreateBatch begin: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO shipment_records (run_id, position, invoice_number, tracking_number, page_number, payload)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for i := range records {
		payload, err := json.Marshal(&records[i])
		if err != nil {
			return fmt.Errorf("recordRepo.CreateBatch marshal: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query,
			runID, i, records[i].InvoiceNumber, records[i].TrackingNumber,
			records[i].PageNumber, payload); err != nil {
			return fmt.Errorf("recordRepo.CreateBatch insert: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("recordRepo.CreateBatch commit: %w", err)
	}
	return nil
}

func (r *recordRepo) ListByRun(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error) {
	var rows []recordRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM shipment_records WHERE run_id = $1 ORDER BY position", runID)
	if err != nil {
		return nil, fmt.Errorf("recordRepo.ListByRun: %w", err)
	}

	records := make([]domain.ShipmentRecord, len(rows))
	for i, row := range rows {
		if err := json.Unmarshal(row.Payload, &records[i]); err != nil {
			return nil, fmt.Errorf("recordRepo.ListByRun unmarshal: %w", err)
		}
	}
	return records, nil
}

func (r *recordRepo) CountByRun(ctx context.Context, runID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM shipment_records WHERE run_id = $1", runID)
	if err != nil {
		return 0, fmt.Errorf("recordRepo.CountByRun: %w", err)
	}
	return count, nil
}

func (r *recordRepo) DeleteByRun(ctx context.Context, runID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx,
		"DELETE FROM shipment_records WHERE run_id = $1", runID); err != nil {
		return fmt.Errorf("recordRepo.DeleteByRun: %w", err)
	}
	return nil
}
