package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

type statsRepo struct {
	db *sqlx.DB
}

// NewStatsRepo creates a new PostgreSQL-backed StatsRepository.
func NewStatsRepo(db *sqlx.DB) port.StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) Save(ctx context.Context, runID uuid.UUID, stats *domain.RunStats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("statsRepo.Save marshal: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO run_stats (run_id, payload) VALUES ($1, $2)
		ON CONFLICT (run_id) DO UPDATE SET payload = EXCLUDED.payload`,
		runID, payload)
	if err != nil {
		return fmt.Errorf("statsRepo.Save: %w", err)
	}
	return nil
}

func (r *statsRepo) GetByRun(ctx context.Context, runID uuid.UUID) (*domain.RunStats, error) {
	var payload json.RawMessage
	err := r.db.GetContext(ctx, &payload,
		"SELECT payload FROM run_stats WHERE run_id = $1", runID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("statsRepo.GetByRun: %w", err)
	}

	var stats domain.RunStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("statsRepo.GetByRun unmarshal: %w", err)
	}
	return &stats, nil
}
