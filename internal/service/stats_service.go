package service

import (
	"context"

	"github.com/google/uuid"

	"shipmatrix/internal/domain"
	"shipmatrix/internal/port"
)

// StatsService provides per-run extraction statistics.
type StatsService interface {
	GetRunStats(ctx context.Context, runID uuid.UUID) (*domain.RunStats, error)
}

type statsService struct {
	runRepo   port.ParseRunRepository
	statsRepo port.StatsRepository
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(runRepo port.ParseRunRepository, statsRepo port.StatsRepository) StatsService {
	return &statsService{runRepo: runRepo, statsRepo: statsRepo}
}

func (s *statsService) GetRunStats(ctx context.Context, runID uuid.UUID) (*domain.RunStats, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunStatusCompleted {
		return nil, domain.ErrRunNotComplete
	}
	return s.statsRepo.GetByRun(ctx, runID)
}
