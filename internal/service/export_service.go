package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/export"
	"shipmatrix/internal/port"
)

// ExportOutput carries a rendered export and its download metadata.
type ExportOutput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ExportService renders a completed run's records as a downloadable
// workbook or CSV file.
type ExportService interface {
	Export(ctx context.Context, runID uuid.UUID, format domain.ExportFormat) (*ExportOutput, error)
	Records(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error)
}

type exportService struct {
	runRepo    port.ParseRunRepository
	recordRepo port.RecordRepository
	statsRepo  port.StatsRepository
	catalog    *catalog.Catalog
}

// NewExportService creates a new ExportService implementation.
func NewExportService(
	runRepo port.ParseRunRepository,
	recordRepo port.RecordRepository,
	statsRepo port.StatsRepository,
	cat *catalog.Catalog,
) ExportService {
	return &exportService{
		runRepo:    runRepo,
		recordRepo: recordRepo,
		statsRepo:  statsRepo,
		catalog:    cat,
	}
}

func (s *exportService) Export(ctx context.Context, runID uuid.UUID, format domain.ExportFormat) (*ExportOutput, error) {
	contentType, ok := domain.AllowedExportFormats[format]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunStatusCompleted {
		return nil, domain.ErrRunNotComplete
	}

	records, err := s.recordRepo.ListByRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	switch format {
	case domain.ExportFormatCSV:
		if _, err := buf.Write(export.BOM); err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}
		w := export.NewCSVWriter(&buf, s.catalog)
		if err := w.WriteHeader(); err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}
		if err := w.WriteRecords(records); err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}

	case domain.ExportFormatXLSX:
		stats, err := s.statsRepo.GetByRun(ctx, runID)
		if err != nil {
			stats = &domain.RunStats{}
		}
		f, err := export.BuildWorkbook(s.catalog, records, *stats)
		if err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}
		if err := f.Write(&buf); err != nil {
			return nil, fmt.Errorf("exportService.Export: %w", err)
		}
	}

	return &ExportOutput{
		FileName:    fmt.Sprintf("%s_shipments.%s", runID, format),
		ContentType: contentType,
		Data:        buf.Bytes(),
	}, nil
}

func (s *exportService) Records(ctx context.Context, runID uuid.UUID) ([]domain.ShipmentRecord, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Status != domain.RunStatusCompleted {
		return nil, domain.ErrRunNotComplete
	}
	return s.recordRepo.ListByRun(ctx, runID)
}
