package service

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"shipmatrix/internal/config"
	"shipmatrix/internal/domain"
	"shipmatrix/internal/parser"
	"shipmatrix/internal/port"
	"shipmatrix/internal/validator"
)

// UploadInput is the DTO for parse run upload requests.
type UploadInput struct {
	CreatedBy uuid.UUID
	File      multipart.File
	Header    *multipart.FileHeader
}

// ParseService owns the parse run lifecycle: accepting an upload,
// running the extraction pipeline against it and recording the outcome.
type ParseService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.ParseRun, error)
	ProcessRun(ctx context.Context, run *domain.ParseRun)
	GetRun(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error)
	ListRuns(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error)
	ListRunsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error)
	DeleteRun(ctx context.Context, id uuid.UUID) error
}

type parseService struct {
	runRepo    port.ParseRunRepository
	recordRepo port.RecordRepository
	statsRepo  port.StatsRepository
	userRepo   port.UserRepository
	storage    port.ObjectStorage
	tokenizer  port.PageTokenizer
	email      port.EmailSender
	engine     *parser.Engine
	validator  *validator.Engine
	s3cfg      *config.S3Config
}

// NewParseService creates a new ParseService implementation.
func NewParseService(
	runRepo port.ParseRunRepository,
	recordRepo port.RecordRepository,
	statsRepo port.StatsRepository,
	userRepo port.UserRepository,
	storage port.ObjectStorage,
	tokenizer port.PageTokenizer,
	email port.EmailSender,
	engine *parser.Engine,
	s3cfg *config.S3Config,
) ParseService {
	return &parseService{
		runRepo:    runRepo,
		recordRepo: recordRepo,
		statsRepo:  statsRepo,
		userRepo:   userRepo,
		storage:    storage,
		tokenizer:  tokenizer,
		email:      email,
		engine:     engine,
		validator:  validator.NewEngine(),
		s3cfg:      s3cfg,
	}
}

func (s *parseService) Upload(ctx context.Context, input UploadInput) (*domain.ParseRun, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	if _, ok := domain.AllowedExtensions[ext]; !ok {
		return nil, domain.ErrUnsupportedFileType
	}
	if input.Header.Size > s.s3cfg.MaxFileSizeMB*1024*1024 {
		return nil, domain.ErrFileTooLarge
	}

	key := fmt.Sprintf("uploads/%s/%s", uuid.New(), input.Header.Filename)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        input.File,
		ContentType: "text/plain",
		Size:        input.Header.Size,
	})
	if err != nil {
		return nil, domain.ErrUploadFailed
	}

	run := &domain.ParseRun{
		FileName:  input.Header.Filename,
		S3Bucket:  s.s3cfg.Bucket,
		S3Key:     key,
		CreatedBy: input.CreatedBy,
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("parseService.Upload: %w", err)
	}
	return run, nil
}

// ProcessRun executes the full extraction pipeline for one claimed run.
// Failures are recorded on the run rather than returned: the caller is
// the queue worker, which has nobody to hand an error to.
func (s *parseService) ProcessRun(ctx context.Context, run *domain.ParseRun) {
	records, stats, err := s.extract(ctx, run)
	if err != nil {
		log.Printf("parseService.ProcessRun: run %s failed: %v", run.ID, err)
		if dbErr := s.runRepo.MarkFailed(ctx, run.ID, err.Error()); dbErr != nil {
			log.Printf("parseService.ProcessRun: marking run %s failed: %v", run.ID, dbErr)
		}
		s.notify(ctx, run, nil)
		return
	}

	if err := s.recordRepo.CreateBatch(ctx, run.ID, records); err != nil {
		log.Printf("parseService.ProcessRun: persisting records for run %s: %v", run.ID, err)
		_ = s.runRepo.MarkFailed(ctx, run.ID, "persisting extracted records failed")
		s.notify(ctx, run, nil)
		return
	}
	if err := s.statsRepo.Save(ctx, run.ID, &stats); err != nil {
		log.Printf("parseService.ProcessRun: persisting stats for run %s: %v", run.ID, err)
	}
	if err := s.runRepo.MarkCompleted(ctx, run.ID, stats.TotalInvoices, stats.TotalShipments); err != nil {
		log.Printf("parseService.ProcessRun: marking run %s completed: %v", run.ID, err)
		return
	}

	run.Status = domain.RunStatusCompleted
	run.InvoiceCount = stats.TotalInvoices
	run.ShipmentCount = stats.TotalShipments
	log.Printf("parseService.ProcessRun: run %s completed: %d invoices, %d shipments",
		run.ID, stats.TotalInvoices, stats.TotalShipments)
	s.notify(ctx, run, &stats)
}

func (s *parseService) extract(ctx context.Context, run *domain.ParseRun) ([]domain.ShipmentRecord, domain.RunStats, error) {
	body, err := s.storage.Download(ctx, run.S3Bucket, run.S3Key)
	if err != nil {
		return nil, domain.RunStats{}, fmt.Errorf("downloading source: %w", err)
	}
	defer body.Close()

	pages, err := s.tokenizer.Tokenize(ctx, body)
	if err != nil {
		return nil, domain.RunStats{}, fmt.Errorf("tokenizing source: %w", err)
	}

	records, stats, err := s.engine.ParseDocument(ctx, pages)
	if err != nil {
		return nil, domain.RunStats{}, err
	}

	summary := s.validator.ValidateAll(records)
	stats.ValidationErrors = summary.Errors
	stats.ValidationWarnings = summary.Warnings

	return records, stats, nil
}

// notify sends the completion or failure email. Notification is
// advisory and must never fail the run.
func (s *parseService) notify(ctx context.Context, run *domain.ParseRun, stats *domain.RunStats) {
	user, err := s.userRepo.GetByID(ctx, run.CreatedBy)
	if err != nil {
		log.Printf("parseService.notify: looking up user for run %s: %v", run.ID, err)
		return
	}

	if stats != nil {
		err = s.email.SendRunCompleted(ctx, user.Email, user.FullName, run, stats)
	} else {
		err = s.email.SendRunFailed(ctx, user.Email, user.FullName, run)
	}
	if err != nil {
		log.Printf("parseService.notify: sending email for run %s: %v", run.ID, err)
	}
}

func (s *parseService) GetRun(ctx context.Context, id uuid.UUID) (*domain.ParseRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

func (s *parseService) ListRuns(ctx context.Context, offset, limit int) ([]domain.ParseRun, int, error) {
	return s.runRepo.List(ctx, offset, limit)
}

func (s *parseService) ListRunsByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.ParseRun, int, error) {
	return s.runRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *parseService) DeleteRun(ctx context.Context, id uuid.UUID) error {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, run.S3Bucket, run.S3Key); err != nil {
		log.Printf("parseService.DeleteRun: deleting source object for run %s: %v", id, err)
	}
	if err := s.recordRepo.DeleteByRun(ctx, id); err != nil {
		return err
	}
	return s.runRepo.Delete(ctx, id)
}
