package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipmatrix/internal/catalog"
	"shipmatrix/internal/config"
	"shipmatrix/internal/email/noop"
	"shipmatrix/internal/email/ses"
	"shipmatrix/internal/handler"
	"shipmatrix/internal/parser"
	"shipmatrix/internal/port"
	"shipmatrix/internal/repository/postgres"
	"shipmatrix/internal/router"
	"shipmatrix/internal/service"
	s3storage "shipmatrix/internal/storage/s3"
	"shipmatrix/internal/tokenizer/plaintext"
)

// @title ShipMatrix API
// @version 1.0
// @description Carrier invoice shipment-matrix extraction service
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	runRepo := postgres.NewParseRunRepo(db)
	recordRepo := postgres.NewRecordRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email delivery
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize extraction pipeline
	cat := catalog.New()
	engine := parser.NewEngine(cat, cfg.Parser.Verbose)
	tokenizer := plaintext.New()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	parseSvc := service.NewParseService(runRepo, recordRepo, statsRepo, userRepo, s3Client, tokenizer, emailSender, engine, &cfg.S3)
	exportSvc := service.NewExportService(runRepo, recordRepo, statsRepo, cat)
	statsSvc := service.NewStatsService(runRepo, statsRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	runH := handler.NewRunHandler(parseSvc)
	exportH := handler.NewExportHandler(exportSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, runH, exportH, statsH, userH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start background queue worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	worker := service.NewParseQueueWorker(runRepo, parseSvc, service.ParseQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(workerCtx)
	}()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		stopWorker()
		<-workerDone
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	stopWorker()
	<-workerDone

	return nil
}
