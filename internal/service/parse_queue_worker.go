package service

import (
	"context"
	"log"
	"sync"
	"time"

	"shipmatrix/internal/port"
)

// ParseQueueConfig holds settings for the parse queue worker.
type ParseQueueConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// ParseQueueWorker polls for pending parse runs and dispatches them to
// the ParseService. Each run is processed by its own goroutine with its
// own transient state; runs never share anything mutable.
type ParseQueueWorker struct {
	runRepo port.ParseRunRepository
	parse   ParseService
	cfg     ParseQueueConfig
	wg      sync.WaitGroup
}

// NewParseQueueWorker creates a new ParseQueueWorker.
func NewParseQueueWorker(runRepo port.ParseRunRepository, parse ParseService, cfg ParseQueueConfig) *ParseQueueWorker {
	return &ParseQueueWorker{
		runRepo: runRepo,
		parse:   parse,
		cfg:     cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until
// all in-flight runs have finished.
func (w *ParseQueueWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("parseQueueWorker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("parseQueueWorker: shutting down, waiting for in-flight runs...")
			w.wg.Wait()
			log.Printf("parseQueueWorker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			runs, err := w.runRepo.ClaimPending(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("parseQueueWorker: ClaimPending error: %v", err)
				continue
			}

			for i := range runs {
				run := runs[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight runs complete even during shutdown.
					runCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
					defer cancel()

					log.Printf("parseQueueWorker: dispatching run %s (%s)", run.ID, run.FileName)
					w.parse.ProcessRun(runCtx, &run)
				}()
			}
		}
	}
}
