package worker

// nota_pdf_worker.go
// Renders the printable PDF for a freshly created nota. Nota creation never
// waits on rendering: the handler path only enqueues, and a lost PDF can be
// regenerated from the frozen nota rows at any time.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/infra"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pdfMaxAttempts = 3

// NotaPDFWorker processes jobs from QueueNotaPDF: it loads the nota with its
// items, renders the PDF to local storage and records the file path. Jobs
// that keep failing are parked in the DLQ.
type NotaPDFWorker struct {
	notaRepo       repository.NotaRepository
	settingsRepo   repository.StoreSettingsRepository
	rdb            *redis.Client
	pdfStoragePath string
}

func NewNotaPDFWorker(notaRepo repository.NotaRepository, settingsRepo repository.StoreSettingsRepository, rdb *redis.Client, pdfStoragePath string) *NotaPDFWorker {
	return &NotaPDFWorker{
		notaRepo:       notaRepo,
		settingsRepo:   settingsRepo,
		rdb:            rdb,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process handles a single render job:
//  1. Parse NotaPDFPayload from the job envelope
//  2. Fetch the nota with its items
//  3. Render the PDF with retries (disk hiccups are transient)
//  4. Store the resulting path on the nota row
func (w *NotaPDFWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload NotaPDFPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("nota_pdf_worker: invalid payload")
		SendToDLQ(ctx, w.rdb, QueueNotaPDF, "nota_pdf", raw, "invalid payload", 0)
		return
	}

	notaID, err := uuid.Parse(payload.NotaID)
	if err != nil {
		log.Error().Str("nota_id", payload.NotaID).Msg("nota_pdf_worker: invalid nota_id")
		SendToDLQ(ctx, w.rdb, QueueNotaPDF, "nota_pdf", raw, "invalid nota_id", 0)
		return
	}

	nota, err := w.notaRepo.FindByID(ctx, notaID)
	if err != nil {
		log.Error().Err(err).Str("nota_id", payload.NotaID).Msg("nota_pdf_worker: nota not found")
		SendToDLQ(ctx, w.rdb, QueueNotaPDF, "nota_pdf", raw, "nota not found", 0)
		return
	}

	// Letterhead comes from the settings row; fall back to the default
	// store name if the lookup fails.
	storeName := "Toko Emasku"
	if settings, err := w.settingsRepo.Get(ctx); err == nil {
		storeName = settings.StoreName
	}

	var pdfPath string
	renderErr := withRetry(ctx, pdfMaxAttempts, func(attempt int) error {
		path, err := infra.GenerateNotaPDF(nota, storeName, w.pdfStoragePath)
		if err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("nota_id", payload.NotaID).
				Msg("nota_pdf_worker: render attempt failed, retrying")
			return err
		}
		pdfPath = path
		return nil
	})
	if renderErr != nil {
		log.Error().Err(renderErr).Str("nota_id", payload.NotaID).Msg("nota_pdf_worker: render failed after all retries")
		SendToDLQ(ctx, w.rdb, QueueNotaPDF, "nota_pdf", raw, renderErr.Error(), pdfMaxAttempts)
		return
	}

	if err := w.notaRepo.SetPDFPath(ctx, notaID, pdfPath); err != nil {
		log.Error().Err(err).Str("nota_id", payload.NotaID).Msg("nota_pdf_worker: failed to store pdf path")
		SendToDLQ(ctx, w.rdb, QueueNotaPDF, "nota_pdf", raw, "failed to store pdf path", pdfMaxAttempts)
		return
	}

	log.Info().Str("nota_id", payload.NotaID).Str("pdf", pdfPath).Msg("nota_pdf_worker: PDF generated")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
