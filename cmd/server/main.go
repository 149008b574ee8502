package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/config"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/infra"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/repository"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/router"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/service"
	"github.com/ImamNurHadi/toko-perhiasan-emas-sidomulyo/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Goroutine worker pool for async PDF rendering. Handlers are wired here
	// (composition root) so the pool has full access to the repositories.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := worker.NewDispatcher(rdb)
	notaRepo := repository.NewNotaRepository(db)
	settingsRepo := repository.NewStoreSettingsRepository(db, service.DefaultSettings)
	pdfWorker := worker.NewNotaPDFWorker(notaRepo, settingsRepo, rdb, cfg.PDFStoragePath)

	handlers := map[string]worker.JobHandler{
		"nota_pdf": pdfWorker.Process,
	}
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, handlers)

	r := router.New(cfg, db, rdb, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("toko emas backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
