package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"cookie-consent-api/internal/api"
	"cookie-consent-api/internal/config"
	"cookie-consent-api/internal/journal"
	"cookie-consent-api/internal/report"
	"cookie-consent-api/internal/store"
)

func Run(cfg config.Config) {
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec, err := newJournal(rootCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init journal")
	}
	defer rec.Close()

	st := store.NewSeeded()
	src := report.NewMockSource()

	h := api.NewHandler(st, src, rec, cfg.Privacy.IPHashSalt)
	r := api.Router(h)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Str("journal", cfg.Journal.Driver).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server crashed")
		}
	}()

	waitForSignal()
	log.Info().Msg("shutdown...")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	cancel()
	_ = srv.Shutdown(shCtx)
}

func newJournal(ctx context.Context, cfg config.Config) (journal.Recorder, error) {
	if cfg.Journal.Driver == "postgres" {
		return journal.NewPostgres(ctx, cfg)
	}
	return journal.NewMemory(), nil
}

func waitForSignal() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
