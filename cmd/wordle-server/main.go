// Command wordle-server serves Wordle sessions over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-wordle/internal/config"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/store"
	"github.com/robalobadob/wordle/apps/go-wordle/internal/words"
)

const janitorInterval = 10 * time.Minute

func main() {
	cfgPath := flag.String("config", "", "YAML config file (default $WORDLE_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.SetupLogging(cfg, false)
	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET not set, using the development secret")
	}

	list, err := words.Load(cfg.Words.AnswersFile, cfg.Words.AllowedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	a, g := list.Stats()
	log.Info().Int("answers", a).Int("allowed", g).Msg("word lists loaded")

	var st store.Store
	if cfg.Server.DBPath == "" {
		st = store.NewMemoryStore()
	} else {
		db, err := store.OpenSQLite(cfg.Server.DBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Server.DBPath).Msg("failed to open database")
		}
		defer db.Close()
		st = store.NewSQLiteStore(db, list)
		log.Info().Str("path", cfg.Server.DBPath).Msg("sessions stored in sqlite")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go store.RunJanitor(ctx, st, janitorInterval, cfg.Server.SessionTTL)

	srv := httpserver.New(st, list, httpserver.Options{
		ClientOrigin:     cfg.Server.ClientOrigin,
		TokenSecret:      cfg.Server.TokenSecret,
		TokenTTL:         cfg.Server.TokenTTL,
		DailySalt:        cfg.Server.DailySalt,
		AllowFixedAnswer: cfg.Server.AllowFixedAnswer,
		SecureCookies:    cfg.Server.SecureCookies,
	})
	hs := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("starting wordle-server")
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
