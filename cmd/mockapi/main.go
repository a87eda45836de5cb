// mockapi serves the in-memory stand-in for the Bluestrek backend, seeded
// with a small catalog and one account (admin / admin). Useful for poking
// at the client from a clean slate.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bluestrek/internal/config"
	"bluestrek/internal/fakeapi"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store := fakeapi.NewStore()
	store.Seed()
	users := []fakeapi.User{fakeapi.SeedUser(1, "admin", "Administrator", "admin")}
	server := fakeapi.New(store, cfg.MockAPISecret, users, log.Logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.MockAPIPort),
		Handler:      server.Engine(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Msgf("mock API listening on :%d", cfg.MockAPIPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
