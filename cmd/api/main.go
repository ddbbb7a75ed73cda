package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"

	"github.com/gameasset/relay/internal/infra"
	"github.com/gameasset/relay/internal/inject"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("port", cfg.Port).
		Str("prompt_provider", cfg.PromptProvider).
		Msg("Starting Game Asset AI Agent Backend")
	if !cfg.ClipdropConfigured() {
		logger.Warn().Msg("CLIPDROP_API_KEY not set; /generate-image will reject requests")
	}
	if !cfg.PromptProviderConfigured() {
		logger.Warn().Str("provider", cfg.PromptProvider).Msg("text provider key not set; /enhance-prompt returns prompts unchanged")
	}

	injector := inject.Setup(ctx, cfg, logger)
	router := do.MustInvoke[http.Handler](injector)
	server := infra.NewHTTPServer(cfg, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Msgf("API listening on %s", server.Addr())
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
	}
	if err := injector.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("failed to release services")
	}
	logger.Info().Msg("server stopped")
}
