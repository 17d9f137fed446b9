package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/whiteboardproductions/site/go/internal/api"
	"github.com/whiteboardproductions/site/go/internal/checkout"
	"github.com/whiteboardproductions/site/go/internal/config"
	"github.com/whiteboardproductions/site/go/internal/content"
	"github.com/whiteboardproductions/site/go/internal/currency"
	"github.com/whiteboardproductions/site/go/internal/logger"
	"github.com/whiteboardproductions/site/go/internal/notify"
	"github.com/whiteboardproductions/site/go/internal/state"
	"golang.org/x/sync/errgroup"
)

const sweepInterval = time.Minute

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		orders state.OrderStore
		pg     *state.PostgresStore
	)
	if cfg.DatabaseURL != "" {
		var err error
		pg, err = state.NewPostgresStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create PostgreSQL store")
		}
		orders = pg
	} else {
		log.Warn().Msg("DATABASE_URL not set, confirmed orders are kept in memory")
		orders = state.NewMemoryStore()
	}
	defer orders.Close()

	var contentGetter content.SiteContentGetter
	if pg != nil {
		contentGetter = pg
	}
	src, err := content.NewSource(ctx, cfg, contentGetter)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.ContentSource).Msg("Failed to create content source")
	}
	cat := content.LoadCatalog(ctx, src)

	var lookup currency.Lookuper
	if cfg.GeoLookupURL != "" {
		lookup = currency.NewGeoClient(cfg.GeoLookupURL, cfg.GeoLookupTimeout)
	}

	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramBotToken != "" {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Telegram notifier")
		}
		notifier = tg
	}

	sessions := state.NewSessionStore()
	svc := checkout.NewService(cat, currency.NewResolver(lookup), sessions, orders, notifier, cfg.DeliveryBaseURL)

	router := api.SetupRoutes(
		api.NewCheckoutHandler(svc, cfg.SiteBaseURL),
		api.NewGeoHandler(),
		cfg.CORSAllowedOrigin,
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", cfg.ServerAddr).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return sessions.RunSweeper(gctx, cfg.SessionTTL, sweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server stopped")
}
