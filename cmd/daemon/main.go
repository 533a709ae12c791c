// Path: cmd/daemon/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"hf-datasets/internal/cache"
	"hf-datasets/internal/config"
	"hf-datasets/internal/delivery/rest"
	"hf-datasets/internal/events"
	"hf-datasets/internal/hub"
	"hf-datasets/internal/service"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// 2. Setup Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. Initialize Components
	log.Info().Msg("initializing components")
	broker := events.NewBroker()
	store := cache.NewStore(cfg.Cache.ListTTL(), cfg.Cache.DetailTTL())
	client := hub.NewClient(cfg.Hub)

	// 4. Initialize The Manager
	manager := service.NewManager(cfg.Query, client, store, broker, log)

	// 5. Log refresh announcements. An interactive embedding would
	// subscribe here to repaint its list instead.
	go func() {
		refreshes := broker.Subscribe(events.TopicRefreshed)
		for {
			select {
			case ev := <-refreshes:
				if info, ok := ev.Data.(events.RefreshInfo); ok {
					log.Debug().
						Str("key", info.Key).
						Int("fetched", info.Fetched).
						Int("skipped", info.Skipped).
						Msg("batch refreshed")
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// 6. Initialize and Start The API Server
	apiServer := rest.NewServer(cfg.Server.Port, manager, log)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("API server starting")
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("API server failed")
		}
	}()

	// 7. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during API server shutdown")
	}

	log.Info().Msg("server shut down successfully")
}
