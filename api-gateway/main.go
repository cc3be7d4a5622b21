package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"qrmenu-backend/api-gateway/internal/gateway"
	"qrmenu-backend/config"
	"qrmenu-backend/logging"
)

func main() {
	cfg, err := config.LoadGateway()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup("api-gateway", cfg.LogLevel, cfg.LogFormat)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           buildHandler(cfg, &http.Client{Timeout: 30 * time.Second}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Address).Str("menu_svc", cfg.MenuSvcURL).Msg("API Gateway starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Gateway stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down gateway...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Gateway shutdown failed")
	}
}

func buildHandler(cfg config.GatewayConfig, client gateway.HTTPClient) http.Handler {
	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:  cfg.MenuSvcURL,
		FrontendDir: cfg.FrontendDir,
	}, client)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler(gw.SetupRoutes())
}
