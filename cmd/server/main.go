package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"bnpl-gateway/internal/catalog"
	"bnpl-gateway/internal/checkout"
	"bnpl-gateway/internal/checkout/handler"
	"bnpl-gateway/internal/checkout/metrics"
	"bnpl-gateway/internal/platform/config"
	"bnpl-gateway/internal/platform/httpserver"
	"bnpl-gateway/internal/platform/logger"
	httptransport "bnpl-gateway/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	cat := catalog.Default()
	m := metrics.New()
	svc := checkout.NewService(cat, log, m)
	h := handler.New(svc, log, cfg.EndpointTemplate)
	router := httptransport.NewRouter(h, log)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting bnpl-gateway", "addr", cfg.Addr, "methods", len(cat.Methods()))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
