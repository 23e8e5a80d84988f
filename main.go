package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/lunchly/internal/config"
	"github.com/umalmyha/lunchly/internal/infra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

// @title Lunchly API
// @version 1.0
// @description Restaurant customers and reservations
// @BasePath /
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %s", err)
	}

	logger, err := infra.Logger(cfg.LogCfg)
	if err != nil {
		logrus.Fatalf("failed to build logger - %s", err)
	}

	pool, err := infra.Postgresql(context.Background(), cfg.PostgresCfg)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()

	app, err := infra.App(pool, cfg.ReservationsCfg, logger)
	if err != nil {
		logger.Fatalf("failed to build application - %s", err)
	}

	start(app, cfg.HTTPCfg, logger)
}

func start(app *echo.Echo, cfg config.HTTPCfg, logger *logrus.Logger) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Infof("starting server on port %d", cfg.Port)
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			logger.Errorf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
