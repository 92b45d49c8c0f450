package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"

	"blooddonor/internal/adapter/api/gql"
	"blooddonor/internal/adapter/api/handler"
	apimiddleware "blooddonor/internal/adapter/api/middleware"
	"blooddonor/internal/adapter/api/router"
	"blooddonor/internal/infrastructure/metrics"
	"blooddonor/internal/infrastructure/token"
	"blooddonor/internal/usecase"
	"blooddonor/pkg/config"
	"blooddonor/pkg/logger"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the GraphQL server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Configure(cfg.Environment)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("Database connection failed: %v", err)
	}
	defer func() {
		if err := st.close(context.Background()); err != nil {
			logger.WithError(err).Warn("closing database")
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(registry)

	issuer := token.NewIssuer(cfg.JWTSecret)
	userUseCase := usecase.NewUserUseCase(st.users, st.previous, issuer, cfg.AvatarBaseURL)
	donationUseCase := usecase.NewDonationUseCase(st.donations, st.previous)

	schema, err := gql.NewSchema(gql.NewResolver(userUseCase, donationUseCase, recorder))
	if err != nil {
		return err
	}

	handler.Setup(&schema, cfg.GraphiQLEnabled, st.users, recorder)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	apimiddleware.Setup(e)
	router.Setup(e)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}
