package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"mota/cmd"
	httpin "mota/internal/adapters/in/http"
	"mota/internal/pkg/logger"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger, err := logger.New(configs.Logger())
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(configs, appLogger)
	if err != nil {
		appLogger.Fatal("create composition root", zap.Error(err))
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		appLogger.Fatal("start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs, appLogger)
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, appLogger *zap.Logger) {
	e, err := httpin.NewEcho(ctx, app.CreateServer(), configs.JWTSigningKey, appLogger.With(zap.String("component", "http")))
	if err != nil {
		appLogger.Fatal("create http server", zap.Error(err))
	}

	go func() {
		appLogger.Info("http server started", zap.String("port", configs.HTTPPort))
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			e.Logger.Fatal(startErr)
		}
	}()

	<-ctx.Done()
	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("http server shutdown", zap.Error(err))
	}
}
