package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"depot/cmd"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, config, logger)
	if err != nil {
		log.Fatalf("Error building depot: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("Report database not closed", "error", err)
		}
	}()

	mode := "console"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "console":
		if _, err = app.CreateConsoleRunner(os.Stdout).Run(ctx); err != nil {
			log.Fatal(err)
		}
	case "serve":
		if err = serve(ctx, app, config.HTTPPort, logger); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown mode %q, want console or serve", mode)
	}
}

// serve loads the input files, then exposes the depot over HTTP until ctx is
// cancelled. The event log is written once on the way out.
func serve(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	app.LoadInputs(ctx)

	e, err := app.CreateRouter(ctx)
	if err != nil {
		return err
	}

	job := app.CreateQueueProcessingJob()
	if job != nil {
		if err = job.Start(); err != nil {
			return err
		}
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()
	logger.InfoContext(ctx, "Depot listening", "port", port)

	select {
	case <-ctx.Done():
	case err = <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "HTTP server stopped", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
	if job != nil {
		job.Stop()
	}

	if err = app.FlushEventLog(); err != nil {
		return fmt.Errorf("write event log: %w", err)
	}
	logger.Info("Event log written")
	return nil
}
