package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const ExitCodeMainError = 1

const shutdownTimeout = 10 * time.Second

// RunApp serves the api until ctx is cancelled
func RunApp(ctx context.Context, config Config, logWriter io.Writer) error {
	gin.SetMode(gin.ReleaseMode)

	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(logWriter, config)
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config, logger)
	if err != nil {
		return err
	}

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.Database.Close()
	defer serviceContainer.WebhookDispatcher.Close()

	server := &http.Server{
		Addr:    config.ListenAddr,
		Handler: serviceContainer.Router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listen", slog.String("addr", config.ListenAddr), slog.String("substitution", config.Substitution))
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err = <-serverErr:
		return err

	case <-ctx.Done():
		logger.Info("shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err = server.Shutdown(shutdownCtx)
		if serveErr := <-serverErr; !errors.Is(serveErr, http.ErrServerClosed) && err == nil {
			err = serveErr
		}
		return err
	}
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
