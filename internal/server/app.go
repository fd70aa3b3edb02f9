// Package server initializes and runs the PromptEase application server.
// It wires the credential store, the session registry, the completion
// gateway and the HTTP surface, and handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkravets/promptease/internal/logging"
	"github.com/mkravets/promptease/internal/prompt"
	"github.com/mkravets/promptease/internal/server/config"
	"github.com/mkravets/promptease/internal/server/httpapi"
	"github.com/mkravets/promptease/internal/server/repositories/repomanager"
	"github.com/mkravets/promptease/internal/server/services"
	"github.com/mkravets/promptease/internal/server/session"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	api    *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := repomanager.New(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	users := services.NewUserService(repos.Users())
	sessions := session.NewRegistry()
	gateway := prompt.NewGateway(prompt.GatewayOptions{
		BaseURL: cfg.CompletionBaseURL,
		Referer: cfg.CompletionReferer,
		Title:   cfg.CompletionTitle,
	})

	api := httpapi.NewServer(
		cfg.EndpointAddrHTTP,
		logger,
		users,
		sessions,
		gateway,
		cfg.SecretKey,
		cfg.TokenValidityDuration,
		cfg.StaticAPIKey,
	)

	return &App{config: cfg, logger: logger, repos: repos, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.api.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing store", "error", err.Error())
	}
}
