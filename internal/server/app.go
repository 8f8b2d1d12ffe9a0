// Package server initializes and runs the application server. It wires the
// repositories, the password hasher, and the services together explicitly
// and starts the HTTP API with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mpetrenko/videostore/internal/logging"
	"github.com/mpetrenko/videostore/internal/server/config"
	"github.com/mpetrenko/videostore/internal/server/hashing"
	"github.com/mpetrenko/videostore/internal/server/httpapi"
	"github.com/mpetrenko/videostore/internal/server/repositories/repomanager"
	"github.com/mpetrenko/videostore/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := hashing.NewBcryptHasher()

	customerService := services.NewCustomerService(rm.Customers())
	userService := services.NewUserService(rm.Users(), customerService, hasher)
	videoService := services.NewVideoService(rm.Videos(), c)

	srv := httpapi.NewServer(c, logger, userService, customerService, videoService)

	return &App{config: c, logger: logger, repos: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
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
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "err", err)
	}
}
