package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"conduit/internal/config"
	"conduit/internal/core"
	"conduit/internal/db"
	"conduit/internal/http/server"
	"conduit/internal/pool"
	"conduit/internal/repository"
	"conduit/pkg/jwt"
	"conduit/pkg/log"
	"conduit/pkg/password"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap/zapcore"
)

const serviceName = "conduit"

func Start() error {
	logger := log.NewZapLogger(serviceName, zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	logger = log.NewZapLogger(serviceName, log.ParseLevel(config.LogLevel))
	defer func() { _ = logger.Sync() }()

	dbConn, err := db.Open(config.DBDriver, config.DBConnectionURL, logger)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err, "driver", config.DBDriver)
		return err
	}
	defer dbConn.Close()

	// each worker holds at most one connection for the duration of a job
	if err = dbConn.SetMaxOpenConns(config.DBWorkers); err != nil {
		logger.Errorw("failed to size connection pool", "error", err)
		return err
	}

	workers := pool.New(config.DBWorkers, logger)
	defer workers.Close()

	// repository
	repo := repository.NewUserRepository(dbConn, workers)
	if err = repo.Migrate(); err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	scheme, err := password.New(config.PasswordScheme)
	if err != nil {
		logger.Errorw("failed to select password scheme", "error", err)
		return err
	}

	// accounts
	accounts := core.NewAccounts(
		logger,
		repo,
		jwtService,
		scheme,
		config.TokenTTL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	hdlr, err := NewRouter(logger, accounts, jwtService, dbConn, registry)
	if err != nil {
		logger.Errorw("failed to build router", "error", err)
		return err
	}

	logger.Infow("starting service",
		"port", config.Port,
		"db_driver", config.DBDriver,
		"db_workers", config.DBWorkers,
		"password_scheme", config.PasswordScheme)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	if err == nil && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
