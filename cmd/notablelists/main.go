// Package main реализует точку входа локального сервиса заметок.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	notesHTTP "notablelists/internal/notes/adapters/http"
	"notablelists/internal/notes/adapters/postgres"
	sessionredis "notablelists/internal/notes/adapters/redis"
	"notablelists/internal/notes/adapters/rest"
	"notablelists/internal/notes/app"
	"notablelists/internal/notes/config"
	"notablelists/internal/notes/db"
	pkgredis "notablelists/pkg/db/redis"
	"notablelists/pkg/logger"
	"notablelists/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize local store"
	ErrCreateRedisClient    = "failed to create Redis client"
	ErrStartHTTPServer      = "failed to start HTTP server"
	ErrSyncWorker           = "sync worker stopped with error"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notablelists service started"
	LogServiceShutdownDone = "notablelists service shutdown complete"
	LogInitStore           = "initializing local store"
	LogInitSession         = "initializing session store"
	LogInitRemote          = "initializing remote client"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogStoppingSync        = "stopping sync worker"
	LogClosingDB           = "closing local store"
	LogClosingRedis        = "closing Redis connection"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger
		ctx = logger.NewContext(ctx, finalLogger)

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStore)
		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		noteRepo := postgres.NewNoteRepository(database.Pool())
		sharedRepo := postgres.NewSharedNoteRepository(database.Pool())
		userRepo := postgres.NewUserRepository(database.Pool())

		log.Info(ctx, LogInitSession)
		redisClient, err := pkgredis.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			log.Error(ctx, ErrCreateRedisClient, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}
		sessions := sessionredis.NewSessionStore(redisClient, cfg.Redis.SessionKey, cfg.Redis.SessionTTL)

		log.Info(ctx, LogInitRemote, zap.String("base_url", cfg.Remote.BaseURL))
		remote := rest.NewClient(&cfg.Remote)

		log.Info(ctx, LogInitUseCases)
		noteUseCase := app.NewNoteUseCase(noteRepo, remote)
		sharingUseCase := app.NewSharingUseCase(remote, sharedRepo, noteRepo)
		friendsUseCase := app.NewFriendsUseCase(remote, remote)
		sessionUseCase := app.NewSessionUseCase(remote, sessions, noteUseCase, sharingUseCase)
		userUseCase := app.NewUserUseCase(userRepo, remote)

		// Учетные записи, созданные без сети, отправляются на сервер при старте.
		if err := userUseCase.PostPendingUsers(ctx); err != nil {
			log.Warn(ctx, "pending users were not synced", zap.Error(err))
		}

		worker := app.NewSyncWorker(sessions, noteUseCase, sharingUseCase, cfg.Sync.Interval)
		workerCtx, stopWorker := context.WithCancel(ctx)
		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			if err := worker.Run(workerCtx); err != nil {
				log.Error(ctx, ErrSyncWorker, zap.Error(err))
			}
		}()

		log.Info(ctx, LogInitHTTPServer)
		server := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		notesHTTP.SetupRouter(server, notesHTTP.Services{
			Notes:   noteUseCase,
			Sharing: sharingUseCase,
			Friends: friendsUseCase,
			Session: sessionUseCase,
		})

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.Shutdown()
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingSync)
				stopWorker()
				select {
				case <-workerDone:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			},
		)

		// Хранилища закрываются после остановки всех потребителей.
		log.Info(ctx, LogClosingRedis)
		if err := redisClient.Close(); err != nil {
			log.Warn(ctx, LogClosingRedis, zap.Error(err))
		}

		log.Info(ctx, LogClosingDB)
		noteRepo.Close()
		sharedRepo.Close()
		database.Close(ctx)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
