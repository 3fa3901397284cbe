package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classsync/internal/auth"
	"classsync/internal/cache"
	"classsync/internal/config"
	"classsync/internal/data"
	"classsync/internal/db"
	"classsync/internal/events"
	"classsync/internal/handler"
	"classsync/internal/logging"
	"classsync/internal/retry"
	"classsync/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewForLevel(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	pool, err := retry.WithBackoff(ctx, cfg.ConnectAttempts, cfg.ConnectDelay, retry.Always, func() (*pgxpool.Pool, error) {
		return db.New(ctx, cfg, logger)
	})
	if err != nil {
		logger.Fatal(ctx, "cannot connect to database", zap.Error(err))
	}
	defer pool.Close()

	var settingsCache service.Cache
	if cfg.RedisURL != "" {
		redisCache, err := retry.WithBackoff(ctx, cfg.ConnectAttempts, cfg.ConnectDelay, retry.Always, func() (*cache.RedisCache, error) {
			return cache.Connect(ctx, cfg.RedisURL)
		})
		if err != nil {
			logger.Fatal(ctx, "cannot connect to redis", zap.Error(err))
		}
		defer redisCache.Close()
		settingsCache = redisCache
	} else {
		logger.Warn(ctx, "REDIS_URL not set, using in-process cache")
		settingsCache = cache.NewMemory()
	}

	var publisher service.Publisher = events.Discard{}
	if len(cfg.KafkaBrokers) > 0 {
		producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		publisher = producer
	} else {
		logger.Warn(ctx, "KAFKA_BROKERS not set, events are discarded")
	}

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	accountRepo := data.NewAccountRepository(pool)
	profileRepo := data.NewProfileRepository(pool)
	classRepo := data.NewClassRepository(pool)
	assignmentRepo := data.NewAssignmentRepository(pool)
	stateRepo := data.NewStateRepository(pool)
	settingsRepo := data.NewSettingsRepository(pool)

	settingsSvc := service.NewSettingsService(settingsRepo, profileRepo, settingsCache, cfg.SettingsCacheTTL)
	services := handler.Services{
		Auth:        service.NewAuthService(accountRepo, issuer),
		Profiles:    service.NewProfileService(profileRepo),
		Classes:     service.NewClassService(classRepo, profileRepo),
		Assignments: service.NewAssignmentService(assignmentRepo, profileRepo, settingsSvc, publisher),
		States:      service.NewStateService(stateRepo, assignmentRepo, profileRepo),
		Settings:    settingsSvc,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	reminders := events.NewReminderWorker(assignmentRepo, publisher, settingsCache, logger)
	scheduler, err := events.NewScheduler(ctx, cfg.ReminderSchedule, reminders)
	if err != nil {
		logger.Fatal(ctx, "cannot schedule reminders", zap.Error(err))
	}

	port := fmt.Sprintf(":%d", cfg.HTTPPort)
	srv := &http.Server{
		Addr:              port,
		Handler:           handler.NewRouter(logger, issuer, services, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info(ctx, "Starting server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()

		logger.Info(ctx, "Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		scheduler.Stop(shutdownCtx)
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(ctx, "server stopped with error", zap.Error(err))
		return
	}
	logger.Info(ctx, "Server stopped")
}
