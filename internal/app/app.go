package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/moscowmix/sitesync/internal/config"
	"github.com/moscowmix/sitesync/internal/engine"
	"github.com/moscowmix/sitesync/internal/httpserver"
	"github.com/moscowmix/sitesync/internal/httpserver/deps"
	"github.com/moscowmix/sitesync/internal/localcache"
	"github.com/moscowmix/sitesync/internal/logger"
	"github.com/moscowmix/sitesync/internal/redis"
	"github.com/moscowmix/sitesync/internal/scheduler"
	"github.com/moscowmix/sitesync/internal/seed"
	redisstore "github.com/moscowmix/sitesync/internal/store/redis"
	"github.com/moscowmix/sitesync/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *engine.Store
	reconciler  *scheduler.Reconciler
	publisher   *scheduler.Publisher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Local snapshot cache on disk
	kv, err := localcache.NewFileStore(cfg.DataDir)
	if err != nil {
		loggerClient.Errorf("Failed to open local cache dir %s: %v", cfg.DataDir, err)
		os.Exit(1)
	}
	cache := localcache.NewSnapshotCache(kv, loggerClient)
	tracker := localcache.NewSaveTracker(kv, loggerClient)

	// Built-in defaults, optionally overridden by a YAML seed file
	defaults, err := seed.Load(cfg.SeedFile)
	if err != nil {
		loggerClient.Errorf("Failed to load seed file %s: %v", cfg.SeedFile, err)
		os.Exit(1)
	}

	remote := redisstore.NewStore(redisClient, cfg.DocumentKey)

	store := engine.New(remote, cache, tracker, defaults, loggerClient, engine.Options{
		Cooldown:      cfg.SaveCooldown,
		DefaultAuthor: cfg.DefaultAuthor,
	})

	// Create manual refresh trigger channel
	refreshTrigger := make(chan struct{}, 1)

	reconciler := scheduler.NewReconciler(store, loggerClient, cfg.ReconcileInterval, refreshTrigger)
	publisher := scheduler.NewPublisher(store, loggerClient, cfg.PublishScanInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:         loggerClient,
		StartTime:      time.Now(),
		Version:        version.Version,
		Commit:         version.Commit,
		BuildDate:      version.BuildDate,
		GoVersion:      version.GoVersion,
		TimeNow:        time.Now,
		Store:          store,
		RedisClient:    redisClient,
		RefreshTrigger: refreshTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       store,
		reconciler:  reconciler,
		publisher:   publisher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting sitesync v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("sitesync %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start reconciler (initial pass plus periodic refresh)
	if err := a.reconciler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start reconciler: %w", err)
	}
	a.logger.Info("reconciler started",
		logger.Duration("interval", a.cfg.ReconcileInterval))

	// Start scheduled-post publisher
	if err := a.publisher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start publisher: %w", err)
	}
	a.logger.Info("publisher started",
		logger.Duration("interval", a.cfg.PublishScanInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.reconciler.Stop()
	a.publisher.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ sitesync stopped cleanly")
	return nil
}
