package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/charliearlie/football-iq/internal/category"
	"github.com/charliearlie/football-iq/internal/config"
	"github.com/charliearlie/football-iq/internal/database"
	"github.com/charliearlie/football-iq/internal/migrations"
	"github.com/charliearlie/football-iq/internal/server"
	"github.com/charliearlie/football-iq/internal/stats"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- Redis ---
	rdb, err := openRedis(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer rdb.Close()
	logger.Info("connected to redis")

	// --- Wiring ---
	store := server.NewSQLiteStore(db)
	admin := server.NewSQLiteAdminStore(db)
	statsCache := stats.NewCache(store, rdb, logger)

	app := &server.App{
		Logger:     logger,
		Store:      store,
		Admin:      admin,
		Evaluator:  category.NewEvaluator(cachedLookup{store: store, cache: statsCache}, logger),
		Broker:     server.NewBroker(),
		StatsCache: statsCache,
		DB:         db,
		Redis:      rdb,
	}

	if cfg.SeedDemo {
		if err := server.SeedDemo(ctx, logger, store, admin); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
	}

	srv := server.New(cfg.HTTPAddr, app)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

func openRedis(ctx context.Context, rawURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return rdb, nil
}

// cachedLookup is the evaluator's data source: clubs and nationalities
// straight from SQLite, statistics through the Redis cache.
type cachedLookup struct {
	store *server.SQLiteStore
	cache *stats.Cache
}

func (l cachedLookup) ClubHistory(ctx context.Context, playerID string) ([]string, error) {
	return l.store.ClubHistory(ctx, playerID)
}

func (l cachedLookup) Nationalities(ctx context.Context, playerID string) ([]string, error) {
	return l.store.Nationalities(ctx, playerID)
}

func (l cachedLookup) PlayerStats(ctx context.Context, playerID string) (map[string]int, error) {
	return l.cache.PlayerStats(ctx, playerID)
}
