package container

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	database "github.com/Vivek13121/TripWeave/app/db"
	"github.com/Vivek13121/TripWeave/app/observability/metrics"
	"github.com/Vivek13121/TripWeave/config"
	"github.com/Vivek13121/TripWeave/internal/api/activity"
	"github.com/Vivek13121/TripWeave/internal/api/itinerary"
	"github.com/Vivek13121/TripWeave/internal/planner"
	"github.com/Vivek13121/TripWeave/internal/router"
)

const defaultActivityCacheTTL = 30 * time.Minute

// Container holds all application dependencies
type Container struct {
	Config           *config.Config
	Logger           *slog.Logger
	Pool             *pgxpool.Pool
	ItineraryHandler *itinerary.HandlerImpl
	ActivityHandler  *activity.HandlerImpl
}

// NewContainer wires the planner and its activity sources. The catalog
// database is opened only when Postgres is configured; otherwise every
// destination is served by the static source.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.AppMetrics) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	ttl := cfg.Planner.ActivityCacheTTL
	if ttl <= 0 {
		ttl = defaultActivityCacheTTL
	}

	var source planner.ActivitySource = activity.NewStaticSource()
	var repo activity.Repository

	if cfg.PostgresEnabled() {
		pool, err := openDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		c.Pool = pool
		repo = activity.NewRepository(pool, logger, m)
		source = activity.NewCatalogSource(repo, source, logger)
	} else {
		logger.Info("Postgres not configured, serving static activities only")
	}

	cached := activity.NewCachedSource(source, ttl, logger, m)

	itineraryService := itinerary.NewServiceImpl(planner.NewPlanner(logger), cached, cfg.Planner.MaxRetries, logger, m)
	c.ItineraryHandler = itinerary.NewHandlerImpl(itineraryService, logger)

	if repo != nil {
		activityService := activity.NewServiceImpl(repo, cached, logger)
		c.ActivityHandler = activity.NewHandlerImpl(activityService, logger)
	}

	return c, nil
}

func openDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	dbConfig, err := database.NewDatabaseConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to generate database config: %w", err)
	}

	// Run migrations *before* initializing the main pool
	if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if !database.WaitForDB(ctx, pool, logger) {
		pool.Close()
		return nil, fmt.Errorf("database not ready after waiting")
	}
	return pool, nil
}

// RouterConfig returns the routes served by this container.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		ItineraryHandler: c.ItineraryHandler,
		ActivityHandler:  c.ActivityHandler,
		AllowedOrigins:   c.Config.Cors.AllowedOrigins,
	}
}

// Close releases all resources held by the container
func (c *Container) Close() {
	if c.Pool != nil {
		c.Pool.Close()
		c.Logger.Info("Database pool closed")
	}
}
