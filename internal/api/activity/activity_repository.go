package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vivek13121/TripWeave/app/observability/metrics"
	"github.com/Vivek13121/TripWeave/internal/types"
)

var _ Repository = (*RepositoryImpl)(nil)

// Repository persists the per-destination activity catalog.
type Repository interface {
	ListByDestination(ctx context.Context, destination string) ([]types.CatalogActivity, error)
	// SaveActivities inserts activities not yet in the catalog and returns
	// only the rows that were created.
	SaveActivities(ctx context.Context, destination string, activities []types.Activity) ([]types.CatalogActivity, error)
}

// DBPool is the part of *pgxpool.Pool the repository uses.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type RepositoryImpl struct {
	logger  *slog.Logger
	pgpool  DBPool
	metrics *metrics.AppMetrics
}

func NewRepository(pgpool DBPool, logger *slog.Logger, m *metrics.AppMetrics) *RepositoryImpl {
	return &RepositoryImpl{
		logger:  logger,
		pgpool:  pgpool,
		metrics: m,
	}
}

func (r *RepositoryImpl) ListByDestination(ctx context.Context, destination string) ([]types.CatalogActivity, error) {
	ctx, span := otel.Tracer("ActivityRepository").Start(ctx, "ListByDestination", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "SELECT"),
		attribute.String("destination", destination),
	))
	defer span.End()

	query := `
        SELECT id, destination, name, category, created_at
        FROM activities
        WHERE destination_key = $1
        ORDER BY created_at, name
    `
	start := time.Now()
	rows, err := r.pgpool.Query(ctx, query, types.DestinationKey(destination))
	if err != nil {
		r.metrics.RecordQuery(ctx, "list_activities", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	activities := make([]types.CatalogActivity, 0)
	for rows.Next() {
		var a types.CatalogActivity
		var category string
		if err := rows.Scan(&a.ID, &a.Destination, &a.Name, &category, &a.CreatedAt); err != nil {
			r.metrics.RecordQuery(ctx, "list_activities", start, err)
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		a.Category = types.ActivityCategory(category)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		r.metrics.RecordQuery(ctx, "list_activities", start, err)
		span.RecordError(err)
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}
	r.metrics.RecordQuery(ctx, "list_activities", start, nil)

	span.SetAttributes(attribute.Int("activities.count", len(activities)))
	span.SetStatus(codes.Ok, "activities listed")
	return activities, nil
}

func (r *RepositoryImpl) SaveActivities(ctx context.Context, destination string, activities []types.Activity) ([]types.CatalogActivity, error) {
	ctx, span := otel.Tracer("ActivityRepository").Start(ctx, "SaveActivities", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.operation", "INSERT"),
		attribute.String("destination", destination),
		attribute.Int("activities.requested", len(activities)),
	))
	defer span.End()

	start := time.Now()
	tx, err := r.pgpool.Begin(ctx)
	if err != nil {
		r.metrics.RecordQuery(ctx, "save_activities", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "begin failed")
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO activities (id, destination, destination_key, name, category)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (destination_key, name) DO NOTHING
        RETURNING created_at
    `
	key := types.DestinationKey(destination)
	created := make([]types.CatalogActivity, 0, len(activities))
	for _, a := range activities {
		row := types.CatalogActivity{ID: uuid.New(), Destination: destination, Activity: a}
		err := tx.QueryRow(ctx, query, row.ID, destination, key, a.Name, string(a.Category)).Scan(&row.CreatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.DebugContext(ctx, "Activity already in catalog", slog.String("name", a.Name), slog.String("destination", destination))
			continue
		}
		if err != nil {
			r.metrics.RecordQuery(ctx, "save_activities", start, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "insert failed")
			return nil, fmt.Errorf("failed to insert activity %q: %w", a.Name, err)
		}
		created = append(created, row)
	}

	if err := tx.Commit(ctx); err != nil {
		r.metrics.RecordQuery(ctx, "save_activities", start, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "commit failed")
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	r.metrics.RecordQuery(ctx, "save_activities", start, nil)

	r.logger.InfoContext(ctx, "Activities saved", slog.String("destination", destination), slog.Int("created", len(created)), slog.Int("requested", len(activities)))
	span.SetAttributes(attribute.Int("activities.created", len(created)))
	span.SetStatus(codes.Ok, "activities saved")
	return created, nil
}
