package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vivek13121/TripWeave/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Service manages the destination activity catalog.
type Service interface {
	ListActivities(ctx context.Context, destination string) ([]types.CatalogActivity, error)
	AddActivities(ctx context.Context, destination string, req types.AddActivitiesRequest) ([]types.CatalogActivity, error)
}

// Invalidator drops cached pools after the catalog changes.
type Invalidator interface {
	Invalidate(destination string)
}

type ServiceImpl struct {
	logger      *slog.Logger
	repo        Repository
	invalidator Invalidator
}

func NewServiceImpl(repo Repository, invalidator Invalidator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		repo:        repo,
		invalidator: invalidator,
	}
}

func (s *ServiceImpl) ListActivities(ctx context.Context, destination string) ([]types.CatalogActivity, error) {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "ListActivities", trace.WithAttributes(
		attribute.String("destination", destination),
	))
	defer span.End()

	destination, err := normalizeDestination(destination)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	activities, err := s.repo.ListByDestination(ctx, destination)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to list activities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "list failed")
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	span.SetStatus(codes.Ok, "activities listed")
	return activities, nil
}

func (s *ServiceImpl) AddActivities(ctx context.Context, destination string, req types.AddActivitiesRequest) ([]types.CatalogActivity, error) {
	ctx, span := otel.Tracer("ActivityService").Start(ctx, "AddActivities", trace.WithAttributes(
		attribute.String("destination", destination),
		attribute.Int("activities.requested", len(req.Activities)),
	))
	defer span.End()

	destination, err := normalizeDestination(destination)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	activities, err := parseActivities(req.Activities)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	created, err := s.repo.SaveActivities(ctx, destination, activities)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to save activities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return nil, fmt.Errorf("failed to save activities: %w", err)
	}
	if len(created) > 0 && s.invalidator != nil {
		s.invalidator.Invalidate(destination)
	}

	span.SetStatus(codes.Ok, "activities saved")
	return created, nil
}

func normalizeDestination(destination string) (string, error) {
	destination = strings.Join(strings.Fields(destination), " ")
	if len([]rune(destination)) < 2 {
		return "", fmt.Errorf("%w: destination must be at least 2 characters", types.ErrInvalidInput)
	}
	return destination, nil
}

func parseActivities(in []types.NewActivityRequest) ([]types.Activity, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one activity is required", types.ErrInvalidInput)
	}

	out := make([]types.Activity, 0, len(in))
	for i, a := range in {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: activity %d has no name", types.ErrInvalidInput, i)
		}
		if strings.EqualFold(name, types.RestActivityName) {
			return nil, fmt.Errorf("%w: %q is reserved for filler activities", types.ErrInvalidInput, types.RestActivityName)
		}
		category, err := types.ParseActivityCategory(a.Category)
		if err != nil {
			return nil, err
		}
		out = append(out, types.Activity{Name: name, Category: category})
	}
	return lo.UniqBy(out, func(a types.Activity) string { return a.Name }), nil
}
