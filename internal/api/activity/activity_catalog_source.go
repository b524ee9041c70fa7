package activity

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/Vivek13121/TripWeave/internal/planner"
	"github.com/Vivek13121/TripWeave/internal/types"
)

var _ planner.ActivitySource = (*CatalogSource)(nil)

// CatalogSource serves activities from the catalog and falls back to
// another source for destinations the catalog does not know.
type CatalogSource struct {
	repo     Repository
	fallback planner.ActivitySource
	logger   *slog.Logger
}

func NewCatalogSource(repo Repository, fallback planner.ActivitySource, logger *slog.Logger) *CatalogSource {
	return &CatalogSource{repo: repo, fallback: fallback, logger: logger}
}

func (s *CatalogSource) Fetch(ctx context.Context, destination string) ([]types.Activity, error) {
	rows, err := s.repo.ListByDestination(ctx, destination)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to load activity catalog", slog.String("destination", destination), slog.Any("error", err))
		return nil, fmt.Errorf("failed to load activity catalog: %w", err)
	}
	if len(rows) == 0 {
		s.logger.DebugContext(ctx, "No catalog entries, using fallback source", slog.String("destination", destination))
		return s.fallback.Fetch(ctx, destination)
	}
	return lo.Map(rows, func(row types.CatalogActivity, _ int) types.Activity {
		return row.Activity
	}), nil
}
