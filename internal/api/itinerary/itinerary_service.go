package itinerary

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vivek13121/TripWeave/app/observability/metrics"
	"github.com/Vivek13121/TripWeave/internal/planner"
	"github.com/Vivek13121/TripWeave/internal/types"
)

const (
	ResponsePlanned    = "Itinerary planned."
	ResponseBestEffort = "Itinerary planned with unresolved issues."
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// PlanItinerary plans trip. A nil seed draws a fresh one; the seed
	// used is echoed in the response.
	PlanItinerary(ctx context.Context, trip types.TripParameters, seed *int64) (*types.ItineraryResponse, error)
}

type ServiceImpl struct {
	logger     *slog.Logger
	planner    *planner.Planner
	source     planner.ActivitySource
	maxRetries int
	metrics    *metrics.AppMetrics
	newSeed    func() int64
}

func NewServiceImpl(p *planner.Planner, source planner.ActivitySource, maxRetries int, logger *slog.Logger, m *metrics.AppMetrics) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		planner:    p,
		source:     source,
		maxRetries: maxRetries,
		metrics:    m,
		newSeed:    func() int64 { return time.Now().UnixNano() },
	}
}

func (s *ServiceImpl) PlanItinerary(ctx context.Context, trip types.TripParameters, seed *int64) (*types.ItineraryResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "PlanItinerary", trace.WithAttributes(
		attribute.String("destination", trip.Destination),
		attribute.Int("days", trip.Days),
	))
	defer span.End()

	var planSeed int64
	if seed != nil {
		planSeed = *seed
	} else {
		planSeed = s.newSeed()
	}
	span.SetAttributes(attribute.Int64("seed", planSeed))

	// rand.Rand is not safe for concurrent use; every run gets its own.
	rng := rand.New(rand.NewSource(planSeed))

	start := time.Now()
	result, err := s.planner.Plan(ctx, trip, s.source, rng, s.maxRetries)
	if err != nil {
		s.metrics.RecordPlan(ctx, string(trip.TravelStyle), "error", 0, time.Since(start))
		s.logger.ErrorContext(ctx, "Failed to plan itinerary", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "planning failed")
		return nil, err
	}

	outcome, text := "complete", ResponsePlanned
	if !result.Complete() {
		outcome, text = "best_effort", ResponseBestEffort
	}
	s.metrics.RecordPlan(ctx, string(trip.TravelStyle), outcome, result.Attempts, time.Since(start))

	resp := &types.ItineraryResponse{
		PlanID:       uuid.New(),
		Response:     text,
		Destination:  trip.Destination,
		NumberOfDays: trip.Days,
		TravelStyle:  trip.TravelStyle,
		BudgetLevel:  trip.BudgetLevel,
		Itinerary:    result.Itinerary,
		Complete:     result.Complete(),
		Attempts:     result.Attempts,
		Seed:         planSeed,
	}
	if !result.Complete() {
		resp.ValidationErrors = result.Report.Errors
	}

	s.logger.InfoContext(ctx, "Itinerary planned",
		slog.String("plan_id", resp.PlanID.String()),
		slog.String("outcome", outcome),
		slog.Int("attempts", result.Attempts))
	span.SetAttributes(attribute.String("plan.outcome", outcome))
	span.SetStatus(codes.Ok, "itinerary planned")
	return resp, nil
}
