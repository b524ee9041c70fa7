package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vivek13121/TripWeave/internal/types"
)

// DefaultMaxRetries is used when Plan is given a negative retry budget.
const DefaultMaxRetries = 5

var (
	ErrNilRandomSource   = errors.New("planner: random source is nil")
	ErrNilActivitySource = errors.New("planner: activity source is nil")
)

type Planner struct {
	logger *slog.Logger
}

func NewPlanner(logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{logger: logger}
}

// Plan runs the planning state machine for trip.
//
// maxRetries bounds the number of re-assignments after the first pass. When
// the budget runs out the last repaired assignment is returned with its
// failed report; callers check PlanResult.Complete. An error is returned
// only for invalid input, a nil dependency, a failed activity fetch or a
// cancelled context.
func (p *Planner) Plan(ctx context.Context, trip types.TripParameters, source ActivitySource, rng RandomSource, maxRetries int) (*types.PlanResult, error) {
	ctx, span := otel.Tracer("Planner").Start(ctx, "Plan", trace.WithAttributes(
		attribute.Int("trip.days", trip.Days),
		attribute.String("trip.destination", trip.Destination),
		attribute.String("trip.travel_style", string(trip.TravelStyle)),
	))
	defer span.End()

	if err := trip.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid trip parameters")
		return nil, err
	}
	if rng == nil {
		span.SetStatus(codes.Error, "nil random source")
		return nil, ErrNilRandomSource
	}
	if source == nil {
		span.SetStatus(codes.Error, "nil activity source")
		return nil, ErrNilActivitySource
	}
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	l := p.logger.With(
		slog.String("destination", trip.Destination),
		slog.String("travel_style", string(trip.TravelStyle)),
		slog.Int("days", trip.Days),
	)

	var (
		state    = StatePlanning
		skeleton []types.DaySkeleton
		pool     []types.Activity
		days     []types.DayAssignment
		report   types.ValidationReport
		attempts int
		err      error
	)

	for state != StateDone {
		span.AddEvent(state.String())

		switch state {
		case StatePlanning:
			skeleton, err = BuildSkeleton(trip.Days, trip.TravelStyle)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "skeleton")
				return nil, err
			}
			state = StateResearching

		case StateResearching:
			pool, err = source.Fetch(ctx, trip.Destination)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "activity fetch failed")
				return nil, fmt.Errorf("failed to fetch activities for %q: %w", trip.Destination, err)
			}
			l.DebugContext(ctx, "Activity pool resolved", slog.Int("pool_size", len(pool)))
			state = StateAssigning

		case StateAssigning:
			if err = ctx.Err(); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "cancelled")
				return nil, err
			}
			attempts++
			days = Assign(skeleton, pool, rng)
			state = StateValidating

		case StateValidating:
			days, report = ValidateAndRepair(skeleton, days, trip.TravelStyle)
			switch {
			case report.Passed:
				state = StateDone
			case attempts > maxRetries:
				l.WarnContext(ctx, "Retry budget exhausted, returning best-effort itinerary",
					slog.Int("attempts", attempts),
					slog.Any("errors", report.Errors))
				state = StateDone
			default:
				l.DebugContext(ctx, "Validation failed, re-assigning",
					slog.Int("attempt", attempts),
					slog.Int("violations", len(report.Errors)))
				state = StateAssigning
			}
		}
	}

	span.SetAttributes(
		attribute.Int("plan.attempts", attempts),
		attribute.Bool("plan.complete", report.Passed),
	)
	span.SetStatus(codes.Ok, "itinerary planned")

	return &types.PlanResult{
		Skeleton:  skeleton,
		Itinerary: days,
		Report:    report,
		Attempts:  attempts,
	}, nil
}
