package metrics

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	PlanRequestsTotal      metric.Int64Counter
	PlanDurationSeconds    metric.Float64Histogram
	PlanAttempts           metric.Int64Histogram
	ActivityCacheLookups   metric.Int64Counter
	DbQueryDurationSeconds metric.Float64Histogram
	DbQueryErrorsTotal     metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// New creates the instruments on meter.
func New(meter metric.Meter) (*AppMetrics, error) {
	var err error
	m := &AppMetrics{}

	m.PlanRequestsTotal, err = meter.Int64Counter(
		"plan_requests_total",
		metric.WithDescription("Total number of itinerary planning runs"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("plan_requests_total: %w", err)
	}

	m.PlanDurationSeconds, err = meter.Float64Histogram(
		"plan_duration_seconds",
		metric.WithDescription("Duration of itinerary planning runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("plan_duration_seconds: %w", err)
	}

	m.PlanAttempts, err = meter.Int64Histogram(
		"plan_attempts",
		metric.WithDescription("Assignment passes needed per planning run"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("plan_attempts: %w", err)
	}

	m.ActivityCacheLookups, err = meter.Int64Counter(
		"activity_cache_lookups_total",
		metric.WithDescription("Activity pool cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("activity_cache_lookups_total: %w", err)
	}

	m.DbQueryDurationSeconds, err = meter.Float64Histogram(
		"db_query_duration_seconds",
		metric.WithDescription("Duration of database queries in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("db_query_duration_seconds: %w", err)
	}

	m.DbQueryErrorsTotal, err = meter.Int64Counter(
		"db_query_errors_total",
		metric.WithDescription("Total number of database query errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("db_query_errors_total: %w", err)
	}

	return m, nil
}

// InitAppMetrics initializes the global instruments ONLY ONCE from the
// globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		m, err := New(otel.GetMeterProvider().Meter("TripWeave"))
		if err != nil {
			log.Fatalf("Metrics: %v", err)
		}
		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}

// RecordPlan records one finished planning run. outcome is one of
// "complete", "best_effort" or "error".
func (m *AppMetrics) RecordPlan(ctx context.Context, style, outcome string, attempts int, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("travel_style", style),
		attribute.String("outcome", outcome),
	)
	m.PlanRequestsTotal.Add(ctx, 1, attrs)
	m.PlanDurationSeconds.Record(ctx, elapsed.Seconds(), attrs)
	if attempts > 0 {
		m.PlanAttempts.Record(ctx, int64(attempts), attrs)
	}
}

func (m *AppMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.ActivityCacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordQuery records a database query's latency and, when err is set, an error.
func (m *AppMetrics) RecordQuery(ctx context.Context, query string, start time.Time, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("query", query))
	m.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.DbQueryErrorsTotal.Add(ctx, 1, attrs)
	}
}
