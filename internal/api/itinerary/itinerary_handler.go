package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Vivek13121/TripWeave/internal/api"
	"github.com/Vivek13121/TripWeave/internal/types"
)

type HandlerImpl struct {
	service Service
	logger  *slog.Logger
}

func NewHandlerImpl(service Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		service: service,
		logger:  logger,
	}
}

// PlanItinerary godoc
// @Summary      Plan an itinerary
// @Description  Builds a day-by-day itinerary with morning, afternoon and evening slots.
// @Description  When the retry budget runs out the best-effort result is returned with complete=false.
// @Tags         Itinerary
// @Accept       json
// @Produce      json
// @Param        request  body      types.PlanItineraryRequest  true  "Trip parameters"
// @Success      200      {object}  types.ItineraryResponse
// @Failure      400      {object}  api.Response
// @Failure      500      {object}  api.Response
// @Router       /itinerary/plan [post]
func (h *HandlerImpl) PlanItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "PlanItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/itinerary/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "PlanItinerary"))

	var req types.PlanItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trip, err := types.NewTripParameters(req.NumberOfDays, req.Destination, req.TravelStyle, req.BudgetLevel)
	if err != nil {
		l.WarnContext(ctx, "Invalid trip parameters", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(
		attribute.String("destination", trip.Destination),
		attribute.Int("days", trip.Days),
		attribute.String("travel_style", string(trip.TravelStyle)),
	)

	resp, err := h.service.PlanItinerary(ctx, trip, req.Seed)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, types.ErrInvalidInput) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to plan itinerary", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to plan itinerary")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}
