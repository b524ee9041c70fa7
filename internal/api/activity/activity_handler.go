package activity

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
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

// ListActivities godoc
// @Summary      List catalog activities
// @Description  Returns the stored activities for a destination.
// @Tags         Activities
// @Produce      json
// @Param        destination  path      string  true  "Destination name"
// @Success      200          {array}   types.CatalogActivity
// @Failure      400          {object}  api.Response
// @Failure      500          {object}  api.Response
// @Router       /destinations/{destination}/activities [get]
func (h *HandlerImpl) ListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ActivityHandler").Start(r.Context(), "ListActivities", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/destinations/{destination}/activities"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "ListActivities"))
	destination := chi.URLParam(r, "destination")

	activities, err := h.service.ListActivities(ctx, destination)
	if err != nil {
		if errors.Is(err, types.ErrInvalidInput) {
			l.WarnContext(ctx, "Invalid destination", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to list activities", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list activities")
		return
	}

	l.InfoContext(ctx, "Activities listed", slog.Int("count", len(activities)))
	api.WriteJSONResponse(w, r, http.StatusOK, activities)
}

// AddActivities godoc
// @Summary      Add catalog activities
// @Description  Stores new activities for a destination. Names already in the catalog are skipped.
// @Tags         Activities
// @Accept       json
// @Produce      json
// @Param        destination  path      string                      true  "Destination name"
// @Param        request      body      types.AddActivitiesRequest  true  "Activities to add"
// @Success      201          {array}   types.CatalogActivity
// @Failure      400          {object}  api.Response
// @Failure      500          {object}  api.Response
// @Router       /destinations/{destination}/activities [post]
func (h *HandlerImpl) AddActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ActivityHandler").Start(r.Context(), "AddActivities", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/v1/destinations/{destination}/activities"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "AddActivities"))
	destination := chi.URLParam(r, "destination")

	var req types.AddActivitiesRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.service.AddActivities(ctx, destination, req)
	if err != nil {
		if errors.Is(err, types.ErrInvalidInput) {
			l.WarnContext(ctx, "Invalid activities", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		l.ErrorContext(ctx, "Failed to add activities", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to add activities")
		return
	}

	l.InfoContext(ctx, "Activities added", slog.Int("created", len(created)))
	api.WriteJSONResponse(w, r, http.StatusCreated, created)
}
