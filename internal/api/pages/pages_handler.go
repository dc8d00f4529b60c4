package pages

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"

	"github.com/robinroyhansen/maler-christensen-api/app/observability/metrics"
	"github.com/robinroyhansen/maler-christensen-api/internal/api"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewPagesHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListCities handles GET /byer - every visible city page view.
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "ListCities")
	defer span.End()

	views, err := h.service.ListCityPages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list city pages", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list city pages")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// GetCity handles GET /byer/{slug}.
func (h *Handler) GetCity(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "GetCity")
	defer span.End()

	view, err := h.service.GetCityPage(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "City page not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch city page", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch city page")
		return
	}
	countPageView(r, "city")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}

func countPageView(r *http.Request, kind string) {
	if m := metrics.Get(); m != nil {
		m.PageViewsTotal.Add(r.Context(), 1, metric.WithAttributes(attribute.String("page.kind", kind)))
	}
}

// GetCityFAQs handles GET /byer/{slug}/faq.
func (h *Handler) GetCityFAQs(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "GetCityFAQs")
	defer span.End()

	set, err := h.service.GetCityFAQs(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "City not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to generate city FAQs", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate FAQs")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, set)
}

// ListServices handles GET /ydelser.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "ListServices")
	defer span.End()

	views, err := h.service.ListServicePages(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list service pages", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list service pages")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// GetService handles GET /ydelser/{slug}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PagesHandler").Start(r.Context(), "GetService")
	defer span.End()

	view, err := h.service.GetServicePage(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Service page not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch service page", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch service page")
		return
	}
	countPageView(r, "service")
	api.WriteJSONResponse(w, r, http.StatusOK, view)
}
