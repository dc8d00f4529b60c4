package overrides

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/robinroyhansen/maler-christensen-api/internal/api"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewOverridesHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

func overrideKind(r *http.Request) (types.OverrideKind, bool) {
	switch types.OverrideKind(chi.URLParam(r, "kind")) {
	case types.OverrideKindService:
		return types.OverrideKindService, true
	case types.OverrideKindCity:
		return types.OverrideKindCity, true
	case types.OverrideKindStatic:
		return types.OverrideKindStatic, true
	}
	return "", false
}

// ListCities handles GET /admin/cities - merged admin view models.
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("OverridesHandler").Start(r.Context(), "ListCities")
	defer span.End()

	views, err := h.service.ListAdminCities(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list admin cities", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list cities")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// ListServices handles GET /admin/services.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("OverridesHandler").Start(r.Context(), "ListServices")
	defer span.End()

	views, err := h.service.ListAdminServices(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list admin services", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list services")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, views)
}

// Get handles GET /admin/overrides/{kind}/{slug} - the raw override row.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("OverridesHandler").Start(r.Context(), "Get")
	defer span.End()

	kind, ok := overrideKind(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown override kind")
		return
	}
	rec, err := h.service.Get(ctx, kind, chi.URLParam(r, "slug"))
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to fetch override", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch override")
		return
	}
	if rec == nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "No override saved for this page")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, rec)
}

// Save handles PUT /admin/overrides/{kind}/{slug} and POST /admin/overrides/{kind}.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("OverridesHandler").Start(r.Context(), "Save")
	defer span.End()

	kind, ok := overrideKind(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown override kind")
		return
	}

	var rec types.ContentOverrideRecord
	if err := api.DecodeJSONBody(w, r, &rec); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rec.Kind = kind
	if slug := chi.URLParam(r, "slug"); slug != "" {
		rec.Slug = slug
	}

	saved, err := h.service.Save(ctx, rec)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to save override", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to save override")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, saved)
}

// Delete handles DELETE /admin/overrides/{kind}/{slug}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("OverridesHandler").Start(r.Context(), "Delete")
	defer span.End()

	kind, ok := overrideKind(r)
	if !ok {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Unknown override kind")
		return
	}
	if err := h.service.Delete(ctx, kind, chi.URLParam(r, "slug")); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "No override saved for this page")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete override", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete override")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
