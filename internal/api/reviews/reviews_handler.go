package reviews

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/robinroyhansen/maler-christensen-api/internal/api"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewReviewsHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListPublished handles GET /anmeldelser.
func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "ListPublished")
	defer span.End()

	out, err := h.service.ListPublished(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list published reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// ListAll handles GET /admin/reviews.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "ListAll")
	defer span.End()

	out, err := h.service.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list reviews", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list reviews")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// Create handles POST /admin/reviews.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.UpsertReviewParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rv, err := h.service.Create(ctx, params)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to create review", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create review")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, rv)
}

// Update handles PUT /admin/reviews/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "Update")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid review id")
		return
	}
	var params types.UpsertReviewParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	rv, err := h.service.Update(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrValidation):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, "Review not found")
		default:
			h.logger.ErrorContext(ctx, "Failed to update review", slog.Any("error", err))
			span.RecordError(err)
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update review")
		}
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, rv)
}

// Delete handles DELETE /admin/reviews/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ReviewsHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid review id")
		return
	}
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Review not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete review", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete review")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
