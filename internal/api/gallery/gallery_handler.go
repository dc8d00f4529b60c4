package gallery

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
	logger *slog.Logger
	repo   Repository
}

func NewGalleryHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		repo:   repo,
	}
}

// List handles GET /galleri and GET /admin/gallery.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GalleryHandler").Start(r.Context(), "List")
	defer span.End()

	out, err := h.repo.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list gallery images", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list gallery images")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// Create handles POST /admin/gallery.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GalleryHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.UpsertGalleryImageParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if params.StoragePath == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "storage_path is required")
		return
	}
	img, err := h.repo.Create(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to create gallery image", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create gallery image")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, img)
}

// Update handles PUT /admin/gallery/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GalleryHandler").Start(r.Context(), "Update")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid image id")
		return
	}
	var params types.UpsertGalleryImageParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	img, err := h.repo.Update(ctx, id, params)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Gallery image not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to update gallery image", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update gallery image")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, img)
}

// Delete handles DELETE /admin/gallery/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GalleryHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid image id")
		return
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Gallery image not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete gallery image", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete gallery image")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
