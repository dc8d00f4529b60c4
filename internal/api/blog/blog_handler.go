package blog

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

func NewBlogHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// ListPublished handles GET /blog.
func (h *Handler) ListPublished(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "ListPublished")
	defer span.End()

	out, err := h.service.ListPublished(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list published posts", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// GetBySlug handles GET /blog/{slug}.
func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "GetBySlug")
	defer span.End()

	p, err := h.service.GetBySlug(ctx, chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to fetch post", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, p)
}

// ListAll handles GET /admin/blog.
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "ListAll")
	defer span.End()

	out, err := h.service.ListAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list posts", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list posts")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// Create handles POST /admin/blog.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.UpsertBlogPostParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.service.Create(ctx, params)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to create post", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create post")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, p)
}

// Update handles PUT /admin/blog/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "Update")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid post id")
		return
	}
	var params types.UpsertBlogPostParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	p, err := h.service.Update(ctx, id, params)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrValidation):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, "Post not found")
		default:
			h.logger.ErrorContext(ctx, "Failed to update post", slog.Any("error", err))
			span.RecordError(err)
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update post")
		}
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, p)
}

// Delete handles DELETE /admin/blog/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("BlogHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid post id")
		return
	}
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Post not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete post", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete post")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
