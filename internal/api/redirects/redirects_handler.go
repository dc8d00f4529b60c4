package redirects

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/robinroyhansen/maler-christensen-api/internal/api"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

type Handler struct {
	logger   *slog.Logger
	repo     Repository
	resolver *Resolver
}

func NewRedirectsHandler(repo Repository, resolver *Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		logger:   logger,
		repo:     repo,
		resolver: resolver,
	}
}

// List handles GET /admin/redirects.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RedirectsHandler").Start(r.Context(), "List")
	defer span.End()

	out, err := h.repo.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list redirects", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Repository operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list redirects")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// Create handles POST /admin/redirects (upsert by from_path).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RedirectsHandler").Start(r.Context(), "Create")
	defer span.End()

	var params types.UpsertRedirectParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !strings.HasPrefix(params.FromPath, "/") || !strings.HasPrefix(params.ToPath, "/") {
		api.ErrorResponse(w, r, http.StatusBadRequest, "from_path and to_path must be absolute paths")
		return
	}
	if params.FromPath == params.ToPath {
		api.ErrorResponse(w, r, http.StatusBadRequest, "a redirect cannot point at itself")
		return
	}

	rd, err := h.repo.Create(ctx, params)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to save redirect", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to save redirect")
		return
	}

	// Snapshot refresh failure is not fatal; the rule lands on next reload.
	_ = h.resolver.Reload(ctx)
	api.WriteJSONResponse(w, r, http.StatusCreated, rd)
}

// Delete handles DELETE /admin/redirects/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("RedirectsHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid redirect id")
		return
	}
	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Redirect not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete redirect", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete redirect")
		return
	}
	_ = h.resolver.Reload(ctx)
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
