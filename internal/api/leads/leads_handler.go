package leads

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

func NewLeadsHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Submit handles POST /kontakt - the public contact form.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadsHandler").Start(r.Context(), "Submit")
	defer span.End()

	var params types.CreateLeadParams
	if err := api.DecodeJSONBody(w, r, &params); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := h.service.Submit(ctx, params)
	if err != nil {
		if errors.Is(err, types.ErrValidation) {
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.ErrorContext(ctx, "Failed to submit lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusCreated, lead)
}

// List handles GET /admin/leads?status=new.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadsHandler").Start(r.Context(), "List")
	defer span.End()

	var status *types.LeadStatus
	if q := r.URL.Query().Get("status"); q != "" {
		st := types.LeadStatus(q)
		status = &st
	}

	out, err := h.service.List(ctx, status)
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to list leads", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to list leads")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, out)
}

// SetStatus handles PUT /admin/leads/{id}/status.
func (h *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadsHandler").Start(r.Context(), "SetStatus")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var body struct {
		Status types.LeadStatus `json:"status"`
	}
	if err := api.DecodeJSONBody(w, r, &body); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetStatus(ctx, id, body.Status); err != nil {
		switch {
		case errors.Is(err, types.ErrValidation):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNotFound):
			api.ErrorResponse(w, r, http.StatusNotFound, "Lead not found")
		default:
			h.logger.ErrorContext(ctx, "Failed to update lead status", slog.Any("error", err))
			span.RecordError(err)
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update lead")
		}
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}

// Delete handles DELETE /admin/leads/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("LeadsHandler").Start(r.Context(), "Delete")
	defer span.End()

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid lead id")
		return
	}
	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Lead not found")
			return
		}
		h.logger.ErrorContext(ctx, "Failed to delete lead", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete lead")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusNoContent, nil)
}
