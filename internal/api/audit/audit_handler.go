package audit

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/robinroyhansen/maler-christensen-api/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewAuditHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Run handles GET /admin/seo-audit - on-demand, nothing is persisted.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuditHandler").Start(r.Context(), "Run")
	defer span.End()

	categories, err := h.service.Run(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "SEO audit failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Service operation failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "SEO audit failed")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, categories)
}
