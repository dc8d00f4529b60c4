package leads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/app/observability/metrics"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// Submit validates and stores a contact-form submission.
	Submit(ctx context.Context, params types.CreateLeadParams) (*types.Lead, error)

	// List returns leads for the admin panel, optionally filtered by status.
	List(ctx context.Context, status *types.LeadStatus) ([]types.Lead, error)

	// SetStatus moves a lead through new → contacted → closed.
	SetStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) error

	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewLeadsService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) Submit(ctx context.Context, params types.CreateLeadParams) (*types.Lead, error) {
	ctx, span := otel.Tracer("LeadsService").Start(ctx, "Submit", trace.WithAttributes(
		attribute.String("lead.source_page", params.SourcePage),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Submit"))

	params.Name = strings.TrimSpace(params.Name)
	params.Phone = strings.TrimSpace(params.Phone)
	params.Email = strings.TrimSpace(params.Email)
	if params.Name == "" {
		return nil, fmt.Errorf("lead needs a name: %w", types.ErrValidation)
	}
	if params.Phone == "" && params.Email == "" {
		return nil, fmt.Errorf("lead needs a phone number or an email: %w", types.ErrValidation)
	}

	lead, err := s.repo.Create(ctx, params)
	if err != nil {
		l.ErrorContext(ctx, "Failed to store lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to store lead")
		return nil, fmt.Errorf("error storing lead: %w", err)
	}

	if m := metrics.Get(); m != nil {
		m.LeadsCreatedTotal.Add(ctx, 1)
	}
	l.InfoContext(ctx, "Lead stored", slog.String("lead_id", lead.ID.String()), slog.String("source_page", lead.SourcePage))
	return lead, nil
}

func (s *ServiceImpl) List(ctx context.Context, status *types.LeadStatus) ([]types.Lead, error) {
	ctx, span := otel.Tracer("LeadsService").Start(ctx, "List")
	defer span.End()

	out, err := s.repo.List(ctx, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list leads")
		return nil, fmt.Errorf("error listing leads: %w", err)
	}
	return out, nil
}

func (s *ServiceImpl) SetStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) error {
	ctx, span := otel.Tracer("LeadsService").Start(ctx, "SetStatus", trace.WithAttributes(
		attribute.String("lead.id", id.String()),
		attribute.String("lead.status", string(status)),
	))
	defer span.End()

	switch status {
	case types.LeadStatusNew, types.LeadStatusContacted, types.LeadStatusClosed:
	default:
		return fmt.Errorf("unknown lead status %q: %w", status, types.ErrValidation)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update lead status")
		return fmt.Errorf("error updating lead status: %w", err)
	}
	return nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("LeadsService").Start(ctx, "Delete")
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete lead")
		return fmt.Errorf("error deleting lead: %w", err)
	}
	return nil
}
