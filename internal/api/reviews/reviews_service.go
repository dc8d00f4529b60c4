package reviews

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// ListPublished feeds the public site; newest first, published only.
	ListPublished(ctx context.Context) ([]types.Review, error)

	// ListAll feeds the admin moderation screen.
	ListAll(ctx context.Context) ([]types.Review, error)

	Create(ctx context.Context, params types.UpsertReviewParams) (*types.Review, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpsertReviewParams) (*types.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewReviewsService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) ListPublished(ctx context.Context) ([]types.Review, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "ListPublished")
	defer span.End()

	out, err := s.repo.List(ctx, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list published reviews")
		return nil, fmt.Errorf("error listing published reviews: %w", err)
	}
	return out, nil
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]types.Review, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "ListAll")
	defer span.End()

	out, err := s.repo.List(ctx, false)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list reviews")
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	return out, nil
}

func validate(params types.UpsertReviewParams) error {
	if params.Author == "" || params.Body == "" {
		return fmt.Errorf("review needs an author and a body: %w", types.ErrValidation)
	}
	if params.Rating < 1 || params.Rating > 5 {
		return fmt.Errorf("review rating must be 1-5: %w", types.ErrValidation)
	}
	return nil
}

func (s *ServiceImpl) Create(ctx context.Context, params types.UpsertReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "Create")
	defer span.End()

	if err := validate(params); err != nil {
		return nil, err
	}
	rv, err := s.repo.Create(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create review")
		return nil, fmt.Errorf("error creating review: %w", err)
	}
	return rv, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id uuid.UUID, params types.UpsertReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("review.id", id.String()),
	))
	defer span.End()

	if err := validate(params); err != nil {
		return nil, err
	}
	rv, err := s.repo.Update(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update review")
		return nil, fmt.Errorf("error updating review: %w", err)
	}
	return rv, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("ReviewsService").Start(ctx, "Delete")
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete review")
		return fmt.Errorf("error deleting review: %w", err)
	}
	return nil
}
