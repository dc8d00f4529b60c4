package blog

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

	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	ListPublished(ctx context.Context) ([]types.BlogPost, error)
	ListAll(ctx context.Context) ([]types.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*types.BlogPost, error)
	Create(ctx context.Context, params types.UpsertBlogPostParams) (*types.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpsertBlogPostParams) (*types.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewBlogService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ServiceImpl) ListPublished(ctx context.Context) ([]types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "ListPublished")
	defer span.End()

	out, err := s.repo.List(ctx, true)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list published posts")
		return nil, fmt.Errorf("error listing published posts: %w", err)
	}
	return out, nil
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "ListAll")
	defer span.End()

	out, err := s.repo.List(ctx, false)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list posts")
		return nil, fmt.Errorf("error listing posts: %w", err)
	}
	return out, nil
}

func (s *ServiceImpl) GetBySlug(ctx context.Context, slug string) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "GetBySlug", trace.WithAttributes(
		attribute.String("blog.slug", slug),
	))
	defer span.End()

	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error fetching post: %w", err)
	}
	return p, nil
}

func normalize(params types.UpsertBlogPostParams) (types.UpsertBlogPostParams, error) {
	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return params, fmt.Errorf("blog post needs a title: %w", types.ErrValidation)
	}
	if params.Slug == "" {
		params.Slug = registry.Slugify(params.Title)
	}
	return params, nil
}

func (s *ServiceImpl) Create(ctx context.Context, params types.UpsertBlogPostParams) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "Create")
	defer span.End()

	params, err := normalize(params)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.Create(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create blog post", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create post")
		return nil, fmt.Errorf("error creating post: %w", err)
	}
	return p, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id uuid.UUID, params types.UpsertBlogPostParams) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("blog.id", id.String()),
	))
	defer span.End()

	params, err := normalize(params)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.Update(ctx, id, params)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update post")
		return nil, fmt.Errorf("error updating post: %w", err)
	}
	return p, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("BlogService").Start(ctx, "Delete")
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete post")
		return fmt.Errorf("error deleting post: %w", err)
	}
	return nil
}
