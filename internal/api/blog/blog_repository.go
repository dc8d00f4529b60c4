package blog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Repository = (*PostgresBlogRepo)(nil)

type Repository interface {
	List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*types.BlogPost, error)
	Create(ctx context.Context, params types.UpsertBlogPostParams) (*types.BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpsertBlogPostParams) (*types.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresBlogRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresBlogRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresBlogRepo {
	return &PostgresBlogRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const blogColumns = `
	id, title, slug, excerpt, body, meta_title, meta_description,
	published, published_at, created_at, updated_at
`

func scanPost(row pgx.Row) (*types.BlogPost, error) {
	var p types.BlogPost
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.MetaTitle,
		&p.MetaDescription, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresBlogRepo) List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "blog_posts"),
		attribute.Bool("blog.published_only", publishedOnly),
	))
	defer span.End()

	query := `
		SELECT ` + blogColumns + ` FROM blog_posts
		WHERE ($1 = false OR published)
		ORDER BY COALESCE(published_at, created_at) DESC
	`
	rows, err := r.pgpool.Query(ctx, query, publishedOnly)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	var out []types.BlogPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan blog post row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("blog post rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresBlogRepo) GetBySlug(ctx context.Context, slug string) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogRepo").Start(ctx, "GetBySlug", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "blog_posts"),
		attribute.String("blog.slug", slug),
	))
	defer span.End()

	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE slug = $1`
	p, err := scanPost(r.pgpool.QueryRow(ctx, query, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("blog post %q: %w", slug, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query blog post: %w", err)
	}
	return p, nil
}

func (r *PostgresBlogRepo) Create(ctx context.Context, params types.UpsertBlogPostParams) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "blog_posts"),
	))
	defer span.End()

	query := `
		INSERT INTO blog_posts (title, slug, excerpt, body, meta_title, meta_description, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CASE WHEN $7 THEN now() END)
		RETURNING ` + blogColumns
	p, err := scanPost(r.pgpool.QueryRow(ctx, query,
		params.Title, params.Slug, params.Excerpt, params.Body,
		params.MetaTitle, params.MetaDescription, params.Published,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert blog post", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert blog post: %w", err)
	}
	return p, nil
}

func (r *PostgresBlogRepo) Update(ctx context.Context, id uuid.UUID, params types.UpsertBlogPostParams) (*types.BlogPost, error) {
	ctx, span := otel.Tracer("BlogRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "blog_posts"),
		attribute.String("blog.id", id.String()),
	))
	defer span.End()

	// published_at is stamped on the first publish and kept thereafter.
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, excerpt = $4, body = $5, meta_title = $6,
		    meta_description = $7, published = $8,
		    published_at = CASE WHEN $8 AND published_at IS NULL THEN now() ELSE published_at END,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + blogColumns
	p, err := scanPost(r.pgpool.QueryRow(ctx, query,
		id, params.Title, params.Slug, params.Excerpt, params.Body,
		params.MetaTitle, params.MetaDescription, params.Published,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("blog post %s: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return p, nil
}

func (r *PostgresBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("BlogRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "blog_posts"),
		attribute.String("blog.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s: %w", id, types.ErrNotFound)
	}
	return nil
}
