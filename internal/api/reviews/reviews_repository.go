package reviews

import (
	"context"
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

var _ Repository = (*PostgresReviewsRepo)(nil)

type Repository interface {
	List(ctx context.Context, publishedOnly bool) ([]types.Review, error)
	Create(ctx context.Context, params types.UpsertReviewParams) (*types.Review, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpsertReviewParams) (*types.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresReviewsRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresReviewsRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresReviewsRepo {
	return &PostgresReviewsRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const reviewColumns = `id, author, city, rating, body, published, reviewed_at, created_at`

func scanReview(row pgx.Row) (*types.Review, error) {
	var rv types.Review
	err := row.Scan(&rv.ID, &rv.Author, &rv.City, &rv.Rating, &rv.Body, &rv.Published, &rv.ReviewedAt, &rv.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *PostgresReviewsRepo) List(ctx context.Context, publishedOnly bool) ([]types.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "reviews"),
		attribute.Bool("reviews.published_only", publishedOnly),
	))
	defer span.End()

	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE ($1 = false OR published) ORDER BY reviewed_at DESC`
	rows, err := r.pgpool.Query(ctx, query, publishedOnly)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var out []types.Review
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		out = append(out, *rv)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("review rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresReviewsRepo) Create(ctx context.Context, params types.UpsertReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "reviews"),
	))
	defer span.End()

	query := `
		INSERT INTO reviews (author, city, rating, body, published, reviewed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reviewColumns
	rv, err := scanReview(r.pgpool.QueryRow(ctx, query,
		params.Author, params.City, params.Rating, params.Body, params.Published, params.ReviewedAt,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return rv, nil
}

func (r *PostgresReviewsRepo) Update(ctx context.Context, id uuid.UUID, params types.UpsertReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewsRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "reviews"),
		attribute.String("review.id", id.String()),
	))
	defer span.End()

	query := `
		UPDATE reviews
		SET author = $2, city = $3, rating = $4, body = $5, published = $6, reviewed_at = $7
		WHERE id = $1
		RETURNING ` + reviewColumns
	rv, err := scanReview(r.pgpool.QueryRow(ctx, query,
		id, params.Author, params.City, params.Rating, params.Body, params.Published, params.ReviewedAt,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("review %s: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return rv, nil
}

func (r *PostgresReviewsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("ReviewsRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "reviews"),
		attribute.String("review.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id, types.ErrNotFound)
	}
	return nil
}
