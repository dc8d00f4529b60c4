package gallery

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

var _ Repository = (*PostgresGalleryRepo)(nil)

// Repository stores gallery image metadata. The image binaries themselves
// live in object storage; StoragePath is the pointer.
type Repository interface {
	List(ctx context.Context) ([]types.GalleryImage, error)
	Create(ctx context.Context, params types.UpsertGalleryImageParams) (*types.GalleryImage, error)
	Update(ctx context.Context, id uuid.UUID, params types.UpsertGalleryImageParams) (*types.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresGalleryRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresGalleryRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresGalleryRepo {
	return &PostgresGalleryRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const galleryColumns = `id, storage_path, alt_text, category, sort_order, created_at`

func scanImage(row pgx.Row) (*types.GalleryImage, error) {
	var img types.GalleryImage
	err := row.Scan(&img.ID, &img.StoragePath, &img.AltText, &img.Category, &img.SortOrder, &img.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *PostgresGalleryRepo) List(ctx context.Context) ([]types.GalleryImage, error) {
	ctx, span := otel.Tracer("GalleryRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "gallery_images"),
	))
	defer span.End()

	rows, err := r.pgpool.Query(ctx,
		`SELECT `+galleryColumns+` FROM gallery_images ORDER BY category, sort_order, created_at`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	defer rows.Close()

	var out []types.GalleryImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan gallery row: %w", err)
		}
		out = append(out, *img)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("gallery rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresGalleryRepo) Create(ctx context.Context, params types.UpsertGalleryImageParams) (*types.GalleryImage, error) {
	ctx, span := otel.Tracer("GalleryRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "gallery_images"),
	))
	defer span.End()

	query := `
		INSERT INTO gallery_images (storage_path, alt_text, category, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + galleryColumns
	img, err := scanImage(r.pgpool.QueryRow(ctx, query,
		params.StoragePath, params.AltText, params.Category, params.SortOrder,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert gallery image", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert gallery image: %w", err)
	}
	return img, nil
}

func (r *PostgresGalleryRepo) Update(ctx context.Context, id uuid.UUID, params types.UpsertGalleryImageParams) (*types.GalleryImage, error) {
	ctx, span := otel.Tracer("GalleryRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "gallery_images"),
		attribute.String("image.id", id.String()),
	))
	defer span.End()

	query := `
		UPDATE gallery_images
		SET storage_path = $2, alt_text = $3, category = $4, sort_order = $5
		WHERE id = $1
		RETURNING ` + galleryColumns
	img, err := scanImage(r.pgpool.QueryRow(ctx, query,
		id, params.StoragePath, params.AltText, params.Category, params.SortOrder,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("gallery image %s: %w", id, types.ErrNotFound)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return nil, fmt.Errorf("failed to update gallery image: %w", err)
	}
	return img, nil
}

func (r *PostgresGalleryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("GalleryRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "gallery_images"),
		attribute.String("image.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM gallery_images WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("gallery image %s: %w", id, types.ErrNotFound)
	}
	return nil
}
