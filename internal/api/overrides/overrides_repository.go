package overrides

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Repository = (*PostgresOverridesRepo)(nil)

type Repository interface {
	// GetBySlug returns the override row for a slug+kind, or nil when no row
	// has ever been saved. Absence is not an error.
	GetBySlug(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error)

	// ListByKind returns all override rows of one kind, ordered by slug.
	ListByKind(ctx context.Context, kind types.OverrideKind) ([]types.ContentOverrideRecord, error)

	// Upsert saves the row for slug+kind, last-write-wins.
	Upsert(ctx context.Context, rec types.ContentOverrideRecord) (*types.ContentOverrideRecord, error)

	// Delete removes the row for slug+kind. Returns types.ErrNotFound when
	// there is nothing to delete.
	Delete(ctx context.Context, kind types.OverrideKind, slug string) error
}

// pgxPool is the slice of pgxpool.Pool the repository uses; tests swap in a
// pgxmock pool through it.
type pgxPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresOverridesRepo struct {
	logger *slog.Logger
	pgpool pgxPool
}

func NewPostgresOverridesRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresOverridesRepo {
	return &PostgresOverridesRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

const overrideColumns = `
	slug, kind, name, meta_title, meta_description, hero_title, hero_subtitle,
	intro, sections, distance_km, visible, created_at, updated_at
`

func scanOverride(row pgx.Row) (*types.ContentOverrideRecord, error) {
	var rec types.ContentOverrideRecord
	err := row.Scan(
		&rec.Slug, &rec.Kind, &rec.Name, &rec.MetaTitle, &rec.MetaDescription,
		&rec.HeroTitle, &rec.HeroSubtitle, &rec.Intro, &rec.Sections,
		&rec.Distance, &rec.Visible, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresOverridesRepo) GetBySlug(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error) {
	ctx, span := otel.Tracer("OverridesRepo").Start(ctx, "GetBySlug", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "content_overrides"),
		attribute.String("override.slug", slug),
	))
	defer span.End()

	query := `SELECT ` + overrideColumns + ` FROM content_overrides WHERE kind = $1 AND slug = $2`
	rec, err := scanOverride(r.pgpool.QueryRow(ctx, query, kind, slug))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.ErrorContext(ctx, "Failed to query override", slog.String("slug", slug), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to query override: %w", err)
	}
	return rec, nil
}

func (r *PostgresOverridesRepo) ListByKind(ctx context.Context, kind types.OverrideKind) ([]types.ContentOverrideRecord, error) {
	ctx, span := otel.Tracer("OverridesRepo").Start(ctx, "ListByKind", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "content_overrides"),
		attribute.String("override.kind", string(kind)),
	))
	defer span.End()

	query := `SELECT ` + overrideColumns + ` FROM content_overrides WHERE kind = $1 ORDER BY slug`
	rows, err := r.pgpool.Query(ctx, query, kind)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	defer rows.Close()

	var out []types.ContentOverrideRecord
	for rows.Next() {
		rec, err := scanOverride(rows)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan override row: %w", err)
		}
		out = append(out, *rec)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("override rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresOverridesRepo) Upsert(ctx context.Context, rec types.ContentOverrideRecord) (*types.ContentOverrideRecord, error) {
	ctx, span := otel.Tracer("OverridesRepo").Start(ctx, "Upsert", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "content_overrides"),
		attribute.String("override.slug", rec.Slug),
	))
	defer span.End()

	query := `
		INSERT INTO content_overrides (
			slug, kind, name, meta_title, meta_description, hero_title,
			hero_subtitle, intro, sections, distance_km, visible
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (kind, slug) DO UPDATE SET
			name = EXCLUDED.name,
			meta_title = EXCLUDED.meta_title,
			meta_description = EXCLUDED.meta_description,
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			intro = EXCLUDED.intro,
			sections = EXCLUDED.sections,
			distance_km = EXCLUDED.distance_km,
			visible = EXCLUDED.visible,
			updated_at = now()
		RETURNING ` + overrideColumns

	saved, err := scanOverride(r.pgpool.QueryRow(ctx, query,
		rec.Slug, rec.Kind, rec.Name, rec.MetaTitle, rec.MetaDescription,
		rec.HeroTitle, rec.HeroSubtitle, rec.Intro, rec.Sections,
		rec.Distance, rec.Visible,
	))
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to upsert override", slog.String("slug", rec.Slug), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert failed")
		return nil, fmt.Errorf("failed to upsert override: %w", err)
	}
	return saved, nil
}

func (r *PostgresOverridesRepo) Delete(ctx context.Context, kind types.OverrideKind, slug string) error {
	ctx, span := otel.Tracer("OverridesRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "content_overrides"),
		attribute.String("override.slug", slug),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM content_overrides WHERE kind = $1 AND slug = $2`, kind, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("override %s/%s: %w", kind, slug, types.ErrNotFound)
	}
	return nil
}
