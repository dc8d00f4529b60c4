package redirects

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Repository = (*PostgresRedirectsRepo)(nil)

type Repository interface {
	List(ctx context.Context) ([]types.Redirect, error)
	Create(ctx context.Context, params types.UpsertRedirectParams) (*types.Redirect, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresRedirectsRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresRedirectsRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresRedirectsRepo {
	return &PostgresRedirectsRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresRedirectsRepo) List(ctx context.Context) ([]types.Redirect, error) {
	ctx, span := otel.Tracer("RedirectsRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "redirects"),
	))
	defer span.End()

	rows, err := r.pgpool.Query(ctx,
		`SELECT id, from_path, to_path, status_code, created_at FROM redirects ORDER BY from_path`)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list redirects: %w", err)
	}
	defer rows.Close()

	var out []types.Redirect
	for rows.Next() {
		var rd types.Redirect
		if err := rows.Scan(&rd.ID, &rd.FromPath, &rd.ToPath, &rd.StatusCode, &rd.CreatedAt); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan redirect row: %w", err)
		}
		out = append(out, rd)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("redirect rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresRedirectsRepo) Create(ctx context.Context, params types.UpsertRedirectParams) (*types.Redirect, error) {
	ctx, span := otel.Tracer("RedirectsRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "redirects"),
		attribute.String("redirect.from_path", params.FromPath),
	))
	defer span.End()

	query := `
		INSERT INTO redirects (from_path, to_path, status_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (from_path) DO UPDATE SET
			to_path = EXCLUDED.to_path,
			status_code = EXCLUDED.status_code
		RETURNING id, from_path, to_path, status_code, created_at
	`
	var rd types.Redirect
	err := r.pgpool.QueryRow(ctx, query, params.FromPath, params.ToPath, params.StatusCode).Scan(
		&rd.ID, &rd.FromPath, &rd.ToPath, &rd.StatusCode, &rd.CreatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to upsert redirect", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "upsert failed")
		return nil, fmt.Errorf("failed to upsert redirect: %w", err)
	}
	return &rd, nil
}

func (r *PostgresRedirectsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("RedirectsRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "redirects"),
		attribute.String("redirect.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM redirects WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete redirect: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("redirect %s: %w", id, types.ErrNotFound)
	}
	return nil
}
