package leads

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

var _ Repository = (*PostgresLeadsRepo)(nil)

type Repository interface {
	Create(ctx context.Context, params types.CreateLeadParams) (*types.Lead, error)
	List(ctx context.Context, status *types.LeadStatus) ([]types.Lead, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PostgresLeadsRepo struct {
	logger *slog.Logger
	pgpool *pgxpool.Pool
}

func NewPostgresLeadsRepo(pgpool *pgxpool.Pool, logger *slog.Logger) *PostgresLeadsRepo {
	return &PostgresLeadsRepo{
		logger: logger,
		pgpool: pgpool,
	}
}

func (r *PostgresLeadsRepo) Create(ctx context.Context, params types.CreateLeadParams) (*types.Lead, error) {
	ctx, span := otel.Tracer("LeadsRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "leads"),
	))
	defer span.End()

	query := `
		INSERT INTO leads (name, phone, email, message, source_page)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, email, message, source_page, status, created_at, updated_at
	`
	var lead types.Lead
	err := r.pgpool.QueryRow(ctx, query,
		params.Name, params.Phone, params.Email, params.Message, params.SourcePage,
	).Scan(
		&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Message,
		&lead.SourcePage, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to insert lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}
	return &lead, nil
}

func (r *PostgresLeadsRepo) List(ctx context.Context, status *types.LeadStatus) ([]types.Lead, error) {
	ctx, span := otel.Tracer("LeadsRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "leads"),
	))
	defer span.End()

	query := `
		SELECT id, name, phone, email, message, source_page, status, created_at, updated_at
		FROM leads
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
	`
	rows, err := r.pgpool.Query(ctx, query, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "query failed")
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var out []types.Lead
	for rows.Next() {
		var lead types.Lead
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Phone, &lead.Email, &lead.Message,
			&lead.SourcePage, &lead.Status, &lead.CreatedAt, &lead.UpdatedAt,
		); err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		out = append(out, lead)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("lead rows iteration failed: %w", err)
	}
	return out, nil
}

func (r *PostgresLeadsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status types.LeadStatus) error {
	ctx, span := otel.Tracer("LeadsRepo").Start(ctx, "UpdateStatus", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "leads"),
		attribute.String("lead.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx,
		`UPDATE leads SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "update failed")
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, types.ErrNotFound)
	}
	return nil
}

func (r *PostgresLeadsRepo) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := otel.Tracer("LeadsRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemPostgreSQL,
		attribute.String("db.sql.table", "leads"),
		attribute.String("lead.id", id.String()),
	))
	defer span.End()

	tag, err := r.pgpool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lead %s: %w", id, types.ErrNotFound)
	}
	return nil
}
