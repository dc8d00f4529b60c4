package overrides

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/content"
	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// Invalidator lets the admin write path drop cached page views for a slug.
type Invalidator interface {
	Invalidate(kind types.OverrideKind, slug string)
}

type Service interface {
	// ListAdminCities returns every city the admin panel can edit: the
	// static registry merged with override rows, plus admin-created cities
	// that only exist in the override store.
	ListAdminCities(ctx context.Context) ([]types.CityPageView, error)

	// ListAdminServices is the service-page analogue of ListAdminCities.
	ListAdminServices(ctx context.Context) ([]types.ServicePageView, error)

	// Save upserts an override row. City rows without a slug get one derived
	// from the name (admin-created city path).
	Save(ctx context.Context, rec types.ContentOverrideRecord) (*types.ContentOverrideRecord, error)

	// Get returns the raw override row, nil when none exists.
	Get(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error)

	// Delete removes an override row, reverting the page to its defaults.
	Delete(ctx context.Context, kind types.OverrideKind, slug string) error
}

type ServiceImpl struct {
	logger      *slog.Logger
	repo        Repository
	company     types.CompanyProfile
	invalidator Invalidator
}

func NewOverridesService(repo Repository, company types.CompanyProfile, invalidator Invalidator, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:      logger,
		repo:        repo,
		company:     company,
		invalidator: invalidator,
	}
}

func (s *ServiceImpl) ListAdminCities(ctx context.Context) ([]types.CityPageView, error) {
	ctx, span := otel.Tracer("OverridesService").Start(ctx, "ListAdminCities")
	defer span.End()

	rows, err := s.repo.ListByKind(ctx, types.OverrideKindCity)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list city overrides")
		return nil, fmt.Errorf("error listing city overrides: %w", err)
	}
	bySlug := make(map[string]*types.ContentOverrideRecord, len(rows))
	for i := range rows {
		bySlug[rows[i].Slug] = &rows[i]
	}

	cities := registry.Cities()
	services := registry.Services()
	views := make([]types.CityPageView, 0, len(cities)+len(rows))
	for _, city := range cities {
		gen := content.GenerateCityContent(city, cities, services, s.company)
		views = append(views, content.MergeCityView(&city, gen, bySlug[city.Slug]))
		delete(bySlug, city.Slug)
	}
	// Remaining rows are admin-created cities with no registry entry.
	for _, row := range rows {
		ov, ok := bySlug[row.Slug]
		if !ok {
			continue
		}
		synth := synthesizeCity(*ov)
		gen := content.GenerateCityContent(synth, cities, services, s.company)
		views = append(views, content.MergeCityView(nil, gen, ov))
	}
	return views, nil
}

// synthesizeCity builds a registry-shaped entity from an override-only row so
// the generator can still produce defaults for admin-created cities.
func synthesizeCity(ov types.ContentOverrideRecord) types.CityEntity {
	city := types.CityEntity{Slug: ov.Slug, Distance: -1}
	if ov.Name != nil {
		city.Name = *ov.Name
	}
	if ov.Distance != nil {
		city.Distance = *ov.Distance
	}
	return city
}

func (s *ServiceImpl) ListAdminServices(ctx context.Context) ([]types.ServicePageView, error) {
	ctx, span := otel.Tracer("OverridesService").Start(ctx, "ListAdminServices")
	defer span.End()

	rows, err := s.repo.ListByKind(ctx, types.OverrideKindService)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list service overrides")
		return nil, fmt.Errorf("error listing service overrides: %w", err)
	}
	bySlug := make(map[string]*types.ContentOverrideRecord, len(rows))
	for i := range rows {
		bySlug[rows[i].Slug] = &rows[i]
	}

	services := registry.Services()
	views := make([]types.ServicePageView, 0, len(services)+len(rows))
	for _, svc := range services {
		views = append(views, content.MergeServiceView(&svc, registry.ServiceContentFor(svc.Slug), bySlug[svc.Slug]))
		delete(bySlug, svc.Slug)
	}
	for _, row := range rows {
		if ov, ok := bySlug[row.Slug]; ok {
			views = append(views, content.MergeServiceView(nil, nil, ov))
		}
	}
	return views, nil
}

func (s *ServiceImpl) Save(ctx context.Context, rec types.ContentOverrideRecord) (*types.ContentOverrideRecord, error) {
	ctx, span := otel.Tracer("OverridesService").Start(ctx, "Save", trace.WithAttributes(
		attribute.String("override.kind", string(rec.Kind)),
		attribute.String("override.slug", rec.Slug),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Save"), slog.String("slug", rec.Slug))

	if rec.Slug == "" {
		if rec.Kind != types.OverrideKindCity || rec.Name == nil || strings.TrimSpace(*rec.Name) == "" {
			return nil, fmt.Errorf("override needs a slug or, for cities, a name: %w", types.ErrValidation)
		}
		rec.Slug = registry.CitySlug(*rec.Name)
		l = l.With(slog.String("derived_slug", rec.Slug))
	}

	saved, err := s.repo.Upsert(ctx, rec)
	if err != nil {
		l.ErrorContext(ctx, "Failed to save override", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to save override")
		return nil, fmt.Errorf("error saving override: %w", err)
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(saved.Kind, saved.Slug)
	}
	l.InfoContext(ctx, "Override saved")
	return saved, nil
}

func (s *ServiceImpl) Get(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error) {
	ctx, span := otel.Tracer("OverridesService").Start(ctx, "Get")
	defer span.End()

	rec, err := s.repo.GetBySlug(ctx, kind, slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch override")
		return nil, fmt.Errorf("error fetching override: %w", err)
	}
	return rec, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, kind types.OverrideKind, slug string) error {
	ctx, span := otel.Tracer("OverridesService").Start(ctx, "Delete")
	defer span.End()

	if err := s.repo.Delete(ctx, kind, slug); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete override")
		return fmt.Errorf("error deleting override: %w", err)
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate(kind, slug)
	}
	return nil
}
