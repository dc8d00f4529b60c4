// Package pages serves the public site read models: city pages, service
// pages and FAQ sets, each the product of registry defaults, the generators
// and any admin override row.
package pages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/robinroyhansen/maler-christensen-api/internal/content"
	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// OverrideReader is the slice of the override store the public site needs.
type OverrideReader interface {
	GetBySlug(ctx context.Context, kind types.OverrideKind, slug string) (*types.ContentOverrideRecord, error)
	ListByKind(ctx context.Context, kind types.OverrideKind) ([]types.ContentOverrideRecord, error)
}

type Service interface {
	ListCityPages(ctx context.Context) ([]types.CityPageView, error)
	GetCityPage(ctx context.Context, slug string) (*types.CityPageView, error)
	GetCityFAQs(ctx context.Context, slug string) (*types.CityFAQSet, error)
	ListServicePages(ctx context.Context) ([]types.ServicePageView, error)
	GetServicePage(ctx context.Context, slug string) (*types.ServicePageView, error)

	// Invalidate drops cached views for a slug after an admin write.
	Invalidate(kind types.OverrideKind, slug string)
}

const (
	cacheTTL     = 5 * time.Minute
	cacheCleanup = 10 * time.Minute
)

type ServiceImpl struct {
	logger    *slog.Logger
	overrides OverrideReader
	company   types.CompanyProfile
	cache     *gocache.Cache
}

func NewPagesService(overrides OverrideReader, company types.CompanyProfile, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:    logger,
		overrides: overrides,
		company:   company,
		cache:     gocache.New(cacheTTL, cacheCleanup),
	}
}

func cacheKey(kind types.OverrideKind, slug string) string {
	return string(kind) + "/" + slug
}

func (s *ServiceImpl) Invalidate(kind types.OverrideKind, slug string) {
	s.cache.Delete(cacheKey(kind, slug))
}

func (s *ServiceImpl) ListCityPages(ctx context.Context) ([]types.CityPageView, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "ListCityPages")
	defer span.End()

	rows, err := s.overrides.ListByKind(ctx, types.OverrideKindCity)
	if err != nil {
		// The public site must keep rendering if the override store is down;
		// fall back to pure generated defaults and log the degradation.
		s.logger.WarnContext(ctx, "Override store unavailable, serving generated defaults", slog.Any("error", err))
		span.RecordError(err)
		rows = nil
	}
	bySlug := make(map[string]*types.ContentOverrideRecord, len(rows))
	for i := range rows {
		bySlug[rows[i].Slug] = &rows[i]
	}

	cities := registry.Cities()
	services := registry.Services()
	views := make([]types.CityPageView, 0, len(cities))
	for _, city := range cities {
		gen := content.GenerateCityContent(city, cities, services, s.company)
		view := content.MergeCityView(&city, gen, bySlug[city.Slug])
		if view.Visible {
			views = append(views, view)
		}
	}
	return views, nil
}

func (s *ServiceImpl) GetCityPage(ctx context.Context, slug string) (*types.CityPageView, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "GetCityPage", trace.WithAttributes(
		attribute.String("city.slug", slug),
	))
	defer span.End()

	key := cacheKey(types.OverrideKindCity, slug)
	if cached, ok := s.cache.Get(key); ok {
		view := cached.(types.CityPageView)
		return &view, nil
	}

	city := registry.CityBySlug(slug)
	degraded := false
	ov, err := s.overrides.GetBySlug(ctx, types.OverrideKindCity, slug)
	if err != nil {
		if city == nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to fetch override")
			return nil, fmt.Errorf("error fetching city page: %w", err)
		}
		s.logger.WarnContext(ctx, "Override store unavailable, serving generated defaults",
			slog.String("slug", slug), slog.Any("error", err))
		ov = nil
		degraded = true
	}
	if city == nil && ov == nil {
		return nil, fmt.Errorf("city page %q: %w", slug, types.ErrNotFound)
	}

	subject := synthesizedOrStatic(city, ov)
	cities := registry.Cities()
	gen := content.GenerateCityContent(subject, cities, registry.Services(), s.company)
	view := content.MergeCityView(city, gen, ov)
	if !view.Visible {
		return nil, fmt.Errorf("city page %q: %w", slug, types.ErrNotFound)
	}

	// A defaults-only view built during a store outage must not outlive the
	// outage, so it is served but never cached.
	if !degraded {
		s.cache.Set(key, view, gocache.DefaultExpiration)
	}
	return &view, nil
}

func (s *ServiceImpl) GetCityFAQs(ctx context.Context, slug string) (*types.CityFAQSet, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "GetCityFAQs", trace.WithAttributes(
		attribute.String("city.slug", slug),
	))
	defer span.End()

	city := registry.CityBySlug(slug)
	if city == nil {
		ov, err := s.overrides.GetBySlug(ctx, types.OverrideKindCity, slug)
		if err != nil {
			span.RecordError(err)
			return nil, fmt.Errorf("error fetching city for FAQs: %w", err)
		}
		if ov == nil {
			return nil, fmt.Errorf("city %q: %w", slug, types.ErrNotFound)
		}
		synth := synthesizedOrStatic(nil, ov)
		city = &synth
	}

	set := content.GenerateCityFAQs(*city, s.company)
	return &set, nil
}

func (s *ServiceImpl) ListServicePages(ctx context.Context) ([]types.ServicePageView, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "ListServicePages")
	defer span.End()

	rows, err := s.overrides.ListByKind(ctx, types.OverrideKindService)
	if err != nil {
		s.logger.WarnContext(ctx, "Override store unavailable, serving authored defaults", slog.Any("error", err))
		span.RecordError(err)
		rows = nil
	}
	bySlug := make(map[string]*types.ContentOverrideRecord, len(rows))
	for i := range rows {
		bySlug[rows[i].Slug] = &rows[i]
	}

	services := registry.Services()
	views := make([]types.ServicePageView, 0, len(services))
	for _, svc := range services {
		view := content.MergeServiceView(&svc, registry.ServiceContentFor(svc.Slug), bySlug[svc.Slug])
		if view.Visible {
			views = append(views, view)
		}
	}
	return views, nil
}

func (s *ServiceImpl) GetServicePage(ctx context.Context, slug string) (*types.ServicePageView, error) {
	ctx, span := otel.Tracer("PagesService").Start(ctx, "GetServicePage", trace.WithAttributes(
		attribute.String("service.slug", slug),
	))
	defer span.End()

	key := cacheKey(types.OverrideKindService, slug)
	if cached, ok := s.cache.Get(key); ok {
		view := cached.(types.ServicePageView)
		return &view, nil
	}

	svc := registry.ServiceBySlug(slug)
	degraded := false
	ov, err := s.overrides.GetBySlug(ctx, types.OverrideKindService, slug)
	if err != nil {
		if svc == nil {
			span.RecordError(err)
			return nil, fmt.Errorf("error fetching service page: %w", err)
		}
		s.logger.WarnContext(ctx, "Override store unavailable, serving authored defaults",
			slog.String("slug", slug), slog.Any("error", err))
		ov = nil
		degraded = true
	}
	if svc == nil && ov == nil {
		return nil, fmt.Errorf("service page %q: %w", slug, types.ErrNotFound)
	}

	view := content.MergeServiceView(svc, registry.ServiceContentFor(slug), ov)
	if !view.Visible {
		return nil, fmt.Errorf("service page %q: %w", slug, types.ErrNotFound)
	}

	if !degraded {
		s.cache.Set(key, view, gocache.DefaultExpiration)
	}
	return &view, nil
}

// synthesizedOrStatic picks the generation subject: the registry entity when
// it exists, otherwise an entity synthesized from the override row. An
// override-only row without a distance gets -1, which the generators treat
// as the far band.
func synthesizedOrStatic(city *types.CityEntity, ov *types.ContentOverrideRecord) types.CityEntity {
	if city != nil {
		return *city
	}
	synth := types.CityEntity{Slug: ov.Slug, Distance: -1}
	if ov.Name != nil {
		synth.Name = *ov.Name
	}
	if ov.Distance != nil {
		synth.Distance = *ov.Distance
	}
	return synth
}
