// Package audit exposes the admin SEO report: it assembles the resolved page
// set, fetches blog and gallery records, and runs the rule engine.
package audit

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/robinroyhansen/maler-christensen-api/app/observability/metrics"
	"github.com/robinroyhansen/maler-christensen-api/internal/content"
	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/seo"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

// ContentLister provides the merged admin page views the audit scans.
type ContentLister interface {
	ListAdminCities(ctx context.Context) ([]types.CityPageView, error)
	ListAdminServices(ctx context.Context) ([]types.ServicePageView, error)
}

// BlogLister is the slice of the blog store the audit needs.
type BlogLister interface {
	List(ctx context.Context, publishedOnly bool) ([]types.BlogPost, error)
}

// GalleryLister is the slice of the gallery store the audit needs.
type GalleryLister interface {
	List(ctx context.Context) ([]types.GalleryImage, error)
}

type Service interface {
	// Run executes a full audit. A failing blog or gallery fetch degrades
	// that data source to empty with DataComplete=false on the dependent
	// categories; it never fails the run.
	Run(ctx context.Context) ([]types.SEOCheckCategory, error)
}

type ServiceImpl struct {
	logger  *slog.Logger
	pages   ContentLister
	blog    BlogLister
	gallery GalleryLister
	company types.CompanyProfile
}

func NewAuditService(pages ContentLister, blog BlogLister, gallery GalleryLister, company types.CompanyProfile, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:  logger,
		pages:   pages,
		blog:    blog,
		gallery: gallery,
		company: company,
	}
}

func (s *ServiceImpl) Run(ctx context.Context) ([]types.SEOCheckCategory, error) {
	ctx, span := otel.Tracer("AuditService").Start(ctx, "Run")
	defer span.End()

	l := s.logger.With(slog.String("method", "Run"))
	start := time.Now()

	in := seo.AuditInput{BlogPostsOK: true, GalleryOK: true}

	// Blog and gallery are independent sources; fetch them concurrently and
	// let each degrade on its own. The closures swallow errors deliberately:
	// a failed fetch under-reports, it must never abort the audit.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		posts, err := s.blog.List(gctx, false)
		if err != nil {
			l.WarnContext(gctx, "Blog fetch failed, auditing without posts", slog.Any("error", err))
			in.BlogPostsOK = false
			return nil
		}
		in.BlogPosts = posts
		return nil
	})
	g.Go(func() error {
		images, err := s.gallery.List(gctx)
		if err != nil {
			l.WarnContext(gctx, "Gallery fetch failed, auditing without images", slog.Any("error", err))
			in.GalleryOK = false
			return nil
		}
		in.GalleryImages = images
		return nil
	})
	_ = g.Wait()

	cities, err := s.pages.ListAdminCities(ctx)
	if err != nil {
		l.WarnContext(ctx, "Override store unavailable, auditing generated defaults", slog.Any("error", err))
		cities = defaultCityViews(s.company)
	}
	services, err := s.pages.ListAdminServices(ctx)
	if err != nil {
		services = defaultServiceViews()
	}
	in.Cities = cities
	in.Services = services

	categories := seo.Run(in)

	if m := metrics.Get(); m != nil {
		m.AuditRunsTotal.Add(ctx, 1)
		m.AuditDurationSeconds.Record(ctx, time.Since(start).Seconds())
	}
	issues := 0
	for _, c := range categories {
		issues += len(c.Issues)
	}
	span.SetAttributes(attribute.Int("audit.issues", issues))
	span.SetStatus(codes.Ok, "Audit completed")
	l.InfoContext(ctx, "SEO audit completed",
		slog.Int("categories", len(categories)),
		slog.Int("issues", issues),
		slog.Duration("took", time.Since(start)),
	)
	return categories, nil
}

// defaultCityViews rebuilds the page set from the static registry alone,
// used when the override store cannot be reached.
func defaultCityViews(company types.CompanyProfile) []types.CityPageView {
	cities := registry.Cities()
	services := registry.Services()
	views := make([]types.CityPageView, 0, len(cities))
	for _, city := range cities {
		gen := content.GenerateCityContent(city, cities, services, company)
		views = append(views, content.MergeCityView(&city, gen, nil))
	}
	return views
}

func defaultServiceViews() []types.ServicePageView {
	services := registry.Services()
	views := make([]types.ServicePageView, 0, len(services))
	for _, svc := range services {
		views = append(views, content.MergeServiceView(&svc, registry.ServiceContentFor(svc.Slug), nil))
	}
	return views
}
