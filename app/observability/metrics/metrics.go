package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	LeadsCreatedTotal    metric.Int64Counter
	AuditRunsTotal       metric.Int64Counter
	AuditDurationSeconds metric.Float64Histogram
	PageViewsTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Init creates the instruments once, from the globally configured meter
// provider. Call after the provider is set up.
func Init() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("maler-christensen-api")
		var err error
		m := &AppMetrics{}

		m.LeadsCreatedTotal, err = meter.Int64Counter(
			"leads_created_total",
			metric.WithDescription("Total number of contact-form leads stored"),
			metric.WithUnit("{lead}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create leads_created_total: %v", err)
		}

		m.AuditRunsTotal, err = meter.Int64Counter(
			"seo_audit_runs_total",
			metric.WithDescription("Total number of SEO audit runs completed"),
			metric.WithUnit("{run}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create seo_audit_runs_total: %v", err)
		}

		m.AuditDurationSeconds, err = meter.Float64Histogram(
			"seo_audit_duration_seconds",
			metric.WithDescription("Duration of SEO audit runs in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create seo_audit_duration_seconds: %v", err)
		}

		m.PageViewsTotal, err = meter.Int64Counter(
			"page_views_total",
			metric.WithDescription("Total number of public page view requests served"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create page_views_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the instruments, or nil when Init has not run (tests).
func Get() *AppMetrics {
	return appMetrics
}
