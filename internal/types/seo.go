package types

// Severity of a single SEO finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityPass    Severity = "pass"
)

// SEOIssue is one finding produced by an audit rule. Transient, never stored.
type SEOIssue struct {
	Page           string   `json:"page"`
	PageURL        string   `json:"page_url"`
	Field          string   `json:"field"`
	CurrentValue   string   `json:"current_value"`
	Recommendation string   `json:"recommendation"`
	Severity       Severity `json:"severity"`
}

// SEOCheckCategory aggregates one rule's issues with a rolled-up status.
// DataComplete is false when the backing data source could not be fetched,
// so "no issues" is distinguishable from "not audited".
type SEOCheckCategory struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Status       Severity   `json:"status"`
	Issues       []SEOIssue `json:"issues"`
	DataComplete bool       `json:"data_complete"`
}
