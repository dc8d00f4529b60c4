// Package seo implements the rule engine behind the admin SEO report. It
// scans fully resolved page view models plus blog and gallery records and
// produces categorized findings. The engine itself does no I/O; fetching is
// the caller's job, and a failed fetch is reported through the input flags so
// a category can say "not audited" instead of "no issues".
package seo

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

// Length thresholds are character counts against Google's usual SERP cutoffs.
// Exactly at the maximum passes; the minimum is exclusive.
const (
	titleMax       = 60
	titleMin       = 30
	descriptionMax = 160
	descriptionMin = 70
)

// AuditInput carries everything one audit run inspects. The OK flags report
// whether the respective fetch succeeded; a false flag marks the dependent
// categories as incomplete.
type AuditInput struct {
	Services      []types.ServicePageView
	Cities        []types.CityPageView
	BlogPosts     []types.BlogPost
	GalleryImages []types.GalleryImage
	BlogPostsOK   bool
	GalleryOK     bool
}

// Run executes every audit rule and returns the six categories in fixed
// order. It never fails: missing fields count as empty strings and missing
// lists as empty.
func Run(in AuditInput) []types.SEOCheckCategory {
	return []types.SEOCheckCategory{
		category("title-length", "Titellængde", checkTitleLength(in), in.BlogPostsOK),
		category("description-length", "Beskrivelseslængde", checkDescriptionLength(in), in.BlogPostsOK),
		category("missing-meta", "Manglende metadata", checkMissingMeta(in), in.BlogPostsOK),
		category("duplicate-titles", "Dublerede titler", checkDuplicateTitles(in), in.BlogPostsOK),
		category("missing-alt", "Manglende alt-tekst", checkMissingAlt(in), in.GalleryOK),
		category("missing-h1", "Manglende H1", checkMissingH1(in), true),
	}
}

func category(id, title string, issues []types.SEOIssue, dataComplete bool) types.SEOCheckCategory {
	status := types.SeverityPass
	for _, issue := range issues {
		if issue.Severity == types.SeverityError {
			status = types.SeverityError
			break
		}
		status = types.SeverityWarning
	}
	if issues == nil {
		issues = []types.SEOIssue{}
	}
	return types.SEOCheckCategory{
		ID:           id,
		Title:        title,
		Status:       status,
		Issues:       issues,
		DataComplete: dataComplete,
	}
}

// auditPage is the common page projection the length/duplicate rules walk.
type auditPage struct {
	label       string
	url         string
	title       string
	description string
	countEmpty  bool // count empty titles in duplicate detection
}

func pages(in AuditInput) []auditPage {
	out := make([]auditPage, 0, len(in.Services)+len(in.Cities)+len(in.BlogPosts))
	for _, s := range in.Services {
		out = append(out, auditPage{
			label:       "Ydelse: " + s.Name,
			url:         "/ydelser/" + s.Slug,
			title:       s.MetaTitle,
			description: s.MetaDescription,
		})
	}
	for _, c := range in.Cities {
		out = append(out, auditPage{
			label:       "By: " + c.Name,
			url:         "/" + c.Slug,
			title:       c.MetaTitle,
			description: c.MetaDescription,
		})
	}
	for _, p := range in.BlogPosts {
		out = append(out, auditPage{
			label:       "Blogindlæg: " + p.Title,
			url:         "/blog/" + p.Slug,
			title:       resolveMeta(p.MetaTitle, p.Title),
			description: resolveMeta(p.MetaDescription, ""),
			countEmpty:  true,
		})
	}
	return out
}

func resolveMeta(meta *string, fallback string) string {
	if meta != nil && *meta != "" {
		return *meta
	}
	return fallback
}

func checkTitleLength(in AuditInput) []types.SEOIssue {
	var issues []types.SEOIssue
	for _, p := range pages(in) {
		n := utf8.RuneCountInString(p.title)
		switch {
		case n > titleMax:
			issues = append(issues, types.SEOIssue{
				Page:           p.label,
				PageURL:        p.url,
				Field:          "meta_title",
				CurrentValue:   p.title,
				Recommendation: fmt.Sprintf("Titlen er %d tegn – forkort den til højst %d tegn", n, titleMax),
				Severity:       types.SeverityError,
			})
		case n > 0 && n < titleMin:
			issues = append(issues, types.SEOIssue{
				Page:           p.label,
				PageURL:        p.url,
				Field:          "meta_title",
				CurrentValue:   p.title,
				Recommendation: fmt.Sprintf("Titlen er kun %d tegn – udvid den til mindst %d tegn", n, titleMin),
				Severity:       types.SeverityWarning,
			})
		}
	}
	return issues
}

func checkDescriptionLength(in AuditInput) []types.SEOIssue {
	var issues []types.SEOIssue
	for _, p := range pages(in) {
		n := utf8.RuneCountInString(p.description)
		switch {
		case n > descriptionMax:
			issues = append(issues, types.SEOIssue{
				Page:           p.label,
				PageURL:        p.url,
				Field:          "meta_description",
				CurrentValue:   p.description,
				Recommendation: fmt.Sprintf("Beskrivelsen er %d tegn – forkort den til højst %d tegn", n, descriptionMax),
				Severity:       types.SeverityError,
			})
		case n > 0 && n < descriptionMin:
			issues = append(issues, types.SEOIssue{
				Page:           p.label,
				PageURL:        p.url,
				Field:          "meta_description",
				CurrentValue:   p.description,
				Recommendation: fmt.Sprintf("Beskrivelsen er kun %d tegn – udvid den til mindst %d tegn", n, descriptionMin),
				Severity:       types.SeverityWarning,
			})
		}
	}
	return issues
}

// checkMissingMeta flags services as errors and blog posts as warnings. The
// asymmetry is deliberate: service pages are the money pages.
func checkMissingMeta(in AuditInput) []types.SEOIssue {
	var issues []types.SEOIssue
	for _, s := range in.Services {
		if s.MetaTitle == "" {
			issues = append(issues, missingMetaIssue("Ydelse: "+s.Name, "/ydelser/"+s.Slug, "meta_title", types.SeverityError))
		}
		if s.MetaDescription == "" {
			issues = append(issues, missingMetaIssue("Ydelse: "+s.Name, "/ydelser/"+s.Slug, "meta_description", types.SeverityError))
		}
	}
	for _, p := range in.BlogPosts {
		if resolveMeta(p.MetaTitle, "") == "" {
			issues = append(issues, missingMetaIssue("Blogindlæg: "+p.Title, "/blog/"+p.Slug, "meta_title", types.SeverityWarning))
		}
		if resolveMeta(p.MetaDescription, "") == "" {
			issues = append(issues, missingMetaIssue("Blogindlæg: "+p.Title, "/blog/"+p.Slug, "meta_description", types.SeverityWarning))
		}
	}
	return issues
}

func missingMetaIssue(label, url, field string, sev types.Severity) types.SEOIssue {
	return types.SEOIssue{
		Page:           label,
		PageURL:        url,
		Field:          field,
		Recommendation: "Udfyld feltet " + field + " for siden",
		Severity:       sev,
	}
}

// checkDuplicateTitles emits one error per title shared by more than one
// page. Services and cities only participate with a non-empty title; blog
// posts always participate since they fall back to the post title.
func checkDuplicateTitles(in AuditInput) []types.SEOIssue {
	byTitle := make(map[string][]auditPage)
	var order []string
	for _, p := range pages(in) {
		if p.title == "" && !p.countEmpty {
			continue
		}
		if _, seen := byTitle[p.title]; !seen {
			order = append(order, p.title)
		}
		byTitle[p.title] = append(byTitle[p.title], p)
	}

	var issues []types.SEOIssue
	for _, title := range order {
		group := byTitle[title]
		if len(group) < 2 {
			continue
		}
		labels := make([]string, len(group))
		for i, p := range group {
			labels[i] = p.label
		}
		issues = append(issues, types.SEOIssue{
			Page:           strings.Join(labels, ", "),
			PageURL:        group[0].url,
			Field:          "meta_title",
			CurrentValue:   title,
			Recommendation: fmt.Sprintf("Titlen bruges af %d sider – giv hver side en unik titel", len(group)),
			Severity:       types.SeverityError,
		})
	}
	return issues
}

func checkMissingAlt(in AuditInput) []types.SEOIssue {
	var issues []types.SEOIssue
	for _, img := range in.GalleryImages {
		alt := ""
		if img.AltText != nil {
			alt = *img.AltText
		}
		if strings.TrimSpace(alt) == "" {
			issues = append(issues, types.SEOIssue{
				Page:           "Galleri: " + img.StoragePath,
				PageURL:        "/galleri",
				Field:          "alt_text",
				Recommendation: "Tilføj en beskrivende alt-tekst til billedet",
				Severity:       types.SeverityWarning,
			})
		}
	}
	return issues
}

func checkMissingH1(in AuditInput) []types.SEOIssue {
	var issues []types.SEOIssue
	for _, s := range in.Services {
		if s.HeroHeading == "" {
			issues = append(issues, types.SEOIssue{
				Page:           "Ydelse: " + s.Name,
				PageURL:        "/ydelser/" + s.Slug,
				Field:          "hero_heading",
				Recommendation: "Siden mangler en H1-overskrift",
				Severity:       types.SeverityError,
			})
		}
	}
	for _, c := range in.Cities {
		if c.HeroHeading == "" {
			issues = append(issues, types.SEOIssue{
				Page:           "By: " + c.Name,
				PageURL:        "/" + c.Slug,
				Field:          "hero_heading",
				Recommendation: "Siden mangler en H1-overskrift",
				Severity:       types.SeverityError,
			})
		}
	}
	return issues
}
