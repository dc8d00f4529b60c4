package types

import "time"

// GeneratedCityContent is the full derived content record for a city page.
// Recomputed on every access, never persisted.
type GeneratedCityContent struct {
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	HeroHeading     string   `json:"hero_heading"`
	HeroSubheading  string   `json:"hero_subheading"`
	Intro           string   `json:"intro"`
	AboutCity       string   `json:"about_city"`
	WhyChooseUs     string   `json:"why_choose_us"`
	ServicesBlurb   string   `json:"services_blurb"`
	NearbyAreas     []string `json:"nearby_areas"`
}

// FAQ is a single question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CityFAQSet holds the six generated FAQs for a city, in fixed category order.
type CityFAQSet struct {
	CityName string `json:"city_name"`
	Slug     string `json:"slug"`
	FAQs     []FAQ  `json:"faqs"`
}

// OverrideKind distinguishes which content family an override row belongs to.
type OverrideKind string

const (
	OverrideKindService OverrideKind = "service"
	OverrideKindCity    OverrideKind = "city"
	OverrideKindStatic  OverrideKind = "static"
)

// ContentOverrideRecord is one row of the admin override store, keyed by
// slug+kind. Nil fields mean "no override, use the default".
type ContentOverrideRecord struct {
	Slug            string       `json:"slug"`
	Kind            OverrideKind `json:"kind"`
	Name            *string      `json:"name,omitempty"`
	MetaTitle       *string      `json:"meta_title,omitempty"`
	MetaDescription *string      `json:"meta_description,omitempty"`
	HeroTitle       *string      `json:"hero_title,omitempty"`
	HeroSubtitle    *string      `json:"hero_subtitle,omitempty"`
	Intro           *string      `json:"intro,omitempty"`
	Sections        []string     `json:"sections,omitempty"`
	Distance        *float64     `json:"distance,omitempty"`
	Visible         bool         `json:"visible"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// OverrideSource says where a merged view model's data came from.
type OverrideSource string

const (
	SourceFromCode     OverrideSource = "fromCode"     // static registry only
	SourceOverrideOnly OverrideSource = "fromOverrideOnly" // admin-created, no registry entry
	SourceBoth         OverrideSource = "both"         // registry defaults + db override
)

// CityPageView is the fully resolved view model for one city page: generated
// defaults merged field-by-field with any override row.
type CityPageView struct {
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	Distance        float64        `json:"distance"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	HeroHeading     string         `json:"hero_heading"`
	HeroSubheading  string         `json:"hero_subheading"`
	Intro           string         `json:"intro"`
	AboutCity       string         `json:"about_city"`
	WhyChooseUs     string         `json:"why_choose_us"`
	ServicesBlurb   string         `json:"services_blurb"`
	NearbyAreas     []string       `json:"nearby_areas"`
	Visible         bool           `json:"visible"`
	Source          OverrideSource `json:"source"`
	HasDBOverride   bool           `json:"has_db_override"`
}

// ServicePageView is the resolved view model for one service page.
type ServicePageView struct {
	Slug            string         `json:"slug"`
	Name            string         `json:"name"`
	MetaTitle       string         `json:"meta_title"`
	MetaDescription string         `json:"meta_description"`
	HeroHeading     string         `json:"hero_heading"`
	HeroSubheading  string         `json:"hero_subheading"`
	Intro           string         `json:"intro"`
	Sections        []string       `json:"sections"`
	Visible         bool           `json:"visible"`
	Source          OverrideSource `json:"source"`
	HasDBOverride   bool           `json:"has_db_override"`
}
