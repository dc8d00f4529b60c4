package types

// ServiceEntity is one painting service from the static registry.
type ServiceEntity struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CityEntity is one coverage-area city from the static registry.
// Distance is road distance in km from the Slagelse workshop.
type CityEntity struct {
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
}

// ServiceContent is the hand-authored page content for one service slug.
// Authored, never generated.
type ServiceContent struct {
	Slug            string   `json:"slug"`
	MetaTitle       string   `json:"meta_title"`
	MetaDescription string   `json:"meta_description"`
	HeroHeading     string   `json:"hero_heading"`
	HeroSubheading  string   `json:"hero_subheading"`
	Intro           string   `json:"intro"`
	Sections        []string `json:"sections"`
}
