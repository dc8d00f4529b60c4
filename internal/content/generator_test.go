package content

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robinroyhansen/maler-christensen-api/internal/registry"
	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

var testCompany = types.CompanyProfile{
	Name:            "Maler Christensen",
	Phone:           "+45 58 52 00 00",
	BaseCity:        "Slagelse",
	TrustpilotScore: 4.8,
}

func cityNamed(name string, distance float64) types.CityEntity {
	return types.CityEntity{Slug: registry.CitySlug(name), Name: name, Distance: distance}
}

func TestClassifyContent(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		want     contentBand
	}{
		{"Slagelse", 0, bandHome},
		{"Slagelse", 999, bandHome}, // home wins regardless of distance
		{"Sorø", 16, bandLocal},
		{"Jyderup", 30, bandLocal}, // boundary is inclusive
		{"Ringsted", 30.01, bandMedium},
		{"Roskilde", 60, bandMedium},
		{"Nykøbing", 60.01, bandFar},
		{"Helsingør", 110, bandFar},
		{"Ukendt", -1, bandFar},
		{"Ukendt", math.NaN(), bandFar},
	}
	for _, tt := range tests {
		got := classifyContent(tt.name, tt.distance)
		assert.Equal(t, tt.want, got, "%s at %v km", tt.name, tt.distance)
	}
}

func TestClassifyFAQ(t *testing.T) {
	tests := []struct {
		distance float64
		want     faqBand
	}{
		{0, faqLocal},
		{20, faqLocal},
		{20.01, faqNearby},
		{40, faqNearby},
		{40.01, faqMedium},
		{70, faqMedium},
		{70.01, faqFar},
		{-3, faqFar},
		{math.NaN(), faqFar},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyFAQ(tt.distance), "%v km", tt.distance)
	}
}

func TestGenerateCityContentDeterministic(t *testing.T) {
	city := cityNamed("Sorø", 16)
	a := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)
	b := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)
	assert.Equal(t, a, b)
}

func TestGenerateCityContentHomeCity(t *testing.T) {
	city := cityNamed("Slagelse", 0)
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)

	assert.Contains(t, gen.Intro, "din lokale malermester i Slagelse")
	assert.Contains(t, gen.AboutCity, "vores hjemby")
	assert.NotContains(t, gen.AboutCity, "{")
}

func TestGenerateCityContentNamedCityBeatsBand(t *testing.T) {
	city := cityNamed("Sorø", 16)
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)

	// Sorø has a hand-authored about text that wins over the local-band row.
	assert.Contains(t, gen.AboutCity, "Akademiet")
	assert.Contains(t, gen.Intro, "nærmeste malermester i Sorø")
}

func TestGenerateCityContentHomeBeatsNamedCity(t *testing.T) {
	// A hypothetical named-about entry can never shadow the home city.
	city := cityNamed("Slagelse", 0)
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)
	assert.Contains(t, gen.AboutCity, "vores hjemby")
}

func TestGenerateCityContentUnknownDistance(t *testing.T) {
	city := types.CityEntity{Slug: "maler-ukendt", Name: "Ukendtby", Distance: math.NaN()}
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)

	// NaN falls back to the far copy and still renders every field.
	assert.Contains(t, gen.Intro, "tager gerne malerupgaver i Ukendtby")
	assert.NotEmpty(t, gen.MetaTitle)
	assert.NotEmpty(t, gen.WhyChooseUs)
	assert.NotContains(t, gen.AboutCity, "NaN")
}

func TestGenerateCityContentSentinelDistanceStaysOutOfCopy(t *testing.T) {
	// Admin-created cities without a stored distance are synthesized with -1
	// and must never show the sentinel on the public page.
	city := types.CityEntity{Slug: "maler-nyby", Name: "Nyby", Distance: -1}
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)

	assert.Contains(t, gen.AboutCity, "uanset afstanden")
	for name, field := range map[string]string{
		"meta_title":       gen.MetaTitle,
		"meta_description": gen.MetaDescription,
		"intro":            gen.Intro,
		"about_city":       gen.AboutCity,
		"why_choose_us":    gen.WhyChooseUs,
		"services_blurb":   gen.ServicesBlurb,
	} {
		assert.NotContains(t, field, "-1", name)
	}
}

func TestNearbyAreas(t *testing.T) {
	soroe := registry.CityBySlug("maler-soroe")
	require.NotNil(t, soroe)

	gen := GenerateCityContent(*soroe, registry.Cities(), registry.Services(), testCompany)

	// Five closest by absolute distance delta, ties broken by registry order,
	// never the city itself.
	assert.Equal(t, []string{"Korsør", "Skælskør", "Fuglebjerg", "Høng", "Dianalund"}, gen.NearbyAreas)
	assert.NotContains(t, gen.NearbyAreas, "Sorø")
}

func TestNearbyAreasShortRegistry(t *testing.T) {
	cities := []types.CityEntity{
		cityNamed("Slagelse", 0),
		cityNamed("Korsør", 15),
		cityNamed("Sorø", 16),
	}
	got := nearbyAreas(cities[0], cities)
	assert.Equal(t, []string{"Korsør", "Sorø"}, got)
}

func TestServicesBlurbListsFirstEight(t *testing.T) {
	city := cityNamed("Sorø", 16)
	gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)

	assert.Contains(t, gen.ServicesBlurb, "I Sorø tilbyder vi blandt andet:")
	services := registry.Services()
	for _, s := range services[:8] {
		assert.Contains(t, gen.ServicesBlurb, "- "+s.Name+": ")
	}
	for _, s := range services[8:] {
		assert.NotContains(t, gen.ServicesBlurb, "- "+s.Name+": ")
	}
}

func TestTemplateExpansionLeavesNoPlaceholders(t *testing.T) {
	for _, city := range registry.Cities() {
		gen := GenerateCityContent(city, registry.Cities(), registry.Services(), testCompany)
		for field, v := range map[string]string{
			"MetaTitle":       gen.MetaTitle,
			"MetaDescription": gen.MetaDescription,
			"HeroHeading":     gen.HeroHeading,
			"HeroSubheading":  gen.HeroSubheading,
			"Intro":           gen.Intro,
			"AboutCity":       gen.AboutCity,
			"WhyChooseUs":     gen.WhyChooseUs,
			"ServicesBlurb":   gen.ServicesBlurb,
		} {
			assert.NotContains(t, v, "{", "%s: %s", city.Name, field)
		}
	}
}
