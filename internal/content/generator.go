package content

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

const (
	nearbyAreaCount   = 5
	servicesBlurbSize = 8
)

// GenerateCityContent derives the full content record for one city page.
// Pure and total: same inputs always produce the same output, and no input
// makes it fail. Unknown distances (negative, NaN) get the far-band copy.
func GenerateCityContent(city types.CityEntity, allCities []types.CityEntity, allServices []types.ServiceEntity, company types.CompanyProfile) types.GeneratedCityContent {
	band := classifyContent(city.Name, city.Distance)
	vars := templateVars(city, company)

	about := aboutCityTpl[band]
	// Precedence: home city beats the authored table, the authored table
	// beats the banded template.
	if band != bandHome {
		if authored, ok := namedCityAbout[city.Name]; ok {
			about = authored
		}
	}

	return types.GeneratedCityContent{
		MetaTitle:       expand(metaTitleTpl, vars),
		MetaDescription: expand(metaDescriptionTpl, vars),
		HeroHeading:     expand(heroHeadingTpl, vars),
		HeroSubheading:  expand(heroSubheadingTpl, vars),
		Intro:           expand(introTpl[band], vars),
		AboutCity:       expand(about, vars),
		WhyChooseUs:     expand(whyChooseUsTpl, vars),
		ServicesBlurb:   servicesBlurb(city, allServices, vars),
		NearbyAreas:     nearbyAreas(city, allCities),
	}
}

// nearbyAreas returns the names of the five cities closest to the subject
// city by absolute distance delta, excluding the city itself. Sorting is
// stable so ties resolve by registry order and output stays deterministic.
func nearbyAreas(city types.CityEntity, allCities []types.CityEntity) []string {
	others := make([]types.CityEntity, 0, len(allCities))
	for _, c := range allCities {
		if c.Slug == city.Slug {
			continue
		}
		others = append(others, c)
	}
	sort.SliceStable(others, func(i, j int) bool {
		di := absDelta(others[i].Distance, city.Distance)
		dj := absDelta(others[j].Distance, city.Distance)
		return di < dj
	})
	if len(others) > nearbyAreaCount {
		others = others[:nearbyAreaCount]
	}
	names := make([]string, len(others))
	for i, c := range others {
		names[i] = c.Name
	}
	return names
}

func absDelta(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func servicesBlurb(city types.CityEntity, allServices []types.ServiceEntity, vars map[string]string) string {
	listed := allServices
	if len(listed) > servicesBlurbSize {
		listed = listed[:servicesBlurbSize]
	}
	var b strings.Builder
	b.WriteString(expand(servicesBlurbHeaderTpl, vars))
	for _, s := range listed {
		fmt.Fprintf(&b, "\n- %s: %s", s.Name, s.Description)
	}
	return b.String()
}

func templateVars(city types.CityEntity, company types.CompanyProfile) map[string]string {
	return map[string]string{
		"city":     city.Name,
		"distance": formatKm(city.Distance),
		"company":  company.Name,
		"phone":    company.Phone,
		"base":     company.BaseCity,
		"rating":   strconv.FormatFloat(company.TrustpilotScore, 'f', 1, 64),
	}
}
