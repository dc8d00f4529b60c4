package content

import (
	"math"

	"github.com/robinroyhansen/maler-christensen-api/internal/types"
)

// GenerateCityFAQs derives the six-question FAQ set for a city. Each question
// maps the FAQ bands onto its answers independently; the groupings are not
// the same across questions and must stay that way.
func GenerateCityFAQs(city types.CityEntity, company types.CompanyProfile) types.CityFAQSet {
	band := classifyFAQ(city.Distance)
	vars := templateVars(city, company)

	// The free-quote question branches on its own km cutoff, not the bands.
	nearQuote := !math.IsNaN(city.Distance) && city.Distance >= 0 && city.Distance <= freeQuoteMax

	price := faqPriceA[faqFar]
	switch band {
	case faqLocal:
		price = faqPriceA[faqLocal]
	case faqNearby:
		price = faqPriceA[faqNearby]
	}

	duration := faqDurationA[faqFar]
	if band == faqLocal || band == faqNearby {
		duration = faqDurationA[faqLocal]
	}

	// Coverage checks local-or-nearby first, then medium; everything else
	// falls through to the far answer. Nearby deliberately shares the local
	// answer here.
	coverage := faqCoverageA[faqFar]
	switch {
	case band == faqLocal || band == faqNearby:
		coverage = faqCoverageA[faqLocal]
	case band == faqMedium:
		coverage = faqCoverageA[faqMedium]
	}

	faqs := []types.FAQ{
		{Question: expand(faqPriceQ, vars), Answer: expand(price, vars)},
		{Question: expand(faqDurationQ, vars), Answer: expand(duration, vars)},
		{Question: expand(faqFreeQuoteQ, vars), Answer: expand(faqFreeQuoteA[nearQuote], vars)},
		{Question: expand(faqCertQ, vars), Answer: expand(faqCertA, vars)},
		{Question: expand(faqSchedulingQ, vars), Answer: expand(faqSchedulingA[band == faqLocal], vars)},
		{Question: expand(faqCoverageQ, vars), Answer: expand(coverage, vars)},
	}

	return types.CityFAQSet{
		CityName: city.Name,
		Slug:     city.Slug,
		FAQs:     faqs,
	}
}
