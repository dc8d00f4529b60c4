// Package content implements the deterministic generation pipeline for city
// pages: per-city content synthesis, FAQ synthesis and the override merge.
// Everything in this package is pure; callers pass registries and overrides
// in, nothing here touches the database or the network.
package content

import "math"

// The two generators classify distance with different, independently tuned
// thresholds. Keep both constant sets separate; unifying them changes which
// copy a city between 20-30 km or 60-70 km receives.
const (
	contentLocalMax  = 30.0
	contentMediumMax = 60.0

	faqLocalMax  = 20.0
	faqNearbyMax = 40.0
	faqMediumMax = 70.0

	// The free-quote FAQ branches on its own cutoff, unrelated to the bands.
	freeQuoteMax = 50.0
)

// homeCity short-circuits all distance banding in the content generator.
const homeCity = "Slagelse"

type contentBand int

const (
	bandHome contentBand = iota
	bandLocal
	bandMedium
	bandFar
)

// classifyContent maps a distance to the content generator's band. Negative
// or NaN distances fall back to far, whose copy is the least specific.
func classifyContent(name string, distance float64) contentBand {
	switch {
	case name == homeCity:
		return bandHome
	case math.IsNaN(distance) || distance < 0:
		return bandFar
	case distance <= contentLocalMax:
		return bandLocal
	case distance <= contentMediumMax:
		return bandMedium
	default:
		return bandFar
	}
}

type faqBand int

const (
	faqLocal faqBand = iota
	faqNearby
	faqMedium
	faqFar
)

// classifyFAQ maps a distance to the FAQ generator's band. Same defensive
// fallback as classifyContent.
func classifyFAQ(distance float64) faqBand {
	switch {
	case math.IsNaN(distance) || distance < 0:
		return faqFar
	case distance <= faqLocalMax:
		return faqLocal
	case distance <= faqNearbyMax:
		return faqNearby
	case distance <= faqMediumMax:
		return faqMedium
	default:
		return faqFar
	}
}
