package registry

import "github.com/robinroyhansen/maler-christensen-api/internal/types"

// Distances are road km from the Slagelse workshop.
var cities = []types.CityEntity{
	{Slug: "maler-slagelse", Name: "Slagelse", Distance: 0},
	{Slug: "maler-korsoer", Name: "Korsør", Distance: 15},
	{Slug: "maler-soroe", Name: "Sorø", Distance: 16},
	{Slug: "maler-skaelskoer", Name: "Skælskør", Distance: 17},
	{Slug: "maler-fuglebjerg", Name: "Fuglebjerg", Distance: 14},
	{Slug: "maler-hoeng", Name: "Høng", Distance: 18},
	{Slug: "maler-dianalund", Name: "Dianalund", Distance: 22},
	{Slug: "maler-stenlille", Name: "Stenlille", Distance: 27},
	{Slug: "maler-jyderup", Name: "Jyderup", Distance: 30},
	{Slug: "maler-ringsted", Name: "Ringsted", Distance: 31},
	{Slug: "maler-naestved", Name: "Næstved", Distance: 34},
	{Slug: "maler-kalundborg", Name: "Kalundborg", Distance: 39},
	{Slug: "maler-haslev", Name: "Haslev", Distance: 45},
	{Slug: "maler-holbaek", Name: "Holbæk", Distance: 48},
	{Slug: "maler-vordingborg", Name: "Vordingborg", Distance: 58},
	{Slug: "maler-koege", Name: "Køge", Distance: 62},
	{Slug: "maler-roskilde", Name: "Roskilde", Distance: 64},
	{Slug: "maler-nykoebing-sjaelland", Name: "Nykøbing Sjælland", Distance: 75},
	{Slug: "maler-frederikssund", Name: "Frederikssund", Distance: 82},
	{Slug: "maler-koebenhavn", Name: "København", Distance: 93},
	{Slug: "maler-hilleroed", Name: "Hillerød", Distance: 95},
	{Slug: "maler-helsingoer", Name: "Helsingør", Distance: 110},
}

// Cities returns the static city registry as a fresh copy.
func Cities() []types.CityEntity {
	out := make([]types.CityEntity, len(cities))
	copy(out, cities)
	return out
}

// CityBySlug looks up a single city entity. Returns nil when the slug is not
// in the static registry.
func CityBySlug(slug string) *types.CityEntity {
	for i := range cities {
		if cities[i].Slug == slug {
			c := cities[i]
			return &c
		}
	}
	return nil
}
