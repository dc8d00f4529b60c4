// Package registry holds the static service and city registries the content
// pipeline generates from. Entries are defined once here and never mutated;
// admin "deletions" happen through the override layer's visibility flag.
package registry

import "github.com/robinroyhansen/maler-christensen-api/internal/types"

var services = []types.ServiceEntity{
	{Slug: "indvendig-maling", Name: "Indvendig maling", Description: "Maling af vægge, lofter og paneler i alle rum – fra enkelt værelse til hele boligen."},
	{Slug: "udvendig-maling", Name: "Udvendig maling", Description: "Vejrbestandig maling af husets ydre, der beskytter mod det danske klima."},
	{Slug: "facademaling", Name: "Facademaling", Description: "Professionel behandling og maling af facader, sokler og murværk."},
	{Slug: "tapetsering", Name: "Tapetsering", Description: "Opsætning af tapet, filt og glasvæv med skarpe samlinger."},
	{Slug: "spartling", Name: "Spartling", Description: "Fuldspartling og pletspartling, så underlaget står knivskarpt inden maling."},
	{Slug: "sproejtemaling", Name: "Sprøjtemaling", Description: "Hurtig og ensartet finish på store flader, døre og radiatorer."},
	{Slug: "traevaerk-og-lakering", Name: "Træværk og lakering", Description: "Maling og lakering af døre, karme, vinduer og andet træværk."},
	{Slug: "vinduesmaling", Name: "Vinduesmaling", Description: "Istandsættelse og maling af trævinduer, inde som ude."},
	{Slug: "erhvervsmaling", Name: "Erhvervsmaling", Description: "Malerarbejde for butikker, kontorer og boligforeninger – også uden for åbningstid."},
	{Slug: "forsikringsskader", Name: "Forsikringsskader", Description: "Udbedring af maler- og vandskader i samarbejde med dit forsikringsselskab."},
}

// Services returns the static service registry. Callers get a fresh copy so
// the registry itself stays immutable.
func Services() []types.ServiceEntity {
	out := make([]types.ServiceEntity, len(services))
	copy(out, services)
	return out
}

// ServiceBySlug looks up a single service entity. Returns nil when the slug
// is not in the static registry.
func ServiceBySlug(slug string) *types.ServiceEntity {
	for i := range services {
		if services[i].Slug == slug {
			s := services[i]
			return &s
		}
	}
	return nil
}
