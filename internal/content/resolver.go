package content

import "github.com/robinroyhansen/maler-christensen-api/internal/types"

// ResolveField applies the override rule for a single field: a non-empty
// override wins, otherwise the default, otherwise "". Fields resolve
// independently of each other.
func ResolveField(defaultValue, override string) string {
	if override != "" {
		return override
	}
	return defaultValue
}

// resolvePtr is ResolveField for the nullable columns coming out of the
// override store.
func resolvePtr(defaultValue string, override *string) string {
	if override == nil {
		return defaultValue
	}
	return ResolveField(defaultValue, *override)
}

func source(fromCode, hasOverride bool) types.OverrideSource {
	switch {
	case fromCode && hasOverride:
		return types.SourceBoth
	case fromCode:
		return types.SourceFromCode
	default:
		return types.SourceOverrideOnly
	}
}

// MergeCityView combines a city's generated defaults with its override row.
// entity is nil for admin-created cities that only exist in the override
// store; ov is nil when no row has ever been saved for the slug.
func MergeCityView(entity *types.CityEntity, gen types.GeneratedCityContent, ov *types.ContentOverrideRecord) types.CityPageView {
	view := types.CityPageView{
		MetaTitle:       gen.MetaTitle,
		MetaDescription: gen.MetaDescription,
		HeroHeading:     gen.HeroHeading,
		HeroSubheading:  gen.HeroSubheading,
		Intro:           gen.Intro,
		AboutCity:       gen.AboutCity,
		WhyChooseUs:     gen.WhyChooseUs,
		ServicesBlurb:   gen.ServicesBlurb,
		NearbyAreas:     gen.NearbyAreas,
		Visible:         true,
		Source:          source(entity != nil, ov != nil),
		HasDBOverride:   ov != nil,
	}
	if entity != nil {
		view.Slug = entity.Slug
		view.Name = entity.Name
		view.Distance = entity.Distance
	}
	if ov != nil {
		view.Slug = ov.Slug
		view.Name = resolvePtr(view.Name, ov.Name)
		if ov.Distance != nil {
			view.Distance = *ov.Distance
		}
		view.MetaTitle = resolvePtr(view.MetaTitle, ov.MetaTitle)
		view.MetaDescription = resolvePtr(view.MetaDescription, ov.MetaDescription)
		view.HeroHeading = resolvePtr(view.HeroHeading, ov.HeroTitle)
		view.HeroSubheading = resolvePtr(view.HeroSubheading, ov.HeroSubtitle)
		view.Intro = resolvePtr(view.Intro, ov.Intro)
		view.Visible = ov.Visible
	}
	return view
}

// MergeServiceView combines a service's authored content with its override
// row. authored is nil when no page content was written for the slug.
func MergeServiceView(entity *types.ServiceEntity, authored *types.ServiceContent, ov *types.ContentOverrideRecord) types.ServicePageView {
	view := types.ServicePageView{
		Visible:       true,
		Source:        source(entity != nil, ov != nil),
		HasDBOverride: ov != nil,
	}
	if entity != nil {
		view.Slug = entity.Slug
		view.Name = entity.Name
	}
	if authored != nil {
		view.MetaTitle = authored.MetaTitle
		view.MetaDescription = authored.MetaDescription
		view.HeroHeading = authored.HeroHeading
		view.HeroSubheading = authored.HeroSubheading
		view.Intro = authored.Intro
		view.Sections = authored.Sections
	}
	if ov != nil {
		view.Slug = ov.Slug
		view.Name = resolvePtr(view.Name, ov.Name)
		view.MetaTitle = resolvePtr(view.MetaTitle, ov.MetaTitle)
		view.MetaDescription = resolvePtr(view.MetaDescription, ov.MetaDescription)
		view.HeroHeading = resolvePtr(view.HeroHeading, ov.HeroTitle)
		view.HeroSubheading = resolvePtr(view.HeroSubheading, ov.HeroSubtitle)
		view.Intro = resolvePtr(view.Intro, ov.Intro)
		if len(ov.Sections) > 0 {
			view.Sections = ov.Sections
		}
		view.Visible = ov.Visible
	}
	return view
}
