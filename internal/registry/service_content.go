package registry

import "github.com/robinroyhansen/maler-christensen-api/internal/types"

// Hand-authored page content per service slug. This is copy, not computed
// content; keep edits here and leave the lookup logic alone.
var serviceContent = map[string]types.ServiceContent{
	"indvendig-maling": {
		Slug:            "indvendig-maling",
		MetaTitle:       "Indvendig maling – Maler Christensen Slagelse",
		MetaDescription: "Professionel indvendig maling af vægge, lofter og paneler. Fast pris, rene linjer og oprydning efter os selv. Ring 58 52 10 10.",
		HeroHeading:     "Indvendig maling med skarpe linjer",
		HeroSubheading:  "Vægge, lofter og paneler – udført af uddannede malersvende",
		Intro:           "Et nymalet hjem ændrer hele stemningen. Vi afdækker grundigt, spartler hvor det er nødvendigt og efterlader rummet klar til indflytning.",
		Sections: []string{
			"Vi bruger udelukkende anerkendte kvalitetsprodukter fra Flügger og Dyrup.",
			"Fast tilbud inden opstart – prisen står ved, også hvis arbejdet tager længere tid.",
			"Afdækning, oprydning og aftørring er altid med i prisen.",
		},
	},
	"udvendig-maling": {
		Slug:            "udvendig-maling",
		MetaTitle:       "Udvendig maling af hus – Maler Christensen",
		MetaDescription: "Udvendig maling der beskytter dit hus mod vind og vejr. Gratis besigtigelse og fast tilbud på hele Vestsjælland.",
		HeroHeading:     "Udvendig maling der holder",
		HeroSubheading:  "Beskyt dit hus mod det danske vejr",
		Intro:           "Udvendigt malerarbejde handler om mere end udseende: den rigtige behandling forlænger træværkets og facadens levetid med mange år.",
		Sections: []string{
			"Afrensning og grunding inden maling, så behandlingen binder ordentligt.",
			"Vi maler kun udendørs i tørvejr og over 10 grader – kvaliteten først.",
		},
	},
	"facademaling": {
		Slug:            "facademaling",
		MetaTitle:       "Facademaling – Maler Christensen Slagelse",
		MetaDescription: "Facademaling af murværk, puds og sokkel. Diffusionsåbne produkter og grundig forbehandling. Gratis tilbud.",
		HeroHeading:     "Facademaling af murværk og puds",
		HeroSubheading:  "Grundig forbehandling og diffusionsåbne produkter",
		Intro:           "En velholdt facade løfter hele huset. Vi vurderer underlaget, udbedrer afskalninger og vælger produkter der lader muren ånde.",
		Sections: []string{
			"Algebehandling og afrensning med hedvand inden maling.",
			"Sokkel og murværk behandles med produkter afstemt efter underlaget.",
		},
	},
	"tapetsering": {
		Slug:            "tapetsering",
		MetaTitle:       "Tapetsering og glasvæv – Maler Christensen",
		MetaDescription: "Opsætning af tapet, filt og glasvæv med usynlige samlinger. Erfarne malersvende, fast pris.",
		HeroHeading:     "Tapet og glasvæv uden synlige samlinger",
		HeroSubheading:  "Fra klassisk tapet til moderne filt",
		Intro:           "Tapetsering kræver tålmodighed og præcision. Vi opmåler, tilpasser mønstre og sætter op, så samlingerne ikke kan findes bagefter.",
		Sections: []string{
			"Vi arbejder med alle typer: papirtapet, non-woven, filt og glasvæv.",
		},
	},
	"spartling": {
		Slug:            "spartling",
		MetaTitle:       "Spartling af vægge og lofter – Maler Christensen",
		MetaDescription: "Fuldspartling og pletspartling så underlaget står helt glat. Grundlaget for et flot slutresultat.",
		HeroHeading:     "Spartling – det usynlige håndværk",
		HeroSubheading:  "Et glat underlag er halvdelen af et flot resultat",
		Intro:           "Ingen maling kan skjule et dårligt underlag. Vi fuldspartler og sliber, til væggen står knivskarp i strejflys.",
		Sections: []string{
			"Pletspartling, fuldspartling og udbedring af revner og huller.",
		},
	},
	"sproejtemaling": {
		Slug:            "sproejtemaling",
		MetaTitle:       "Sprøjtemaling – Maler Christensen Slagelse",
		MetaDescription: "Sprøjtemaling af lofter, døre og store flader. Hurtigt, ensartet og helt uden penselstrøg.",
		HeroHeading:     "Sprøjtemaling med fabriksfinish",
		HeroSubheading:  "Ensartet overflade på rekordtid",
		Intro:           "På store flader og detaljeret træværk giver sprøjten en finish, penslen ikke kan matche – og ofte til en lavere samlet pris.",
		Sections: []string{
			"Airless-anlæg til lofter og vægge, fint forstøvet HVLP til døre og lister.",
		},
	},
	"traevaerk-og-lakering": {
		Slug:            "traevaerk-og-lakering",
		MetaTitle:       "Maling af træværk og lakering – Maler Christensen",
		MetaDescription: "Døre, karme, paneler og vinduer malet eller lakeret med holdbar finish. Fast tilbud på Vestsjælland.",
		HeroHeading:     "Træværk og lakering",
		HeroSubheading:  "Døre, karme og paneler som nye",
		Intro:           "Slidt træværk trækker helhedsindtrykket ned. Vi sliber, grunder og maler, så døre og karme fremstår som nye igen.",
		Sections: []string{
			"Slibning og grunding inden slutbehandling – genvejen udenom skaller af.",
		},
	},
	"vinduesmaling": {
		Slug:            "vinduesmaling",
		MetaTitle:       "Vinduesmaling – Maler Christensen Slagelse",
		MetaDescription: "Istandsættelse og maling af trævinduer. Forlæng vinduernes levetid i stedet for at skifte dem.",
		HeroHeading:     "Vinduesmaling og istandsættelse",
		HeroSubheading:  "Ofte billigere end nye vinduer",
		Intro:           "Gode trævinduer kan holde i generationer, hvis de vedligeholdes. Vi kitter, grunder og maler, inden råd får fat.",
		Sections: []string{
			"Kitning, grunding og to gange slutmaling som standard.",
		},
	},
	"erhvervsmaling": {
		Slug:            "erhvervsmaling",
		MetaTitle:       "Erhvervsmaling – Maler Christensen",
		MetaDescription: "Malerarbejde for butikker, kontorer og boligforeninger. Vi arbejder gerne aften og weekend, så driften ikke forstyrres.",
		HeroHeading:     "Malerarbejde for erhverv",
		HeroSubheading:  "Butikker, kontorer og boligforeninger",
		Intro:           "Erhvervsopgaver kræver planlægning. Vi lægger arbejdet uden for jeres åbningstid og leverer til den aftalte deadline.",
		Sections: []string{
			"Fast kontaktperson og løbende status på større opgaver.",
			"Serviceaftaler til boligforeninger med fast årlig vedligehold.",
		},
	},
	"forsikringsskader": {
		Slug:            "forsikringsskader",
		MetaTitle:       "Maler til forsikringsskader – Maler Christensen",
		MetaDescription: "Udbedring af vand- og røgskader i samarbejde med dit forsikringsselskab. Hurtig opstart på hele Vestsjælland.",
		HeroHeading:     "Udbedring af forsikringsskader",
		HeroSubheading:  "Vi taler med forsikringen for dig",
		Intro:           "Efter en vandskade skal der handles hurtigt. Vi dokumenterer, afrapporterer til selskabet og fører væggene tilbage til før skaden.",
		Sections: []string{
			"Dokumentation og fotorapport direkte til dit forsikringsselskab.",
		},
	},
}

// ServiceContentFor returns the authored content for a service slug, or nil
// when none is authored.
func ServiceContentFor(slug string) *types.ServiceContent {
	if c, ok := serviceContent[slug]; ok {
		return &c
	}
	return nil
}
