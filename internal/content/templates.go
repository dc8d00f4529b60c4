package content

import (
	"strconv"
	"strings"
)

// All marketing copy lives in the tables below as data. Placeholders are
// expanded by expand(); the generators only pick rows, they never hold copy.
//
// Placeholders: {city} {distance} {company} {phone} {rating} {base}

func expand(tpl string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func formatKm(distance float64) string {
	return strconv.FormatFloat(distance, 'f', -1, 64)
}

const (
	metaTitleTpl       = "Maler {city} – {company} | Gratis tilbud inden 24 timer"
	metaDescriptionTpl = "Leder du efter en maler i {city}? {company} leverer professionelt malerarbejde med {rating} stjerner på Trustpilot. Ring {phone} og få et gratis tilbud."
	heroHeadingTpl     = "Maler i {city}"
	heroSubheadingTpl  = "Professionelt malerarbejde i {city} og omegn – fast pris og {rating} stjerner på Trustpilot"
)

// Intro copy per content band: home, local, medium, far.
var introTpl = map[contentBand]string{
	bandHome:   "Velkommen til {company} – din lokale malermester i {city}. Vores værksted ligger midt i byen, og vi har malet for private og erhverv her i over 20 år. Ingen opgave er for stor eller for lille.",
	bandLocal:  "{company} er din nærmeste malermester i {city}. Med kun {distance} km fra vores værksted i {base} er vi hurtigt fremme, og du betaler aldrig for kørsel i lokalområdet.",
	bandMedium: "{company} udfører malerarbejde i hele {city}-området. Fra vores base i {base} dækker vi {city} med faste ugentlige ruter, så vi kan tilbyde samme skarpe priser som lokalt.",
	bandFar:    "{company} tager gerne malerupgaver i {city}. Selvom vi holder til i {base}, samler vi opgaver i området, så prisen holder – og kvaliteten er den samme uanset adressen.",
}

// AboutCity copy per content band. A hand-authored entry in namedCityAbout
// beats the band row; the home band beats both.
var aboutCityTpl = map[contentBand]string{
	bandHome:   "{city} er vores hjemby. Her kender vi hvert kvarter fra Bredegade til Motalavej, og en stor del af vores opgaver kommer fra anbefalinger mellem naboer. Det forpligter – og det kan ses på vores {rating} stjerner på Trustpilot.",
	bandLocal:  "{city} ligger kun {distance} km fra vores værksted, og byen hører til vores faste kerneområde. Mange af vores malersvende bor selv i området og kender de lokale bygningstyper indgående.",
	bandMedium: "{city} er en fast del af vores dækningsområde. Vi har løbende opgaver i byen og omegnen, og kørslen på {distance} km lægger vi aldrig oven i tilbuddet.",
	// The far band is also the fallback for cities without a usable distance,
	// so its copy must not interpolate {distance}.
	bandFar: "Også i {city} leverer vi malerarbejde med samme garanti og finish som hjemme i {base}. Ved større opgaver kommer vi gerne forbi til en gratis besigtigelse, uanset afstanden.",
}

// Hand-authored aboutCity overrides, keyed by exact city name.
var namedCityAbout = map[string]string{
	"Korsør":  "Korsør og Halsskov kender vi ud og ind – fra de saltpåvirkede facader ved havnen til sommerhusene på Ceres-siden. Kystklimaet stiller særlige krav til udendørs behandlinger, og dem har vi løst her i årtier.",
	"Sorø":    "Sorø er en by med mange bevaringsværdige huse omkring Akademiet og søen, og vi har stor erfaring med linoliemaling og farvesætning efter de lokale retningslinjer.",
	"Næstved": "Næstved er Sydsjællands største by, og vi har faste kunder i både midtbyens etageejendomme og parcelhuskvartererne i Rønnebæk og Fensmark. Byens blandede byggeri kræver en maler, der mestrer både gammelt og nyt.",
	"Korsør Havn": "Havneområdet i Korsør er et kapitel for sig: salt, blæst og skiftende temperaturer æder almindelig maling. Vi bruger marinegodkendte systemer, hvor det er nødvendigt.",
}

const whyChooseUsTpl = "Når du vælger {company} i {city}, får du en malermester med svendebrev, fuld forsikring og {rating} stjerner på Trustpilot. Vi giver altid fast pris inden opstart, møder til tiden og rydder op efter os selv – hver dag, ikke kun den sidste."

const servicesBlurbHeaderTpl = "I {city} tilbyder vi blandt andet:"

// FAQ question templates, one per fixed category, in emitted order.
const (
	faqPriceQ      = "Hvad koster en maler i {city}?"
	faqDurationQ   = "Hvor lang tid tager malerarbejde i {city}?"
	faqFreeQuoteQ  = "Giver I gratis tilbud i {city}?"
	faqCertQ       = "Er jeres malere uddannede og forsikrede?"
	faqSchedulingQ = "Kan I arbejde uden for normal arbejdstid i {city}?"
	faqCoverageQ   = "Hvilke områder dækker I omkring {city}?"
)

// Price answers: local, nearby, and a shared medium/far variant.
var faqPriceA = map[faqBand]string{
	faqLocal:  "I {city} er du i vores absolutte nærområde, så du får vores laveste timepris og aldrig kørselstillæg. En typisk stue koster fra 4.500 kr. inkl. maling – ring {phone} for en fast pris.",
	faqNearby: "{city} ligger {distance} km fra vores værksted, og vi kører her flere gange om ugen. Derfor kan vi holde priserne på niveau med lokalområdet – og tilbuddet er altid fast, inden vi går i gang.",
	faqFar:    "Ved opgaver i {city} samler vi gerne flere dage ad gangen, så kørslen ikke belaster prisen. Du får altid et fast tilbud fra {company}, inden arbejdet starter.",
}

// Duration answers: local/nearby share one variant, medium/far the other.
var faqDurationA = map[faqBand]string{
	faqLocal: "Et enkelt rum tager typisk 1-2 dage, en hel lejlighed 3-5 dage. Fordi {city} ligger tæt på vores værksted, kan vi ofte starte med få dages varsel.",
	faqFar:   "Et enkelt rum tager typisk 1-2 dage, en hel lejlighed 3-5 dage. I {city} planlægger vi sammenhængende arbejdsdage, så opgaven bliver færdig uden unødige pauser.",
}

// Free-quote answers keyed by the 50 km cutoff.
var faqFreeQuoteA = map[bool]string{
	true:  "Ja, altid. Vi kommer gratis og uforpligtende ud i {city} og giver et fast skriftligt tilbud – som regel inden for 24 timer.",
	false: "Ja. Ved mindre opgaver i {city} giver vi gerne tilbud ud fra billeder og mål, og ved større opgaver kommer vi naturligvis ud til en gratis besigtigelse.",
}

const faqCertA = "Ja. Alle vores malere har svendebrev, og {company} er medlem af Danske Malermestre med fuld erhvervs- og garantiforsikring. Dit arbejde er dækket af garantiordningen."

// Scheduling answers: local vs. everyone else.
var faqSchedulingA = map[bool]string{
	true:  "Ja, i {city} er vi meget fleksible – vi bor lige i nærheden. Aften- og weekendarbejde aftales uden tillæg ved erhvervsopgaver.",
	false: "Ja, efter aftale. Ved erhvervsopgaver i {city} planlægger vi gerne arbejdet uden for åbningstid, så jeres drift ikke forstyrres.",
}

// Coverage answers: the local variant covers both local and nearby bands.
var faqCoverageA = map[faqBand]string{
	faqLocal:  "{city} ligger i vores kerneområde. Vi dækker hele byen og alle omkringliggende landsbyer uden kørselstillæg.",
	faqMedium: "Vi dækker {city} og hele bæltet mellem {base} og byen – inklusive de mindre byer undervejs på ruten.",
	faqFar:    "{city} er i udkanten af vores dækningsområde, men vi tager gerne opgaver her – især lidt større opgaver, hvor vi kan planlægge sammenhængende dage.",
}
