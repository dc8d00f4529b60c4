package registry

import "strings"

var danishFolding = strings.NewReplacer(
	"æ", "ae", "ø", "oe", "å", "aa",
	"Æ", "ae", "Ø", "oe", "Å", "aa",
	"é", "e", "ü", "u", "ö", "oe", "ä", "ae",
)

// Slugify derives a URL slug from a display name: lowercase, Danish
// diacritics folded (æ→ae, ø→oe, å→aa), everything else non-alphanumeric
// collapsed to single dashes.
func Slugify(name string) string {
	s := danishFolding.Replace(strings.TrimSpace(name))
	s = strings.ToLower(s)

	var b strings.Builder
	lastDash := true // suppress leading dash
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// CitySlug builds the canonical slug for an admin-created city page. Static
// registry entries keep whatever slug they were defined with.
func CitySlug(name string) string {
	return "maler-" + Slugify(name)
}
