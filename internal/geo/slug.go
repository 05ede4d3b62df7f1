package geo

import (
	"regexp"
	"strings"
)

var turkishFold = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "c", "Ğ", "g", "İ", "i", "Ö", "o", "Ş", "s", "Ü", "u",
)

var (
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugStrip   = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify folds Turkish characters and lowercases a city name into the
// URL-safe form the booking backend expects: "Şanlıurfa" -> "sanliurfa",
// "Afyonkarahisar" -> "afyonkarahisar".
func Slugify(name string) string {
	s := turkishFold.Replace(name)
	s = strings.ToLower(s)
	s = slugSpaces.ReplaceAllString(strings.TrimSpace(s), "-")
	s = slugStrip.ReplaceAllString(s, "")
	return slugHyphens.ReplaceAllString(s, "-")
}
