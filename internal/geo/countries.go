package geo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryNameFunc resolves an ISO 3166-1 alpha-2 country code to a display name.
type CountryNameFunc func(code string) (string, bool)

var englishRegions = display.English.Regions()

// EnglishCountryName returns the English display name of a country code,
// e.g. "DE" -> "Germany". Unknown codes and non-country regions are rejected.
func EnglishCountryName(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", false
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", false
	}
	name := englishRegions.Name(region)
	if name == "" {
		return "", false
	}
	return name, true
}

// StaticCountryNames builds a lookup from a fixed table keyed by upper-case code.
func StaticCountryNames(names map[string]string) CountryNameFunc {
	table := make(map[string]string, len(names))
	for code, name := range names {
		table[strings.ToUpper(code)] = name
	}
	return func(code string) (string, bool) {
		name, ok := table[strings.ToUpper(strings.TrimSpace(code))]
		return name, ok && name != ""
	}
}

// LocationMentionsCountry reports whether the free-text location contains the
// localized name of the country, ignoring case.
func LocationMentionsCountry(location, code string, lookup CountryNameFunc) bool {
	if lookup == nil || strings.TrimSpace(location) == "" {
		return false
	}
	name, ok := lookup(code)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(location), strings.ToLower(name))
}

// SameCountry compares two country codes, ignoring case and surrounding space.
func SameCountry(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	return a != "" && strings.EqualFold(a, b)
}
