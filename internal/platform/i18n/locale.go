// Package i18n defines the closed set of supported locales and how raw
// locale hints are matched onto it.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	// LocaleEnglish is the default locale and is served without a path prefix.
	LocaleEnglish = "en"
	// LocaleSlovak is served under the /sk path prefix.
	LocaleSlovak = "sk"
	// DefaultLocale is used whenever no supported locale can be resolved.
	DefaultLocale = LocaleEnglish
)

var supportedTags = []language.Tag{
	language.English,
	language.Slovak,
}

var matcher = language.NewMatcher(supportedTags)

var displayNames = map[string]string{
	LocaleEnglish: "English",
	LocaleSlovak:  "Slovenčina",
}

// SupportedLocales returns supported locale identifiers, default first.
func SupportedLocales() []string {
	return []string{LocaleEnglish, LocaleSlovak}
}

// IsSupported reports whether locale is exactly one of the supported identifiers.
func IsSupported(locale string) bool {
	_, ok := displayNames[locale]
	return ok
}

// DisplayName returns the native name of a supported locale.
func DisplayName(locale string) string {
	return displayNames[locale]
}

// Normalize maps a raw locale hint such as "sk-SK" or "EN" onto a supported
// locale. Unknown or malformed hints are rejected.
func Normalize(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return "", false
	}
	locale := base.String()
	if !IsSupported(locale) {
		return "", false
	}
	return locale, true
}

// MatchAcceptLanguage picks the best supported locale for an Accept-Language
// header value. ok is false when nothing in the header is supported.
func MatchAcceptLanguage(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return supportedLocaleAt(index), true
}

// Tag returns the language tag for a supported locale, defaulting to English.
func Tag(locale string) language.Tag {
	switch locale {
	case LocaleSlovak:
		return language.Slovak
	default:
		return language.English
	}
}

func supportedLocaleAt(index int) string {
	locales := SupportedLocales()
	if index < 0 || index >= len(locales) {
		return DefaultLocale
	}
	return locales[index]
}
