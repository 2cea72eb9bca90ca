// Package i18n binds the message catalog to one request locale for use by
// handlers and templates.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/louisbranch/atrium/internal/platform/i18n"
	"github.com/louisbranch/atrium/internal/platform/i18n/catalog"
)

// Localizer resolves catalog messages for a single locale.
type Localizer struct {
	bundle  *catalog.Bundle
	locale  string
	printer *message.Printer
}

// New binds bundle to locale. Unsupported locales fall back to the default
// locale and a nil bundle uses the embedded catalog.
func New(bundle *catalog.Bundle, locale string) Localizer {
	if bundle == nil {
		bundle = catalog.Default()
	}
	normalized, ok := platformi18n.Normalize(locale)
	if !ok {
		normalized = platformi18n.DefaultLocale
	}
	return Localizer{
		bundle:  bundle,
		locale:  normalized,
		printer: message.NewPrinter(platformi18n.Tag(normalized)),
	}
}

// Locale returns the bound locale identifier.
func (l Localizer) Locale() string {
	if l.locale == "" {
		return platformi18n.DefaultLocale
	}
	return l.locale
}

// Tag returns the bound locale as a language tag.
func (l Localizer) Tag() language.Tag {
	return platformi18n.Tag(l.Locale())
}

// T returns the message for namespace and key.
func (l Localizer) T(namespace, key string) string {
	return l.TV(namespace, key, nil)
}

// TV returns the message for namespace and key with {name} placeholders
// replaced from vars.
func (l Localizer) TV(namespace, key string, vars map[string]string) string {
	bundle := l.bundle
	if bundle == nil {
		bundle = catalog.Default()
	}
	return bundle.Translate(l.Locale(), namespace, key, vars)
}

// Sprintf resolves a qualified "namespace.key" reference and formats args
// into it with the locale's printer.
func (l Localizer) Sprintf(key message.Reference, args ...any) string {
	qualified, ok := key.(string)
	if !ok {
		return l.print(key, args...)
	}
	namespace, local, found := strings.Cut(strings.TrimSpace(qualified), ".")
	if !found || namespace == "" || local == "" {
		return l.print(qualified, args...)
	}
	translated := l.TV(namespace, local, nil)
	if len(args) == 0 {
		return translated
	}
	return l.print(translated, args...)
}

func (l Localizer) print(key message.Reference, args ...any) string {
	printer := l.printer
	if printer == nil {
		printer = message.NewPrinter(l.Tag())
	}
	return printer.Sprintf(key, args...)
}
