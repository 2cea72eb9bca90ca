package templates

// Hand-written in the shape templ generates from language.templ.

import (
	"context"

	"github.com/a-h/templ"

	platformi18n "github.com/louisbranch/atrium/internal/platform/i18n"
	"github.com/louisbranch/atrium/internal/services/web/routepath"
)

// LanguageOption is one entry of the language selector.
type LanguageOption struct {
	Locale string
	Label  string
	Active bool
	URL    string
}

// LanguageOptions returns supported locales with the active one marked.
// Each URL switches to that locale and comes back to the current page.
func LanguageOptions(page PageContext) []LanguageOption {
	current := page.CurrentURL()
	locales := platformi18n.SupportedLocales()
	options := make([]LanguageOption, 0, len(locales))
	for _, locale := range locales {
		options = append(options, LanguageOption{
			Locale: locale,
			Label:  platformi18n.DisplayName(locale),
			Active: locale == page.Locale(),
			URL:    routepath.LocaleSwitch(locale, current),
		})
	}
	return options
}

// LanguageSelector renders links to the current page in every locale.
func LanguageSelector(page PageContext) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<nav class="language-selector" id="language-selector"`)
		h.attr("aria-label", page.T("common", "changeLanguage"))
		h.raw(`><ul>`)
		for _, option := range LanguageOptions(page) {
			h.raw(`<li><a`)
			h.url("href", option.URL)
			h.attr("hreflang", option.Locale)
			h.attr("lang", option.Locale)
			if option.Active {
				h.raw(` aria-current="true" class="active"`)
			}
			h.raw(`>`)
			h.text(option.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav>`)
	})
}
