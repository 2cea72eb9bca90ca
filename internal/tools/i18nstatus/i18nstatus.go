// Package i18nstatus reports translation coverage of the message catalogs
// against the base locale.
package i18nstatus

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	i18ncatalog "github.com/louisbranch/atrium/internal/platform/i18n/catalog"
)

// Report is the coverage of every locale relative to BaseLocale.
type Report struct {
	BaseLocale string         `json:"base_locale"`
	Locales    []LocaleStatus `json:"locales"`
}

// LocaleStatus summarizes one locale.
type LocaleStatus struct {
	Locale      string            `json:"locale"`
	BaseKeys    int               `json:"base_keys"`
	Translated  int               `json:"translated"`
	Missing     int               `json:"missing"`
	Extra       int               `json:"extra"`
	Completion  float64           `json:"completion"`
	Namespaces  []NamespaceStatus `json:"namespaces"`
	MissingKeys []string          `json:"missing_keys"`
	ExtraKeys   []string          `json:"extra_keys"`
}

// NamespaceStatus summarizes one namespace of a locale.
type NamespaceStatus struct {
	Namespace  string  `json:"namespace"`
	BaseKeys   int     `json:"base_keys"`
	Translated int     `json:"translated"`
	Missing    int     `json:"missing"`
	Extra      int     `json:"extra"`
	Completion float64 `json:"completion"`
}

// Complete reports whether no locale is missing a base key.
func (r Report) Complete() bool {
	for _, locale := range r.Locales {
		if locale.Missing > 0 {
			return false
		}
	}
	return true
}

// Build compares every locale in bundle with baseLocale.
func Build(bundle *i18ncatalog.Bundle, baseLocale string) (Report, error) {
	if bundle == nil {
		return Report{}, fmt.Errorf("catalog bundle is required")
	}
	if !bundle.HasLocale(baseLocale) {
		return Report{}, fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}

	statuses := make([]LocaleStatus, 0, len(bundle.Locales()))
	for _, locale := range bundle.Locales() {
		status := LocaleStatus{Locale: locale, MissingKeys: []string{}, ExtraKeys: []string{}}
		for _, namespace := range namespaceUnion(bundle, baseLocale, locale) {
			base := bundle.NamespaceMessages(baseLocale, namespace)
			target := bundle.NamespaceMessages(locale, namespace)
			missing := diffKeys(base, target)
			extra := diffKeys(target, base)
			translated := len(base) - len(missing)
			status.Namespaces = append(status.Namespaces, NamespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(base),
				Translated: translated,
				Missing:    len(missing),
				Extra:      len(extra),
				Completion: percent(translated, len(base)),
			})
			status.BaseKeys += len(base)
			status.Translated += translated
			status.MissingKeys = append(status.MissingKeys, qualify(namespace, missing)...)
			status.ExtraKeys = append(status.ExtraKeys, qualify(namespace, extra)...)
		}
		status.Missing = len(status.MissingKeys)
		status.Extra = len(status.ExtraKeys)
		status.Completion = percent(status.Translated, status.BaseKeys)
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Locale < statuses[j].Locale
	})
	return Report{BaseLocale: baseLocale, Locales: statuses}, nil
}

// WriteJSON writes rep as indented JSON.
func WriteJSON(out io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = out.Write(data)
	return err
}

// WriteMarkdown writes rep as a translator-facing markdown table.
func WriteMarkdown(out io.Writer, rep Report) error {
	var b strings.Builder
	b.WriteString("# I18n Status\n\n")
	fmt.Fprintf(&b, "Base locale: `%s`.\n\n", rep.BaseLocale)
	b.WriteString("| Locale | Base Keys | Translated | Missing | Extra | Completion |\n")
	b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", locale.Locale, locale.BaseKeys, locale.Translated, locale.Missing, locale.Extra, locale.Completion)
	}

	for _, locale := range rep.Locales {
		fmt.Fprintf(&b, "\n## Locale: `%s`\n\n", locale.Locale)
		b.WriteString("| Namespace | Base Keys | Translated | Missing | Extra | Completion |\n")
		b.WriteString("| --- | ---: | ---: | ---: | ---: | ---: |\n")
		for _, ns := range locale.Namespaces {
			fmt.Fprintf(&b, "| `%s` | %d | %d | %d | %d | %.1f%% |\n", ns.Namespace, ns.BaseKeys, ns.Translated, ns.Missing, ns.Extra, ns.Completion)
		}
		writeKeyList(&b, "Missing Keys", locale.MissingKeys)
		writeKeyList(&b, "Extra Keys", locale.ExtraKeys)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n### %s\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

func namespaceUnion(bundle *i18ncatalog.Bundle, locales ...string) []string {
	set := map[string]struct{}{}
	for _, locale := range locales {
		for _, namespace := range bundle.Namespaces(locale) {
			set[namespace] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for namespace := range set {
		out = append(out, namespace)
	}
	sort.Strings(out)
	return out
}

// diffKeys returns the keys of a absent from b, sorted.
func diffKeys(a map[string]string, b map[string]string) []string {
	out := make([]string, 0)
	for key := range a {
		if _, ok := b[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func qualify(namespace string, keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, i18ncatalog.QualifiedKey(namespace, key))
	}
	return out
}

func percent(numerator int, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
