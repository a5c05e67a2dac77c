// Package i18n resolves message keys to localized texts. Messages live in
// flat per-locale maps; lookups fall back to the default locale and finally
// to the key itself, so a missing translation never breaks a response.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLocale is used when the client sends no Accept-Language header, an
// unparseable one, or one that matches no supported locale.
const DefaultLocale = "en-US"

var supported = []string{"en-US", "pt-BR", "es-ES"}

// Catalog performs locale negotiation and message lookup.
type Catalog struct {
	defaultLocale string
	locales       []string
	matcher       language.Matcher
}

// NewCatalog creates a catalog with the given default locale. Unsupported
// defaults silently fall back to en-US.
func NewCatalog(defaultLocale string) *Catalog {
	if _, ok := messages[defaultLocale]; !ok {
		defaultLocale = DefaultLocale
	}

	// The matcher prefers earlier tags on ties, so the default goes first.
	locales := []string{defaultLocale}
	for _, loc := range supported {
		if loc != defaultLocale {
			locales = append(locales, loc)
		}
	}
	tags := make([]language.Tag, len(locales))
	for i, loc := range locales {
		tags[i] = language.MustParse(loc)
	}

	return &Catalog{
		defaultLocale: defaultLocale,
		locales:       locales,
		matcher:       language.NewMatcher(tags),
	}
}

// Resolve negotiates a supported locale from an Accept-Language header.
func (c *Catalog) Resolve(acceptLanguage string) string {
	if acceptLanguage == "" {
		return c.defaultLocale
	}
	requested, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(requested) == 0 {
		return c.defaultLocale
	}
	_, idx, conf := c.matcher.Match(requested...)
	if conf == language.No {
		return c.defaultLocale
	}
	return c.locales[idx]
}

// Message returns the localized text for key, formatted with args when
// present.
func (c *Catalog) Message(locale, key string, args ...interface{}) string {
	text, ok := messages[locale][key]
	if !ok {
		text, ok = messages[c.defaultLocale][key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(text, args...)
	}
	return text
}
