package localization

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/pt"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// builtin lists the CLDR locales the module can register
var builtin = map[string]func() locales.Translator{
	"en":    en.New,
	"en_US": en_US.New,
	"en_GB": en_GB.New,
	"fr":    fr.New,
	"de":    de.New,
	"es":    es.New,
	"pt":    pt.New,
}

// BuiltinLocales returns the names of all locales that can be registered
func BuiltinLocales() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Translators holds the CLDR translators for the supported locales
type Translators struct {
	uni       *ut.UniversalTranslator
	supported []string
}

// NewTranslators registers the supported locales with defaultLocale as fallback
func NewTranslators(defaultLocale string, supported ...string) (*Translators, error) {
	fallbackCtor, ok := builtin[normalizeLocale(defaultLocale)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, defaultLocale)
	}

	translators := make([]locales.Translator, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, name := range supported {
		ctor, ok := builtin[normalizeLocale(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLocale, name)
		}
		trans := ctor()
		translators = append(translators, trans)
		names = append(names, trans.Locale())
	}

	return &Translators{
		uni:       ut.New(fallbackCtor(), translators...),
		supported: names,
	}, nil
}

// Supported returns the registered locale names
func (t *Translators) Supported() []string {
	return append([]string(nil), t.supported...)
}

// Default returns the fallback translator
func (t *Translators) Default() locales.Translator {
	return t.uni.GetFallback()
}

// Get returns the translator registered for locale. "fr-CH" and "fr_CH"
// are equivalent. When nothing is registered it reports false and returns
// the fallback.
func (t *Translators) Get(locale string) (locales.Translator, bool) {
	return t.uni.FindTranslator(candidates(locale)...)
}

// MatchAcceptLanguage picks the best registered locale for an
// Accept-Language header value, trying each tag and then its base language
// in the client's order of preference.
func (t *Translators) MatchAcceptLanguage(header string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}

	for _, tag := range tags {
		if trans, ok := t.uni.FindTranslator(candidates(tag.String())...); ok {
			return trans.Locale(), true
		}
	}
	return "", false
}

// candidates expands "fr-CH" into "fr_CH" and its base language "fr"
func candidates(locale string) []string {
	name := normalizeLocale(locale)
	if name == "" {
		return nil
	}
	result := []string{name}
	if base, _, found := strings.Cut(name, "_"); found && base != "" {
		result = append(result, base)
	}
	return result
}

// normalizeLocale converts BCP 47 separators to the CLDR underscore form
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "-", "_")
}
