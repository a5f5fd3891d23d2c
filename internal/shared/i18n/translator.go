// Package i18n provides the translation lookup used for user-facing error
// messages. The engine itself is locale-agnostic: it hands over a message key
// plus substitution parameters and receives a formatted string back.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Params holds named substitution values for a message. A parameter named
// "minimum" replaces every "%minimum%" occurrence in the catalog entry.
type Params map[string]string

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys against the catalog of one language.
type Translator struct {
	tag language.Tag
}

// NewTranslator returns a translator for the best match of the given locale
// (e.g. "en", "ru-RU"). Unknown locales fall back to English.
func NewTranslator(locale string) *Translator {
	tag, _ := language.MatchStrings(matcher, locale)
	// MatchStrings may return a more specific tag; collapse to a supported base.
	base, _ := tag.Base()
	for _, s := range supported {
		if b, _ := s.Base(); b == base {
			return &Translator{tag: s}
		}
	}
	return &Translator{tag: supported[0]}
}

// Trans looks the key up and substitutes parameters. Unknown keys are
// returned verbatim so a missing catalog entry is visible, not silent.
func (t *Translator) Trans(key string, params Params) string {
	msg, ok := catalog[t.tag][key]
	if !ok {
		msg, ok = catalog[supported[0]][key]
	}
	if !ok {
		return key
	}
	for name, value := range params {
		msg = strings.ReplaceAll(msg, "%"+name+"%", value)
	}
	return msg
}

var defaultTranslator = NewTranslator("en")

// Trans translates using the default (English) translator.
func Trans(key string, params Params) string {
	return defaultTranslator.Trans(key, params)
}
