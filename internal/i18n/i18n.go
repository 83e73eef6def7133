// Package i18n holds the translation tables for the five supported interface
// languages and exposes them as pure lookups. Nothing here is ambient: the
// service layer receives a Translator value and threads it through, so output
// for a given (input, Translator) pair is deterministic.
package i18n

import (
	"fmt"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jyvais/backend/internal/domain"
)

var tags = []language.Tag{
	language.English,
	language.French,
	language.German,
	language.Italian,
	language.Dutch,
}

var codes = []string{"en", "fr", "de", "it", "nl"}

// English is first in tags, so it is the matcher's fallback for unknown or
// empty codes.
var matcher = language.NewMatcher(tags)

// Translator resolves message keys for one language. The zero value is not
// usable; obtain one via Match.
type Translator struct {
	code  string
	tag   language.Tag
	table map[string]string
}

// Match resolves an arbitrary language code ("fr", "de-AT", "en-US", garbage)
// to the closest supported language, falling back to English.
func Match(code string) Translator {
	_, i := language.MatchStrings(matcher, code)
	return Translator{code: codes[i], tag: tags[i], table: tables[codes[i]]}
}

// Supported reports whether code is exactly one of the supported language
// codes. Unlike Match it does no fuzzy matching; use it to validate a code
// before persisting it.
func Supported(code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

// Codes returns the supported language codes, English first.
func Codes() []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}

// Code returns the resolved language code, e.g. "fr".
func (t Translator) Code() string { return t.code }

// T returns the message for key in the translator's language, falling back
// to English and finally to the key itself for unknown keys.
func (t Translator) T(key string) string {
	if s, ok := t.table[key]; ok {
		return s
	}
	if s, ok := tables["en"][key]; ok {
		return s
	}
	return key
}

// TransportLabel returns the localized display label for a transport mode.
func (t Translator) TransportLabel(m domain.TransportMode) string {
	return t.T("transport." + string(m))
}

// ReturnSuffix returns the localized word appended to a trip name by the
// return-trip transform, e.g. "Retour" for French.
func (t Translator) ReturnSuffix() string {
	return t.T("return.suffix")
}

// MailtoBody renders the localized e-mail body for a route name and map link.
func (t Translator) MailtoBody(routeName, mapURL string) string {
	return fmt.Sprintf(t.T("mailto.body"), routeName, mapURL)
}

// Collator returns a collator for the translator's language, used to order
// saved itineraries by name the way the language sorts.
func (t Translator) Collator() *collate.Collator {
	return collate.New(t.tag)
}

// ReturnSuffixes returns the return-trip suffix of every supported language.
// The return-trip transform strips a trailing suffix from any of them, so a
// name suffixed under one active language is correctly un-suffixed under
// another.
func ReturnSuffixes() []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, tables[c]["return.suffix"])
	}
	return out
}
