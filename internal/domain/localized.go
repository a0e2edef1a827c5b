package domain

import "strings"

// Supported content languages.
const (
	LangFR = "fr"
	LangEN = "en"
)

// Languages lists content languages in editing order.
var Languages = []string{LangFR, LangEN}

// Localized maps a language code to its text. Each language is optional and
// independent of the others.
type Localized map[string]string

// L builds a Localized value from French and English text.
func L(fr, en string) Localized {
	return Localized{LangFR: fr, LangEN: en}
}

// Get returns the text for lang, or "" when absent.
func (l Localized) Get(lang string) string {
	if l == nil {
		return ""
	}
	return l[lang]
}

// Resolve returns the text for lang, falling back to the other languages in
// editing order when it is blank.
func (l Localized) Resolve(lang string) string {
	if v := l.Get(lang); strings.TrimSpace(v) != "" {
		return v
	}
	for _, other := range Languages {
		if v := l.Get(other); strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Normalized returns a non-nil copy, so it always encodes as a JSON object.
func (l Localized) Normalized() Localized {
	out := make(Localized, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
