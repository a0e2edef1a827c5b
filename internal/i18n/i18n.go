package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"portfolio-cms/internal/domain"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
)

// supportedTags is index-aligned with domain.Languages.
var supportedTags = []language.Tag{
	language.French,
	language.English,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the content language codes.
func Supported() []string {
	out := make([]string, len(domain.Languages))
	copy(out, domain.Languages)
	return out
}

// IsSupported reports whether code is a content language code.
func IsSupported(code string) bool {
	for _, l := range domain.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// Resolve picks the content language from an explicit value (query
// parameter), then the Accept-Language header, then fallback.
func Resolve(explicit, acceptLanguage, fallback string) string {
	if !IsSupported(fallback) {
		fallback = domain.LangFR
	}
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			if code, ok := match(tag); ok {
				return code
			}
		}
	}
	if acceptLanguage = strings.TrimSpace(acceptLanguage); acceptLanguage != "" {
		if tags, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil && len(tags) > 0 {
			if code, ok := match(tags...); ok {
				return code
			}
		}
	}
	return fallback
}

func match(tags ...language.Tag) (string, bool) {
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return "", false
	}
	return domain.Languages[index], true
}
