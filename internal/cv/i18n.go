package cv

import (
	"fmt"

	"golang.org/x/text/language"
)

// terms maps source-language values to the target output language. Spoken
// language names and fluency labels are the only free-text fields not
// authored bilingually, so they go through this table instead.
var terms = map[Language]map[string]string{
	LangES: {
		"Spanish":      "Español",
		"English":      "Inglés",
		"French":       "Francés",
		"Portuguese":   "Portugués",
		"Native":       "Nativo",
		"Fluent":       "Fluido",
		"Advanced":     "Avanzado",
		"Intermediate": "Intermedio",
		"Basic":        "Básico",
	},
	LangEN: {
		"Español":    "Spanish",
		"Inglés":     "English",
		"Francés":    "French",
		"Portugués":  "Portuguese",
		"Nativo":     "Native",
		"Fluido":     "Fluent",
		"Avanzado":   "Advanced",
		"Intermedio": "Intermediate",
		"Básico":     "Basic",
	},
}

// Translate maps a language/fluency term into the requested output language.
// Terms without a mapping pass through unchanged.
func Translate(term string, lang Language) string {
	if mapped, ok := terms[lang][term]; ok {
		return mapped
	}
	return term
}

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

// ParseLanguage resolves a BCP-47 tag (e.g. "es", "en-US") to one of the two
// supported output variants.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language tag %q: %w", s, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "", fmt.Errorf("unsupported language %q (supported: es, en)", s)
	}
	if idx == 0 {
		return LangES, nil
	}
	return LangEN, nil
}
