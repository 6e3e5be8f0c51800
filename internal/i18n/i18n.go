// Package i18n resolves display labels for category and difficulty keys.
// Stored values and display labels are distinct: recipes carry raw keys,
// the UI shows the locale-dependent label.
package i18n

import (
	"strings"
	"unicode"
)

// Locale identifies a supported translation table.
type Locale string

const (
	English    Locale = "en"
	Portuguese Locale = "pt"
)

// DefaultLocale matches the original application default.
const DefaultLocale = Portuguese

// NormalizeKey canonicalizes a category key: case-folded with all
// whitespace removed. Both the filter-match path and the label-lookup
// path use this exact function, so "Low Carb", "lowCarb" and "lowcarb"
// all resolve to the same key.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

var categoryLabels = map[Locale]map[string]string{
	English: {
		"all":         "All",
		"vegan":       "Vegan",
		"lowcarb":     "Low Carb",
		"highprotein": "High Protein",
		"glutenfree":  "Gluten Free",
		"vegetarian":  "Vegetarian",
	},
	Portuguese: {
		"all":         "Todas",
		"vegan":       "Vegana",
		"lowcarb":     "Baixo Carboidrato",
		"highprotein": "Rica em Proteína",
		"glutenfree":  "Sem Glúten",
		"vegetarian":  "Vegetariana",
	},
}

var difficultyLabels = map[Locale]map[string]string{
	English: {
		"easy":   "Easy",
		"medium": "Medium",
		"hard":   "Hard",
	},
	Portuguese: {
		"easy":   "Fácil",
		"medium": "Médio",
		"hard":   "Difícil",
	},
}

// Display order of the filter options, independent of locale.
var (
	categoryKeys   = []string{"all", "vegan", "lowcarb", "highprotein", "glutenfree", "vegetarian"}
	difficultyKeys = []string{"easy", "medium", "hard"}
)

// Option pairs a stored key with its display label.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ParseLocale maps a request value onto a supported locale, falling back
// to the default.
func ParseLocale(value string) Locale {
	switch Locale(strings.ToLower(value)) {
	case English:
		return English
	case Portuguese:
		return Portuguese
	default:
		return DefaultLocale
	}
}

// CategoryOptions returns the category filter options in display order.
func CategoryOptions(locale Locale) []Option {
	out := make([]Option, len(categoryKeys))
	for i, key := range categoryKeys {
		out[i] = Option{Key: key, Label: CategoryLabel(key, locale)}
	}
	return out
}

// DifficultyOptions returns the difficulty filter options in display order.
func DifficultyOptions(locale Locale) []Option {
	out := make([]Option, len(difficultyKeys))
	for i, key := range difficultyKeys {
		out[i] = Option{Key: key, Label: DifficultyLabel(key, locale)}
	}
	return out
}

// CategoryLabel returns the display label for a category key in the given
// locale. Unknown keys fall back to the raw key unchanged.
func CategoryLabel(key string, locale Locale) string {
	if table, ok := categoryLabels[locale]; ok {
		if label, ok := table[NormalizeKey(key)]; ok {
			return label
		}
	}
	return key
}

// DifficultyLabel returns the display label for a difficulty level in the
// given locale, falling back to the raw value.
func DifficultyLabel(level string, locale Locale) string {
	if table, ok := difficultyLabels[locale]; ok {
		if label, ok := table[strings.ToLower(level)]; ok {
			return label
		}
	}
	return level
}
