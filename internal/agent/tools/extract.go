package tools

import (
	"regexp"
	"strings"
	"unicode"

	"fulano-assistant/pkg/textfold"
)

// Extractor pulls a tool argument out of a free-text utterance.
// ok is false when nothing matched and the returned value is a fallback (or empty).
type Extractor interface {
	Extract(text string) (value string, ok bool)
}

// CityExtractor finds a known city name in an utterance, ignoring case and accents.
type CityExtractor struct {
	cities   []string
	folded   []string
	fallback string
}

// NewCityExtractor builds an extractor over cities. An empty list uses KnownCities.
func NewCityExtractor(fallback string, cities ...string) *CityExtractor {
	if len(cities) == 0 {
		cities = KnownCities
	}
	if fallback == "" {
		fallback = defaultCity
	}
	folded := make([]string, len(cities))
	for i, c := range cities {
		folded[i] = textfold.Fold(c)
	}
	return &CityExtractor{cities: cities, folded: folded, fallback: fallback}
}

// Extract returns the first known city mentioned, or the fallback city.
func (e *CityExtractor) Extract(text string) (string, bool) {
	words := strings.FieldsFunc(textfold.Fold(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	joined := " " + strings.Join(words, " ") + " "
	for i, f := range e.folded {
		if strings.Contains(joined, " "+f+" ") {
			return e.cities[i], true
		}
	}
	return e.fallback, false
}

var arithmeticChars = regexp.MustCompile(`[0-9.+\-*/()]+`)

// ExpressionExtractor keeps only digits, operators and parentheses.
type ExpressionExtractor struct{}

// Extract returns the arithmetic part of text. ok is false when no digit survives.
func (ExpressionExtractor) Extract(text string) (string, bool) {
	expr := strings.Trim(strings.Join(arithmeticChars.FindAllString(text, -1), ""), ".")
	if !strings.ContainsAny(expr, "0123456789") {
		return "", false
	}
	return expr, true
}

var (
	_ Extractor = (*CityExtractor)(nil)
	_ Extractor = ExpressionExtractor{}
)
