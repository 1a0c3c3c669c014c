package intent

import (
	"strings"
	"unicode"

	"fulano-assistant/pkg/textfold"
)

// tokenize folds case and accents, then splits on anything that is not a letter or digit.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(textfold.Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, f := range fields {
		if isNumber(f) {
			fields[i] = numberToken
		}
	}
	return fields
}

// features counts unigrams and bigrams.
func features(s string) map[string]float64 {
	tokens := tokenize(s)
	counts := make(map[string]float64, 2*len(tokens))
	for i, tok := range tokens {
		counts[tok]++
		if i > 0 {
			counts[tokens[i-1]+" "+tok]++
		}
	}
	return counts
}

func isNumber(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
