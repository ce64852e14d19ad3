package wordnet

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// LemmaSeparator joins the tokens of a multi-word lemma as stored in the word
// table, e.g. "natural_language_processing".
const LemmaSeparator = "_"

// CanonicalLemma normalizes a surface form into the stored lemma form.
//
// The input is NFKC normalized (folding full-width forms), lower cased, and
// every run of whitespace or underscores becomes a single LemmaSeparator.
// "Natural Language Processing", "natural  language_processing" and
// "natural_language_processing" all map to "natural_language_processing".
func CanonicalLemma(lemma string) string {
	s := norm.NFKC.String(lemma)
	// cases.Caser is stateful, so one is built per call.
	s = cases.Lower(language.Und).String(s)

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '_'
	})
	return strings.Join(tokens, LemmaSeparator)
}
