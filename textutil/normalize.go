package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ──────────────────────────────────────────────
// Unicode normalization — shared by every text-scoring component
// ──────────────────────────────────────────────

// polishFold maps the Polish letters that do not decompose into
// base + combining mark (ł) plus the ones that do, so folding works
// even when the transform chain is bypassed.
var polishFold = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"Ą", "a", "Ć", "c", "Ę", "e", "Ł", "l", "Ń", "n",
	"Ó", "o", "Ś", "s", "Ź", "z", "Ż", "z",
)

// foldTransformer strips combining marks after NFD decomposition, then
// recomposes. Handles accented Latin beyond the Polish set (é, ü, ...).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases and NFC-normalizes text. Every tokenizer and
// dictionary lookup goes through this first so composed and decomposed
// inputs score identically.
func Normalize(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// FoldDiacritics maps diacritic letters to their ASCII equivalents,
// so ASCII-typed Polish ("milosc") matches dictionary forms ("miłość").
// Input is expected to be lowercase.
func FoldDiacritics(s string) string {
	s = polishFold.Replace(s)
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return folded
}
