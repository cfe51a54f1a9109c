package textutil

import (
	"unicode"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Tokenizers — strict (stopword-ready) and permissive (sentiment)
// ──────────────────────────────────────────────

// emojiRanges covers the emoji blocks we strip before tokenizing:
// pictographs, symbols, dingbats, regional indicators, and the joiner
// and variation-selector code points that glue emoji sequences together.
var emojiRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x200D, Hi: 0x200D, Stride: 1}, // zero-width joiner
		{Lo: 0x2600, Hi: 0x27BF, Stride: 1}, // misc symbols + dingbats
		{Lo: 0x2B00, Hi: 0x2BFF, Stride: 1}, // misc symbols and arrows (⭐ etc.)
		{Lo: 0xFE0E, Hi: 0xFE0F, Stride: 1}, // variation selectors
	},
	R32: []unicode.Range32{
		{Lo: 0x1F000, Hi: 0x1F0FF, Stride: 1}, // mahjong, dominoes, cards
		{Lo: 0x1F1E6, Hi: 0x1F1FF, Stride: 1}, // regional indicators
		{Lo: 0x1F300, Hi: 0x1FAFF, Stride: 1}, // pictographs through symbols extended
	},
}

// StripEmoji removes emoji code points. ZWJ sequences fall apart into
// strippable runes, so removal needs no grapheme segmentation.
func StripEmoji(s string) string {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		if unicode.Is(emojiRanges, r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

func isTokenRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func split(s string) []string {
	var tokens []string
	start := -1
	for i, r := range s {
		if isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, s[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

// Words is the permissive tokenizer: lowercase, NFC, emoji stripped,
// split on anything that is not a letter or digit. Short function words
// survive because negation particles ("nie", "no") are load-bearing for
// sentiment scoring.
func Words(s string) []string {
	return split(StripEmoji(Normalize(s)))
}

// Tokenize is the strict tokenizer: Words minus tokens shorter than
// two runes. Stopword filtering is applied by callers that own a
// stopword set, keeping this package lexicon-free.
func Tokenize(s string) []string {
	words := Words(s)
	tokens := words[:0:0]
	for _, w := range words {
		if utf8.RuneCountInString(w) < 2 {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}
