package chatsignals

import (
	"strings"
	"unicode/utf8"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Polish inflection fallback — suffix strip + base-ending re-attach
// ──────────────────────────────────────────────

// plSuffixes are the inflectional endings stripped before re-attachment,
// longest first so "świetnego" loses "ego" rather than "o". Covers the
// common adjective, participle and noun declensions plus past-tense
// person endings.
var plSuffixes = []string{
	"iłem", "iłam", "yłem", "yłam", "ałem", "ałam", "iśmy", "yśmy",
	"ilem", "ilam", "ylem", "ylam", "alem", "alam", "ismy", "ysmy",
	"iego", "iemu",
	"ego", "emu", "ymi", "imi", "ach", "ami", "owi", "iej",
	"em", "om", "ym", "im", "ie", "ej", "ą", "ę", "a", "e", "i", "o", "u", "y",
}

// plBaseEndings are the candidate endings re-attached to the stem; the
// empty ending tests the bare stem.
var plBaseEndings = []string{"", "y", "a", "e", "i", "o", "ć", "c", "ny", "na", "ne"}

// resolveInflection tries to reduce an inflected Polish token to a
// dictionary form. Tokens shorter than 3 runes are skipped. Both the
// candidate and its diacritic-stripped form are tested; an ambiguous
// candidate set (hits on both polarities) is a no-match.
func resolveInflection(token string) int8 {
	if utf8.RuneCountInString(token) < 3 {
		return typoNoMatch
	}
	sawPositive := false
	sawNegative := false
	for _, suffix := range plSuffixes {
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		stem := token[:len(token)-len(suffix)]
		if utf8.RuneCountInString(stem) < 3 {
			continue
		}
		for _, ending := range plBaseEndings {
			cand := stem + ending
			folded := textutil.FoldDiacritics(cand)
			if lexicon.Positive.Has(cand) || lexicon.Positive.Has(folded) {
				sawPositive = true
			}
			if lexicon.Negative.Has(cand) || lexicon.Negative.Has(folded) {
				sawNegative = true
			}
		}
		// Only the longest matching suffix is considered.
		break
	}
	switch {
	case sawPositive && sawNegative:
		return typoNoMatch
	case sawPositive:
		return typoPositive
	case sawNegative:
		return typoNegative
	default:
		return typoNoMatch
	}
}
