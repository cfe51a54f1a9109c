// Package lexicon holds the immutable word sets the signal engine scores
// against: sentiment polarity lists, stopwords, emotion categories, negation
// particles, pronoun groups and intimacy markers. Every set is built once at
// package init with both the diacritic and the ASCII-folded form of each
// word, so Polish typed without diacritics still matches. Sets are never
// mutated after init and are safe to share across goroutines.
package lexicon

import "github.com/relata-io/chat-signals-go/textutil"

// Set is a read-only word set.
type Set map[string]struct{}

// Has reports whether the set contains word (as given; callers fold
// themselves when they want the ASCII view).
func (s Set) Has(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of entries including folded variants.
func (s Set) Len() int { return len(s) }

// newSet builds a set containing every word plus its diacritic-folded form.
func newSet(words ...string) Set {
	s := make(Set, len(words)*2)
	for _, w := range words {
		s[w] = struct{}{}
		if folded := textutil.FoldDiacritics(w); folded != w {
			s[folded] = struct{}{}
		}
	}
	return s
}

// merge combines sets into a new one.
func merge(sets ...Set) Set {
	out := make(Set)
	for _, s := range sets {
		for w := range s {
			out[w] = struct{}{}
		}
	}
	return out
}
