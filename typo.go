package chatsignals

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/atomic"

	"github.com/relata-io/chat-signals-go/lexicon"
)

// ──────────────────────────────────────────────
// Typo correction — keyboard-aware edit-distance-1 candidates, memoized
// ──────────────────────────────────────────────

// qwertyNeighbors maps each letter to the keys adjacent to it on a QWERTY
// layout (same row plus the vertically adjacent keys). Substitutions are
// restricted to these, which keeps the candidate set at genuine fat-finger
// slips instead of the full alphabet.
var qwertyNeighbors = map[rune]string{
	'q': "wa", 'w': "qeas", 'e': "wrds", 'r': "etdf", 't': "ryfg",
	'y': "tugh", 'u': "yihj", 'i': "uojk", 'o': "ipkl", 'p': "ol",
	'a': "qwsz", 's': "awedzx", 'd': "serfxc", 'f': "drtgcv",
	'g': "ftyhvb", 'h': "gyujbn", 'j': "huiknm", 'k': "jiolm",
	'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// typo polarity values stored in the memo cache.
const (
	typoNoMatch  int8 = 0
	typoPositive int8 = 1
	typoNegative int8 = -1
)

// CacheStats is a read-only snapshot of the typo memo cache counters.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// typoCorrector resolves tokens that miss the dictionaries by generating
// edit-distance-1 candidates (transpositions, deletions, QWERTY-adjacent
// substitutions) and accepting only an unambiguous polarity. Results are
// memoized in a bounded LRU; lru.Cache is internally locked, so the
// corrector is safe for concurrent readers.
type typoCorrector struct {
	cache  *lru.Cache[string, int8]
	hits   atomic.Int64
	misses atomic.Int64
}

func newTypoCorrector(size int) *typoCorrector {
	if size <= 0 {
		size = DefaultAnalysisConfig().TypoCacheSize
	}
	cache, err := lru.New[string, int8](size)
	if err != nil {
		// lru.New only errors on non-positive size, guarded above.
		panic(err)
	}
	return &typoCorrector{cache: cache}
}

// resolve returns the corrected polarity of token, or typoNoMatch.
// Tokens shorter than 5 runes never trigger correction.
func (t *typoCorrector) resolve(token string) int8 {
	if len([]rune(token)) < 5 {
		return typoNoMatch
	}
	if cached, ok := t.cache.Get(token); ok {
		t.hits.Inc()
		return cached
	}
	t.misses.Inc()
	result := arbitrate(candidates(token))
	t.cache.Add(token, result)
	return result
}

// stats returns a snapshot of the cache counters.
func (t *typoCorrector) stats() CacheStats {
	return CacheStats{
		Hits:   t.hits.Load(),
		Misses: t.misses.Load(),
		Size:   t.cache.Len(),
	}
}

// candidates generates the edit-distance-1 variants of token.
func candidates(token string) []string {
	runes := []rune(token)
	n := len(runes)
	out := make([]string, 0, n*4)

	// Adjacent transpositions ("kocahm" → "kocham").
	for i := 0; i < n-1; i++ {
		if runes[i] == runes[i+1] {
			continue
		}
		swapped := make([]rune, n)
		copy(swapped, runes)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		out = append(out, string(swapped))
	}

	// Single-character deletions ("kochham" → "kocham").
	for i := 0; i < n; i++ {
		deleted := make([]rune, 0, n-1)
		deleted = append(deleted, runes[:i]...)
		deleted = append(deleted, runes[i+1:]...)
		out = append(out, string(deleted))
	}

	// QWERTY-adjacent substitutions ("kichasz" → "kochasz").
	for i := 0; i < n; i++ {
		neighbors, ok := qwertyNeighbors[runes[i]]
		if !ok {
			continue
		}
		for _, nb := range neighbors {
			substituted := make([]rune, n)
			copy(substituted, runes)
			substituted[i] = nb
			out = append(out, string(substituted))
		}
	}

	return out
}

// arbitrate tests every candidate against the polarity dictionaries and
// returns a polarity only when all hits agree. Mixed hits are a no-match:
// guessing between polarities would be worse than skipping the token.
func arbitrate(cands []string) int8 {
	sawPositive := false
	sawNegative := false
	for _, c := range cands {
		if lexicon.Positive.Has(c) {
			sawPositive = true
		}
		if lexicon.Negative.Has(c) {
			sawNegative = true
		}
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
