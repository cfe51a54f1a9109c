package chatsignals

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Sentiment Scorer — dictionary polarity with negation, dedup, typo
// correction and Polish inflection fallback
// ──────────────────────────────────────────────

// SentimentScore is the polarity summary for one text.
// Score = (Positive-Negative)/Total, 0 when Total is 0, always in [-1,1].
type SentimentScore struct {
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Total    int     `json:"total"`
	Score    float64 `json:"score"`
}

// englishMarker detects messages that are (at least partly) English, which
// switches the English negation particles on. Polish particles are always
// active.
var englishMarker = regexp.MustCompile(`\b(the|you|your|are|is|was|were|have|has|this|that|what|with|and|but|just|really)\b`)

// negationLookahead is how many tokens after a particle may carry the
// sentiment hit to flip.
const negationLookahead = 3

// SentimentScorer scores texts against the polarity dictionaries. It owns
// the bounded typo-correction memo cache; the package-level ScoreSentiment
// shares one process-lifetime scorer.
type SentimentScorer struct {
	typo *typoCorrector
}

// NewSentimentScorer creates a scorer with its own memo cache. Pass a
// config to size the cache; zero values use defaults.
func NewSentimentScorer(config ...AnalysisConfig) *SentimentScorer {
	cfg := DefaultAnalysisConfig()
	if len(config) > 0 {
		cfg = config[0].normalized()
	}
	return &SentimentScorer{typo: newTypoCorrector(cfg.TypoCacheSize)}
}

var defaultScorer = NewSentimentScorer()

// ScoreSentiment scores text with the shared process-lifetime scorer.
func ScoreSentiment(text string) SentimentScore {
	return defaultScorer.Score(text)
}

// SentimentCacheStats exposes the shared scorer's memo-cache counters.
func SentimentCacheStats() CacheStats {
	return defaultScorer.CacheStats()
}

// Score runs the full resolution chain over the text's tokens.
func (s *SentimentScorer) Score(text string) SentimentScore {
	tokens := textutil.Words(text)
	if len(tokens) == 0 {
		return SentimentScore{}
	}

	particles := lexicon.NegationPL
	if englishMarker.MatchString(strings.ToLower(text)) {
		particles = lexicon.NegationAll
	}

	positive, negative := 0, 0
	consumed := make(map[int]bool, len(tokens))

	for i, tok := range tokens {
		if consumed[i] {
			continue
		}
		if particles.Has(tok) {
			// Look ahead for a sentiment hit to flip. The particle and
			// the flipped token together count once.
			for j := i + 1; j <= i+negationLookahead && j < len(tokens); j++ {
				if consumed[j] || particles.Has(tokens[j]) {
					continue
				}
				switch s.resolve(tokens[j]) {
				case typoPositive:
					negative++
					consumed[j] = true
				case typoNegative:
					positive++
					consumed[j] = true
				default:
					continue
				}
				break
			}
			continue
		}
		switch s.resolve(tok) {
		case typoPositive:
			positive++
		case typoNegative:
			negative++
		}
	}

	total := positive + negative
	score := 0.0
	if total > 0 {
		score = float64(positive-negative) / float64(total)
	}
	return SentimentScore{Positive: positive, Negative: negative, Total: total, Score: score}
}

// CacheStats returns this scorer's typo memo counters.
func (s *SentimentScorer) CacheStats() CacheStats {
	return s.typo.stats()
}

// resolve runs the ordered resolver chain over one token, short-circuiting
// at the first hit: exact → letter-dedup → typo → inflection.
func (s *SentimentScorer) resolve(token string) int8 {
	if p := resolveExact(token); p != typoNoMatch {
		return p
	}
	if p := resolveDedup(token); p != typoNoMatch {
		return p
	}
	if p := s.typo.resolve(token); p != typoNoMatch {
		return p
	}
	return resolveInflection(token)
}

// resolveExact is the first resolver: a direct dictionary hit. The
// dictionaries already carry folded forms, so no folding happens here.
func resolveExact(token string) int8 {
	pos := lexicon.Positive.Has(token)
	neg := lexicon.Negative.Has(token)
	switch {
	case pos && neg:
		return typoNoMatch
	case pos:
		return typoPositive
	case neg:
		return typoNegative
	default:
		return typoNoMatch
	}
}

// resolveDedup handles chat emphasis: "suuuper" collapses to "suuper"
// (runs of 3+ cut to 2), then to "super" (runs cut to 1), testing the
// dictionaries after each collapse.
func resolveDedup(token string) int8 {
	if utf8.RuneCountInString(token) < 3 {
		return typoNoMatch
	}
	two := collapseRuns(token, 2)
	if two != token {
		if p := resolveExact(two); p != typoNoMatch {
			return p
		}
	}
	one := collapseRuns(token, 1)
	if one != token && one != two {
		if p := resolveExact(one); p != typoNoMatch {
			return p
		}
	}
	return typoNoMatch
}

// collapseRuns shortens every run of repeated runes to at most max.
func collapseRuns(token string, max int) string {
	var b strings.Builder
	b.Grow(len(token))
	var prev rune = -1
	run := 0
	for _, r := range token {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run <= max {
			b.WriteRune(r)
		}
	}
	return b.String()
}
