package chatsignals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSentimentBounds(t *testing.T) {
	texts := []string{
		"", "ok", "kocham cie bardzo", "nienawidzę wszystkiego",
		"super ale smutno mi", "co słychać?", "dobrze i źle zarazem",
	}
	for _, text := range texts {
		score := ScoreSentiment(text)
		assert.GreaterOrEqual(t, score.Score, -1.0, "text %q", text)
		assert.LessOrEqual(t, score.Score, 1.0, "text %q", text)
		assert.Equal(t, score.Positive+score.Negative, score.Total, "text %q", text)
	}
}

func TestScoreSentimentZeroWhenNoMatches(t *testing.T) {
	score := ScoreSentiment("jutro spotkanie o piętnastej")
	assert.Equal(t, 0, score.Total)
	assert.Equal(t, 0.0, score.Score)
}

func TestNegationFlipsPolarity(t *testing.T) {
	plain := ScoreSentiment("kocham cie")
	negated := ScoreSentiment("nie kocham cie")
	require.Greater(t, plain.Positive, 0)
	require.Greater(t, negated.Negative, 0)
	assert.LessOrEqual(t, negated.Score, plain.Score)
}

func TestNegationLookaheadWindow(t *testing.T) {
	// Hit within 3 tokens flips; beyond the window it does not.
	within := ScoreSentiment("nie jest wcale dobrze")
	assert.Greater(t, within.Negative, 0)
	beyond := ScoreSentiment("nie wiem czy teraz jutro dobrze")
	assert.Greater(t, beyond.Positive, 0)
}

func TestEnglishNegationGatedByMarker(t *testing.T) {
	// Without an English marker, "not" is inert.
	gated := ScoreSentiment("you are not happy")
	assert.Greater(t, gated.Negative, 0)
	assert.Equal(t, 0, gated.Positive)
}

func TestEmphasisDeduplication(t *testing.T) {
	score := ScoreSentiment("suuuper")
	assert.Greater(t, score.Positive, 0)
	stretched := ScoreSentiment("kochaaaam cie")
	assert.Greater(t, stretched.Positive, 0)
}

func TestTypoCorrectionTransposition(t *testing.T) {
	score := ScoreSentiment("kocahm")
	assert.Greater(t, score.Positive, 0)
}

func TestTypoCorrectionMinLength(t *testing.T) {
	// Short tokens never trigger correction.
	score := ScoreSentiment("zyl")
	assert.Equal(t, 0, score.Total)
}

func TestInflectionFallback(t *testing.T) {
	// "świetnego" declines "świetny"; suffix strip recovers it.
	score := ScoreSentiment("świetnego")
	assert.Greater(t, score.Positive, 0)
	// ASCII-typed inflected form works through folding too.
	folded := ScoreSentiment("swietnego")
	assert.Greater(t, folded.Positive, 0)
}

func TestScoreNeverDividesByZero(t *testing.T) {
	assert.NotPanics(t, func() {
		for _, text := range []string{"", " ", "???", "🔥🔥🔥"} {
			score := ScoreSentiment(text)
			assert.Equal(t, 0.0, score.Score)
		}
	})
}

func TestScoreSentimentDeterministic(t *testing.T) {
	text := "kocham cie ale czasem mnie denerwujesz i jest mi smutno"
	first := ScoreSentiment(text)
	second := ScoreSentiment(text)
	assert.Equal(t, first, second)
}

func TestResolverChainShortCircuits(t *testing.T) {
	s := NewSentimentScorer()
	// Exact hit must not consult the typo stage.
	before := s.CacheStats()
	s.Score("kocham")
	after := s.CacheStats()
	assert.Equal(t, before.Misses, after.Misses)
}
