package chatsignals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGranularitySingleCategoryScoresLow(t *testing.T) {
	// Five joy words and nothing else: breadth 1/8, zero entropy.
	msgs := repeatMsgs("Ala", "radość", 5)
	result := AnalyzeEmotionalGranularity(msgs)
	require.NotNil(t, result)
	require.Len(t, result.Monthly, 1)
	p := result.Monthly[0]
	assert.Equal(t, 1, p.DistinctCategories)
	assert.Equal(t, 5, p.EmotionWordCount)
	assert.InDelta(t, 7.5, p.Score, 1e-9)
	assert.InDelta(t, 7.5, result.OverallScore, 1e-9)
}

func TestGranularityFullBreadthScoresHigh(t *testing.T) {
	// One hit in every category, perfectly even.
	msgs := []Message{
		msg("Ala", at(0), "radość smutek złość strach kocham szok fuj wstyd"),
	}
	result := AnalyzeEmotionalGranularity(msgs)
	require.NotNil(t, result)
	require.Len(t, result.Monthly, 1)
	p := result.Monthly[0]
	assert.Equal(t, 8, p.DistinctCategories)
	assert.Equal(t, 8, p.EmotionWordCount)
	assert.InDelta(t, 100.0, p.Score, 1e-9)
}

func TestGranularityFoldedFormsCount(t *testing.T) {
	// ASCII-typed Polish still registers.
	msgs := repeatMsgs("Ala", "zlosc strach radosc", 3)
	result := AnalyzeEmotionalGranularity(msgs)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Monthly[0].DistinctCategories)
}

func TestGranularityThinMonthSkipped(t *testing.T) {
	assert.Nil(t, AnalyzeEmotionalGranularity(repeatMsgs("Ala", "radość", 2)))
}

func TestGranularityNoEmotionWords(t *testing.T) {
	assert.Nil(t, AnalyzeEmotionalGranularity(repeatMsgs("Ala", "jutro spotkanie o trzynastej", 20)))
}

func TestNormalizedEntropy(t *testing.T) {
	assert.Equal(t, 0.0, normalizedEntropy(map[string]int{"joy": 5}, 5))
	assert.InDelta(t, 1.0, normalizedEntropy(map[string]int{"joy": 3, "fear": 3}, 6), 1e-9)
	uneven := normalizedEntropy(map[string]int{"joy": 9, "fear": 1}, 10)
	assert.Greater(t, uneven, 0.0)
	assert.Less(t, uneven, 1.0)
	assert.Equal(t, 0.0, normalizedEntropy(nil, 0))
}
