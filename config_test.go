package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizedFillsDefaults(t *testing.T) {
	assert.Equal(t, DefaultAnalysisConfig(), AnalysisConfig{}.normalized())
}

func TestNormalizedKeepsOverrides(t *testing.T) {
	cfg := AnalysisConfig{GapMinDuration: 3 * 24 * time.Hour, TypoCacheSize: 64}.normalized()
	assert.Equal(t, 3*24*time.Hour, cfg.GapMinDuration)
	assert.Equal(t, 64, cfg.TypoCacheSize)
	// Untouched knobs still get defaults.
	assert.Equal(t, DefaultAnalysisConfig().MinMessages, cfg.MinMessages)
}

func TestGapOverrideLowersThreshold(t *testing.T) {
	msgs := []Message{
		msg("Ala", at(0), "hej"),
		msg("Ola", at(4*day), "hej"),
	}
	assert.Empty(t, detectCommunicationGaps(msgs, nil, DefaultAnalysisConfig()))
	cfg := AnalysisConfig{GapMinDuration: 3 * 24 * time.Hour}
	assert.Len(t, detectCommunicationGaps(msgs, nil, cfg), 1)
}
