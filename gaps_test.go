package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestDetectCommunicationGapsThreshold(t *testing.T) {
	// Exactly 7 days qualifies; a hair under does not.
	hit := []Message{msg("Ala", at(0), "hej"), msg("Ola", at(7*day), "hej")}
	gaps := DetectCommunicationGaps(hit, nil)
	require.Len(t, gaps, 1)
	assert.Equal(t, GapCoolingOff, gaps[0].Classification)
	assert.InDelta(t, 7.0, gaps[0].DurationDays, 1e-9)
	assert.Equal(t, "Ala", gaps[0].LastSender)
	assert.Equal(t, "Ola", gaps[0].NextSender)

	miss := []Message{msg("Ala", at(0), "hej"), msg("Ola", at(7*day-time.Minute), "hej")}
	assert.Empty(t, DetectCommunicationGaps(miss, nil))
}

func TestClassifyGapBands(t *testing.T) {
	assert.Equal(t, GapCoolingOff, classifyGap(7))
	assert.Equal(t, GapCoolingOff, classifyGap(13.9))
	assert.Equal(t, GapPotentialBreakup, classifyGap(14))
	assert.Equal(t, GapPotentialBreakup, classifyGap(29.9))
	assert.Equal(t, GapExtendedSeparation, classifyGap(30))
	assert.Equal(t, GapExtendedSeparation, classifyGap(120))
}

func TestDetectCommunicationGapsSortedAndCapped(t *testing.T) {
	// 17 gaps of increasing length; only the 15 longest survive, longest
	// first.
	var msgs []Message
	offset := time.Duration(0)
	msgs = append(msgs, msg("Ala", at(offset), "hej"))
	for i := 0; i < 17; i++ {
		offset += time.Duration(7+i) * day
		msgs = append(msgs, msg("Ola", at(offset), "hej"))
	}
	gaps := DetectCommunicationGaps(msgs, nil)
	require.Len(t, gaps, 15)
	for i := 1; i < len(gaps); i++ {
		assert.GreaterOrEqual(t, gaps[i-1].DurationMs, gaps[i].DurationMs)
	}
	assert.InDelta(t, 23.0, gaps[0].DurationDays, 1e-9)
	// The two shortest (7 and 8 days) fell off the end.
	assert.InDelta(t, 9.0, gaps[14].DurationDays, 1e-9)
}

func TestDetectCommunicationGapsVolumeAnnotation(t *testing.T) {
	msgs := []Message{
		msg("Ala", at(21*day), "hej"), // 2024-03-25
		msg("Ola", at(37*day), "hej"), // 2024-04-10
	}
	volume := []MonthlyVolume{
		{Month: "2024-03", Total: 50},
		{Month: "2024-04", Total: 5},
	}
	gaps := DetectCommunicationGaps(msgs, volume)
	require.Len(t, gaps, 1)
	assert.Equal(t, 50, gaps[0].MessagesBefore)
	assert.Equal(t, 5, gaps[0].MessagesAfter)
	assert.Equal(t, GapPotentialBreakup, gaps[0].Classification)
}

func TestDetectCommunicationGapsTooFewMessages(t *testing.T) {
	assert.Empty(t, DetectCommunicationGaps(nil, nil))
	assert.Empty(t, DetectCommunicationGaps([]Message{msg("Ala", at(0), "hej")}, nil))
}
