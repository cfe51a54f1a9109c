package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// onDay spreads count messages across calendar day d (days after testBase).
func onDay(d, count int) []Message {
	msgs := make([]Message, 0, count)
	for i := 0; i < count; i++ {
		sender := "Ala"
		if i%2 == 1 {
			sender = "Ola"
		}
		msgs = append(msgs, msg(sender, at(time.Duration(d)*day+time.Duration(i)*time.Minute), "hej"))
	}
	return msgs
}

func TestDetectBurstsSingleSpikeDay(t *testing.T) {
	// Nine quiet days, then a hundred-message day.
	var msgs []Message
	for d := 0; d < 9; d++ {
		msgs = append(msgs, onDay(d, 10)...)
	}
	msgs = append(msgs, onDay(9, 100)...)

	bursts := DetectBursts(msgs)
	require.Len(t, bursts, 1)
	b := bursts[0]
	assert.Equal(t, b.StartDay, b.EndDay)
	assert.Equal(t, "2024-03-13", b.PeakDay)
	assert.Equal(t, 100, b.PeakCount)
	assert.Equal(t, 100, b.TotalMessages)
	assert.Equal(t, 100.0, b.AvgDaily)
}

func TestDetectBurstsUniformTrafficIsQuiet(t *testing.T) {
	var msgs []Message
	for d := 0; d < 14; d++ {
		msgs = append(msgs, onDay(d, 20)...)
	}
	assert.Empty(t, DetectBursts(msgs))
}

func TestDetectBurstsNeedsBaselineDays(t *testing.T) {
	// Three active days total: not enough history for any day to qualify.
	var msgs []Message
	msgs = append(msgs, onDay(0, 10)...)
	msgs = append(msgs, onDay(1, 10)...)
	msgs = append(msgs, onDay(2, 100)...)
	assert.Empty(t, DetectBursts(msgs))
}

func TestDetectBurstsMinimumAbsoluteCount(t *testing.T) {
	// 2 -> 9 messages triples the baseline but stays under the 10-message
	// floor.
	var msgs []Message
	for d := 0; d < 7; d++ {
		msgs = append(msgs, onDay(d, 2)...)
	}
	msgs = append(msgs, onDay(7, 9)...)
	assert.Empty(t, DetectBursts(msgs))
}

func TestDetectBurstsMergesConsecutiveDays(t *testing.T) {
	var msgs []Message
	for d := 0; d < 7; d++ {
		msgs = append(msgs, onDay(d, 10)...)
	}
	msgs = append(msgs, onDay(7, 100)...)
	msgs = append(msgs, onDay(8, 100)...)

	bursts := DetectBursts(msgs)
	require.Len(t, bursts, 1)
	b := bursts[0]
	assert.Equal(t, "2024-03-11", b.StartDay)
	assert.Equal(t, "2024-03-12", b.EndDay)
	assert.Equal(t, 200, b.TotalMessages)
	assert.Equal(t, 100.0, b.AvgDaily)
}

func TestDetectBurstsGapBreaksMerge(t *testing.T) {
	// Two spike days separated by a quiet week stay separate bursts.
	var msgs []Message
	for d := 0; d < 7; d++ {
		msgs = append(msgs, onDay(d, 10)...)
	}
	msgs = append(msgs, onDay(7, 100)...)
	for d := 8; d < 15; d++ {
		msgs = append(msgs, onDay(d, 10)...)
	}
	msgs = append(msgs, onDay(15, 100)...)

	bursts := DetectBursts(msgs)
	assert.Len(t, bursts, 2)
}
