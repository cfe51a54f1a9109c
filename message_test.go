package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortedByTimeStable(t *testing.T) {
	msgs := []Message{
		{Sender: "Ola", TimestampMs: at(time.Minute), Content: "b"},
		{Sender: "Ala", TimestampMs: at(0), Content: "a"},
		{Sender: "Ala", TimestampMs: at(time.Minute), Content: "c"},
	}
	sorted := sortedByTime(msgs)
	require.Len(t, sorted, 3)
	assert.Equal(t, "a", sorted[0].Content)
	// Equal timestamps keep input order.
	assert.Equal(t, "b", sorted[1].Content)
	assert.Equal(t, "c", sorted[2].Content)
	// Input untouched.
	assert.Equal(t, "b", msgs[0].Content)
}

func TestMonthAndDayKeysUTC(t *testing.T) {
	ts := time.Date(2024, 12, 31, 23, 30, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "2024-12", monthKey(ts))
	assert.Equal(t, "2024-12-31", dayKey(ts))

	parsed, err := parseDay("2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 31, parsed.Day())
}

func TestComputeMonthlyVolume(t *testing.T) {
	var msgs []Message
	msgs = append(msgs, monthOf(0, 3, "hej")...)
	msgs = append(msgs, monthOf(30, 5, "hej")...)
	volume := ComputeMonthlyVolume(msgs)
	require.Len(t, volume, 2)
	assert.Equal(t, MonthlyVolume{Month: "2024-03", Total: 3}, volume[0])
	assert.Equal(t, MonthlyVolume{Month: "2024-04", Total: 5}, volume[1])
}

func TestConsecutiveDays(t *testing.T) {
	assert.True(t, consecutiveDays("2024-03-31", "2024-04-01"))
	assert.True(t, consecutiveDays("2024-02-28", "2024-02-29")) // leap year
	assert.False(t, consecutiveDays("2024-03-01", "2024-03-03"))
	assert.False(t, consecutiveDays("2024-03-02", "2024-03-01"))
	assert.False(t, consecutiveDays("garbage", "2024-03-01"))
}

func TestParticipantSet(t *testing.T) {
	set := participantSet([]string{"Ala", "Ola"})
	assert.True(t, set["Ala"])
	assert.False(t, set["Zenek"])
	assert.Empty(t, participantSet(nil))
}
