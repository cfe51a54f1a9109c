package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyReply(t *testing.T) {
	cases := []struct {
		content    string
		supportive bool
		shifting   bool
	}{
		{"rozumiem cię, to musiało boleć", true, false},
		{"trzymaj się, dasz radę", true, false},
		{"I understand, that sounds hard", true, false},
		{"ja mam gorzej", false, true},
		{"a ja bym zrobiła inaczej", false, true}, // particle, then the pronoun
		{"rozumiem, ja też tak miałem", true, false}, // support wins the tie
		{"ok", false, false},
		{"", false, false},
	}
	for _, tc := range cases {
		supportive, shifting := classifyReply(tc.content)
		assert.Equal(t, tc.supportive, supportive, "content %q", tc.content)
		assert.Equal(t, tc.shifting, shifting, "content %q", tc.content)
	}
}

func TestAnalyzeSupportShiftRatio(t *testing.T) {
	var msgs []Message
	for i := 0; i < 24; i++ {
		if i%2 == 0 {
			msgs = append(msgs, msg("Ala", at(time.Duration(i)*5*time.Minute), "ja mam gorzej"))
		} else {
			msgs = append(msgs, msg("Ola", at(time.Duration(i)*5*time.Minute), "rozumiem cię"))
		}
	}
	analysis := AnalyzeSupportShift(msgs, participants())
	require.NotNil(t, analysis)
	// 12 supportive replies from Ola, 11 shifting from Ala (the opening
	// message is not a reply).
	assert.Equal(t, 12, analysis.SupportResponses)
	assert.Equal(t, 11, analysis.ShiftResponses)
	assert.InDelta(t, 12.0/23.0, analysis.SupportRatio, 1e-9)
	assert.Equal(t, 1.0, analysis.PerPerson["Ola"])
	assert.Equal(t, 0.0, analysis.PerPerson["Ala"])
}

func TestAnalyzeSupportShiftIgnoresBurstContinuations(t *testing.T) {
	// Back-to-back messages from the same sender are not replies.
	var msgs []Message
	msgs = append(msgs, msg("Ala", at(0), "hej"))
	for i := 1; i <= 20; i++ {
		msgs = append(msgs, msg("Ala", at(time.Duration(i)*time.Minute), "ja znowu o sobie"))
	}
	assert.Nil(t, AnalyzeSupportShift(msgs, participants()))
}

func TestAnalyzeSupportShiftGuardUnclassified(t *testing.T) {
	// Plenty of replies, none carrying either marker.
	msgs := alternating("Ala", "Ola", 40, time.Minute, "hej co tam")
	assert.Nil(t, AnalyzeSupportShift(msgs, participants()))
}

func TestAnalyzeSupportShiftGuardMinimum(t *testing.T) {
	var msgs []Message
	for i := 0; i < 9; i++ {
		sender, content := "Ala", "ja mam gorzej"
		if i%2 == 1 {
			sender, content = "Ola", "rozumiem cię"
		}
		msgs = append(msgs, msg(sender, at(time.Duration(i)*time.Minute), content))
	}
	// 8 classified replies: under the floor.
	assert.Nil(t, AnalyzeSupportShift(msgs, participants()))
}
