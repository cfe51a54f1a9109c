package chatsignals

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participants() []string { return []string{"Ala", "Ola"} }

func TestResponseTimeAnalysisGuardMessages(t *testing.T) {
	msgs := alternating("Ala", "Ola", 29, 5*time.Minute, "hej")
	assert.Nil(t, ComputeResponseTimeAnalysis(msgs, participants()))
}

func TestResponseTimeAnalysisGuardSingleSender(t *testing.T) {
	var msgs []Message
	for i := 0; i < 40; i++ {
		msgs = append(msgs, msg("Ala", at(time.Duration(i)*5*time.Minute), "hej"))
	}
	// Plenty of messages, but no sender change means no measured responses.
	assert.Nil(t, ComputeResponseTimeAnalysis(msgs, participants()))
}

func TestResponseTimeAnalysisGuardBaselines(t *testing.T) {
	msgs := alternating("Ala", "Ola", 40, 5*time.Minute, "hej")
	// Ola is not a canonical participant; only one baseline remains.
	assert.Nil(t, ComputeResponseTimeAnalysis(msgs, []string{"Ala"}))
}

func TestResponseTimeAnalysisHappyPath(t *testing.T) {
	msgs := alternating("Ala", "Ola", 40, 5*time.Minute, "no dobra, opowiadaj")
	analysis := ComputeResponseTimeAnalysis(msgs, participants())
	require.NotNil(t, analysis)

	require.Len(t, analysis.PerPerson, 2)
	for person, baseline := range analysis.PerPerson {
		assert.Equal(t, person, baseline.Person)
		assert.GreaterOrEqual(t, baseline.SampleSize, 5)
		assert.InDelta(t, float64(5*time.Minute/time.Millisecond), baseline.MedianMs, 1)
		// Distribution fractions sum to 1.
		sum := 0.0
		for _, frac := range baseline.CategoryDistribution {
			sum += frac
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}

	assert.Equal(t, 1.0, analysis.RTI)
	assert.GreaterOrEqual(t, analysis.ResponseAsymmetry, 1.0)
	for _, gi := range analysis.GhostingIndex {
		assert.GreaterOrEqual(t, gi, 0.0)
		assert.LessOrEqual(t, gi, 1.0)
	}
	for _, ir := range analysis.InitiativeRatio {
		assert.GreaterOrEqual(t, ir, 0.0)
		assert.LessOrEqual(t, ir, 1.0)
	}
	// 5-minute replies land in the "normal" bucket.
	for _, baseline := range analysis.PerPerson {
		assert.InDelta(t, 1.0, baseline.CategoryDistribution[CategoryNormal], 1e-9)
	}
}

func TestResponseTimeAnalysisDeterministic(t *testing.T) {
	msgs := alternating("Ala", "Ola", 60, 4*time.Minute, "hej co tam u ciebie")
	first := ComputeResponseTimeAnalysis(msgs, participants())
	second := ComputeResponseTimeAnalysis(msgs, participants())
	assert.Equal(t, first, second)
}

func TestCategorize(t *testing.T) {
	cases := []struct {
		rt   time.Duration
		want ResponseCategory
	}{
		{10 * time.Second, CategoryInstant},
		{time.Minute, CategoryQuick},
		{10 * time.Minute, CategoryNormal},
		{45 * time.Minute, CategoryDelayed},
		{3 * time.Hour, CategorySlow},
		{8 * time.Hour, CategoryGhosting},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, categorize(tc.rt.Milliseconds(), false), "rt=%v", tc.rt)
	}
	assert.Equal(t, CategoryOvernight, categorize((9 * time.Hour).Milliseconds(), true))
}

func TestIsOvernight(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := day.Add(22 * time.Hour).UnixMilli()          // 22:00
	start := day.Add(31 * time.Hour).UnixMilli()        // next day 07:00
	assert.True(t, isOvernight(end, start, start-end))  // 9h sleep gap

	// Afternoon silence of the same length is not overnight.
	end = day.Add(14 * time.Hour).UnixMilli()
	start = day.Add(23 * time.Hour).UnixMilli()
	assert.False(t, isOvernight(end, start, start-end))

	// Right hours but a 20-hour gap exceeds the sleep window.
	end = day.Add(22 * time.Hour).UnixMilli()
	start = day.Add(42 * time.Hour).UnixMilli()
	assert.False(t, isOvernight(end, start, start-end))
}

func TestOvernightResponsesKeptAndFlagged(t *testing.T) {
	// Evening exchange, overnight reply, then enough daytime traffic to
	// clear every guard.
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	var msgs []Message
	msgs = append(msgs, Message{Sender: "Ala", Content: "dobranoc", TimestampMs: day.Add(22 * time.Hour).UnixMilli(), Type: MessageText})
	msgs = append(msgs, Message{Sender: "Ola", Content: "dzień dobry", TimestampMs: day.Add(31 * time.Hour).UnixMilli(), Type: MessageText})
	for i := 0; i < 40; i++ {
		sender := "Ala"
		if i%2 == 1 {
			sender = "Ola"
		}
		msgs = append(msgs, Message{
			Sender:      sender,
			Content:     "rozmawiamy dalej",
			TimestampMs: day.Add(32*time.Hour + time.Duration(i)*5*time.Minute).UnixMilli(),
			Type:        MessageText,
		})
	}
	analysis := ComputeResponseTimeAnalysis(msgs, participants())
	require.NotNil(t, analysis)
	overnight := analysis.PerPerson["Ola"].CategoryDistribution[CategoryOvernight]
	assert.Greater(t, overnight, 0.0)
}

func TestEffortWeightedDegenerateLength(t *testing.T) {
	rt := int64(60000)
	assert.Equal(t, float64(rt), effortWeighted(rt, 0))
	assert.Less(t, effortWeighted(rt, 100), effortWeighted(rt, 5))
}

func TestResponseAsymmetryNeutralFallback(t *testing.T) {
	baselines := map[string]*PersonRTBaseline{
		"Ala": {MedianMs: 0},
		"Ola": {MedianMs: 0},
	}
	assert.Equal(t, 1.0, responseAsymmetry(baselines))
}

func TestClassifyRATrend(t *testing.T) {
	mk := func(ras ...float64) []MonthlyRAPoint {
		points := make([]MonthlyRAPoint, len(ras))
		for i, ra := range ras {
			points[i] = MonthlyRAPoint{RA: ra}
		}
		return points
	}
	assert.Equal(t, "diverging", classifyRATrend(mk(1.0, 1.1, 1.6, 1.8)))
	assert.Equal(t, "converging", classifyRATrend(mk(2.0, 1.9, 1.2, 1.1)))
	assert.Equal(t, "stable", classifyRATrend(mk(1.2, 1.3, 1.25, 1.2)))
	assert.Equal(t, "stable", classifyRATrend(nil))
}
