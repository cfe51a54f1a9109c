package chatsignals

import "sort"

// ──────────────────────────────────────────────
// Sentiment trajectory — monthly polarity trend
// ──────────────────────────────────────────────

// SentimentTrendPoint is one month's aggregated polarity.
type SentimentTrendPoint struct {
	Month        string  `json:"month"`
	Score        float64 `json:"score"` // [-1,1], mean of message scores
	Positive     int     `json:"positive"`
	Negative     int     `json:"negative"`
	MessageCount int     `json:"message_count"`
}

// SentimentTrend is the monthly sentiment trajectory.
type SentimentTrend struct {
	Monthly   []SentimentTrendPoint `json:"monthly"`
	Slope     float64               `json:"slope"`
	Direction string                `json:"direction"` // improving|declining|stable
}

const (
	trendMinMonths        = 2
	trendMinMonthMessages = 10
	trendSlopeThreshold   = 0.05
)

// AnalyzeSentimentTrend scores every message and aggregates by month.
// Months with fewer than 10 messages are skipped as noise; fewer than 2
// qualifying months returns nil.
func AnalyzeSentimentTrend(messages []Message) *SentimentTrend {
	return defaultScorer.AnalyzeTrend(messages)
}

// AnalyzeTrend is the scorer-bound variant of AnalyzeSentimentTrend.
func (s *SentimentScorer) AnalyzeTrend(messages []Message) *SentimentTrend {
	type bucket struct {
		scoreSum float64
		positive int
		negative int
		count    int
	}
	buckets := make(map[string]*bucket)
	for _, m := range sortedByTime(messages) {
		if m.Type != MessageText && m.Type != "" {
			continue
		}
		sc := s.Score(m.Content)
		mk := monthKey(m.TimestampMs)
		b := buckets[mk]
		if b == nil {
			b = &bucket{}
			buckets[mk] = b
		}
		b.scoreSum += sc.Score
		b.positive += sc.Positive
		b.negative += sc.Negative
		b.count++
	}

	months := make([]string, 0, len(buckets))
	for m, b := range buckets {
		if b.count >= trendMinMonthMessages {
			months = append(months, m)
		}
	}
	if len(months) < trendMinMonths {
		return nil
	}
	sort.Strings(months)

	trend := &SentimentTrend{}
	scores := make([]float64, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		point := SentimentTrendPoint{
			Month:        m,
			Score:        b.scoreSum / float64(b.count),
			Positive:     b.positive,
			Negative:     b.negative,
			MessageCount: b.count,
		}
		trend.Monthly = append(trend.Monthly, point)
		scores = append(scores, point.Score)
	}
	trend.Slope = linearSlope(scores)
	switch {
	case trend.Slope > trendSlopeThreshold:
		trend.Direction = "improving"
	case trend.Slope < -trendSlopeThreshold:
		trend.Direction = "declining"
	default:
		trend.Direction = "stable"
	}
	return trend
}
