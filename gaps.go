package chatsignals

import "sort"

// ──────────────────────────────────────────────
// Gap Detector — week-plus communication silences
// ──────────────────────────────────────────────

// GapClassification buckets a silence by duration (inclusive lower bounds).
type GapClassification string

const (
	GapCoolingOff         GapClassification = "cooling_off"         // 7-14 days
	GapPotentialBreakup   GapClassification = "potential_breakup"   // 14-30 days
	GapExtendedSeparation GapClassification = "extended_separation" // 30+ days
)

// CommunicationGap is one detected silence, annotated with message volume
// from the months on either side.
type CommunicationGap struct {
	StartMs        int64             `json:"start_ms"`
	EndMs          int64             `json:"end_ms"`
	DurationMs     int64             `json:"duration_ms"`
	DurationDays   float64           `json:"duration_days"`
	LastSender     string            `json:"last_sender"`
	NextSender     string            `json:"next_sender"`
	Classification GapClassification `json:"classification"`
	MessagesBefore int               `json:"messages_before"`
	MessagesAfter  int               `json:"messages_after"`
}

// DetectCommunicationGaps scans consecutive timestamp deltas for gaps of
// 7 days or more. Returns an empty slice for fewer than 2 messages.
// Results are sorted by duration descending and capped at 15 entries.
func DetectCommunicationGaps(messages []Message, monthlyVolume []MonthlyVolume) []CommunicationGap {
	return detectCommunicationGaps(messages, monthlyVolume, DefaultAnalysisConfig())
}

func detectCommunicationGaps(messages []Message, monthlyVolume []MonthlyVolume, cfg AnalysisConfig) []CommunicationGap {
	cfg = cfg.normalized()
	gaps := []CommunicationGap{}
	if len(messages) < 2 {
		return gaps
	}
	sorted := sortedByTime(messages)
	minGapMs := cfg.GapMinDuration.Milliseconds()

	volume := make(map[string]int, len(monthlyVolume))
	for _, v := range monthlyVolume {
		volume[v.Month] = v.Total
	}

	const dayMs = 24 * 60 * 60 * 1000
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].TimestampMs - sorted[i-1].TimestampMs
		if gap < minGapMs {
			continue
		}
		days := float64(gap) / float64(dayMs)
		gaps = append(gaps, CommunicationGap{
			StartMs:        sorted[i-1].TimestampMs,
			EndMs:          sorted[i].TimestampMs,
			DurationMs:     gap,
			DurationDays:   days,
			LastSender:     sorted[i-1].Sender,
			NextSender:     sorted[i].Sender,
			Classification: classifyGap(days),
			MessagesBefore: volume[monthKey(sorted[i-1].TimestampMs)],
			MessagesAfter:  volume[monthKey(sorted[i].TimestampMs)],
		})
	}

	sort.SliceStable(gaps, func(a, b int) bool {
		return gaps[a].DurationMs > gaps[b].DurationMs
	})
	if len(gaps) > cfg.GapMaxResults {
		gaps = gaps[:cfg.GapMaxResults]
	}
	return gaps
}

func classifyGap(days float64) GapClassification {
	switch {
	case days >= 30:
		return GapExtendedSeparation
	case days >= 14:
		return GapPotentialBreakup
	default:
		return GapCoolingOff
	}
}
