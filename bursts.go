package chatsignals

import "sort"

// ──────────────────────────────────────────────
// Burst Detector — days of unusually heavy messaging
// ──────────────────────────────────────────────

// MessageBurst is a run of consecutive high-volume days.
type MessageBurst struct {
	StartDay      string  `json:"start_day"`
	EndDay        string  `json:"end_day"`
	PeakDay       string  `json:"peak_day"`
	PeakCount     int     `json:"peak_count"`
	TotalMessages int     `json:"total_messages"`
	AvgDaily      float64 `json:"avg_daily"`
}

const (
	burstFactor      = 3.0
	burstMinCount    = 10
	burstTrailDays   = 7
	burstMinBaseline = 3
)

// DetectBursts finds days whose message count exceeds 3x the trailing
// 7-day average (and at least 10 messages), merging consecutive bursty
// days into one burst. Needs at least 3 prior active days of baseline
// before a day can qualify.
func DetectBursts(messages []Message) []MessageBurst {
	counts := make(map[string]int)
	for _, m := range messages {
		counts[dayKey(m.TimestampMs)]++
	}
	if len(counts) < burstMinBaseline+1 {
		return nil
	}
	days := make([]string, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Strings(days)

	bursty := make([]bool, len(days))
	for i, d := range days {
		lo := i - burstTrailDays
		if lo < 0 {
			lo = 0
		}
		prior := days[lo:i]
		if len(prior) < burstMinBaseline {
			continue
		}
		sum := 0
		for _, p := range prior {
			sum += counts[p]
		}
		baseline := float64(sum) / float64(len(prior))
		if counts[d] >= burstMinCount && float64(counts[d]) > burstFactor*baseline {
			bursty[i] = true
		}
	}

	var bursts []MessageBurst
	for i := 0; i < len(days); i++ {
		if !bursty[i] {
			continue
		}
		j := i
		for j+1 < len(days) && bursty[j+1] && consecutiveDays(days[j], days[j+1]) {
			j++
		}
		total, peak, peakDay := 0, 0, days[i]
		for k := i; k <= j; k++ {
			total += counts[days[k]]
			if counts[days[k]] > peak {
				peak = counts[days[k]]
				peakDay = days[k]
			}
		}
		bursts = append(bursts, MessageBurst{
			StartDay:      days[i],
			EndDay:        days[j],
			PeakDay:       peakDay,
			PeakCount:     peak,
			TotalMessages: total,
			AvgDaily:      float64(total) / float64(j-i+1),
		})
		i = j
	}
	return bursts
}

// consecutiveDays reports whether b is the calendar day after a.
// Both are "YYYY-MM-DD" keys in UTC.
func consecutiveDays(a, b string) bool {
	ta, errA := parseDay(a)
	tb, errB := parseDay(b)
	if errA != nil || errB != nil {
		return false
	}
	return tb.Sub(ta).Hours() == 24
}
