package chatsignals

import (
	"sort"
	"time"
)

// ──────────────────────────────────────────────
// Message model — the normalized stream every analysis consumes
// ──────────────────────────────────────────────

// MessageType mirrors the parser's classification of a chat entry.
type MessageType string

const (
	MessageText    MessageType = "text"
	MessageMedia   MessageType = "media"
	MessageSystem  MessageType = "system"
	MessageCall    MessageType = "call"
	MessageUnknown MessageType = "unknown"
)

// Message is one normalized chat-log entry. Produced entirely by an
// external parser; the engine never mutates it. Ordering by TimestampMs
// is assumed but not guaranteed, so entry points sort defensively.
type Message struct {
	Index       int         `json:"index"`
	Sender      string      `json:"sender"`
	Content     string      `json:"content"`
	TimestampMs int64       `json:"timestamp_ms"`
	Type        MessageType `json:"type"`
	HasMedia    bool        `json:"has_media"`
	HasLink     bool        `json:"has_link"`
	IsUnsent    bool        `json:"is_unsent"`
}

// MonthlyVolume is one month's message count, keyed "YYYY-MM".
type MonthlyVolume struct {
	Month string `json:"month"`
	Total int    `json:"total"`
}

// sortedByTime returns a copy ordered by timestamp. The sort is stable so
// equal-timestamp messages keep input order and repeated calls stay
// deterministic.
func sortedByTime(messages []Message) []Message {
	out := make([]Message, len(messages))
	copy(out, messages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimestampMs < out[j].TimestampMs
	})
	return out
}

// monthKey formats a millisecond timestamp as "YYYY-MM" in UTC.
// UTC keeps results machine-independent.
func monthKey(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01")
}

// dayKey formats a millisecond timestamp as "YYYY-MM-DD" in UTC.
func dayKey(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("2006-01-02")
}

// parseDay parses a "YYYY-MM-DD" day key back into UTC time.
func parseDay(day string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", day, time.UTC)
}

// hourOf returns the UTC hour [0,24) of a millisecond timestamp.
func hourOf(ms int64) int {
	return time.UnixMilli(ms).UTC().Hour()
}

// weekdayOf returns the UTC day of week (0 = Sunday).
func weekdayOf(ms int64) int {
	return int(time.UnixMilli(ms).UTC().Weekday())
}

// ComputeMonthlyVolume counts messages per calendar month, sorted by
// month key ascending. The gap detector consumes this series.
func ComputeMonthlyVolume(messages []Message) []MonthlyVolume {
	counts := make(map[string]int)
	for _, m := range messages {
		counts[monthKey(m.TimestampMs)]++
	}
	months := make([]string, 0, len(counts))
	for k := range counts {
		months = append(months, k)
	}
	sort.Strings(months)
	out := make([]MonthlyVolume, 0, len(months))
	for _, k := range months {
		out = append(out, MonthlyVolume{Month: k, Total: counts[k]})
	}
	return out
}

// participantSet builds a membership set from the canonical display names.
// Person-keyed aggregations ignore senders outside this set.
func participantSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
