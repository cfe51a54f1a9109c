package chatsignals

import "time"

// ──────────────────────────────────────────────
// Turn & Session Segmenter — bursts into turns, turns into sessions
// ──────────────────────────────────────────────

// Turn is a maximal run of consecutive messages from one sender separated
// by gaps below the burst threshold. Built per analysis call and never
// mutated after construction.
type Turn struct {
	Sender       string `json:"sender"`
	StartMs      int64  `json:"start_ms"`
	EndMs        int64  `json:"end_ms"`
	MessageCount int    `json:"message_count"`
	CharCount    int    `json:"char_count"`
	Month        string `json:"month"`
}

// BuildTurns groups messages into turns with the default 2-minute burst
// threshold. Input order is not trusted; messages are sorted first.
func BuildTurns(messages []Message) []Turn {
	return buildTurns(messages, DefaultAnalysisConfig())
}

func buildTurns(messages []Message, cfg AnalysisConfig) []Turn {
	if len(messages) == 0 {
		return nil
	}
	burstMs := cfg.TurnBurstGap.Milliseconds()
	sorted := sortedByTime(messages)

	var turns []Turn
	var cur *Turn
	for _, m := range sorted {
		if cur != nil && m.Sender == cur.Sender && m.TimestampMs-cur.EndMs < burstMs {
			cur.EndMs = m.TimestampMs
			cur.MessageCount++
			cur.CharCount += len([]rune(m.Content))
			continue
		}
		if cur != nil {
			turns = append(turns, *cur)
		}
		cur = &Turn{
			Sender:       m.Sender,
			StartMs:      m.TimestampMs,
			EndMs:        m.TimestampMs,
			MessageCount: 1,
			CharCount:    len([]rune(m.Content)),
			Month:        monthKey(m.TimestampMs),
		}
	}
	turns = append(turns, *cur)
	return turns
}

// AdaptiveSessionGap computes the conversation-specific session boundary:
// the 75th percentile of sub-hour inter-message gaps, doubled, clamped to
// [15m, 2h]. Habitually fast pairs get a tight boundary, slow pairs a
// loose one — a fixed constant misclassifies both. Falls back to 30m when
// fewer than 20 sub-hour gaps exist.
func AdaptiveSessionGap(messages []Message) time.Duration {
	return adaptiveSessionGap(messages, DefaultAnalysisConfig())
}

func adaptiveSessionGap(messages []Message, cfg AnalysisConfig) time.Duration {
	sorted := sortedByTime(messages)
	hourMs := float64(time.Hour.Milliseconds())

	var gaps []float64
	for i := 1; i < len(sorted); i++ {
		gap := float64(sorted[i].TimestampMs - sorted[i-1].TimestampMs)
		if gap > 0 && gap < hourMs {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) < cfg.SessionGapMinSamples {
		return cfg.SessionGapDefault
	}

	boundary := time.Duration(percentile(gaps, 75)*2) * time.Millisecond
	if boundary < cfg.SessionGapMin {
		boundary = cfg.SessionGapMin
	}
	if boundary > cfg.SessionGapMax {
		boundary = cfg.SessionGapMax
	}
	return boundary
}

// sessionStarts returns, for each turn, whether it opens a new session
// (first turn, or preceded by a gap exceeding sessionGap).
func sessionStarts(turns []Turn, sessionGapMs int64) []bool {
	starts := make([]bool, len(turns))
	for i := range turns {
		if i == 0 {
			starts[i] = true
			continue
		}
		starts[i] = turns[i].StartMs-turns[i-1].EndMs > sessionGapMs
	}
	return starts
}
