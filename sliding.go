package chatsignals

import "fmt"

// ──────────────────────────────────────────────
// Sliding windows — 30-day snapshots and independent anomaly rules
// ──────────────────────────────────────────────

// WindowPersonStats is one person's recomputed stats inside a window.
type WindowPersonStats struct {
	RTI        float64 `json:"rti"`
	MedianMs   float64 `json:"median_ms"`
	SampleSize int     `json:"sample_size"`
}

// SlidingWindowEntry is an immutable snapshot of one [start,end) window.
// Windows are generated once and then scanned independently by each
// anomaly rule.
type SlidingWindowEntry struct {
	StartMs         int64                        `json:"start_ms"`
	EndMs           int64                        `json:"end_ms"`
	PerPerson       map[string]WindowPersonStats `json:"per_person"`
	RA              float64                      `json:"ra"`
	GhostingIndex   map[string]float64           `json:"ghosting_index"`
	InitiativeRatio map[string]float64           `json:"initiative_ratio"`
}

// AnomalyType tags a detected response-time anomaly.
type AnomalyType string

const (
	AnomalySuddenSlowdown     AnomalyType = "sudden_slowdown"
	AnomalyGradualWithdrawal  AnomalyType = "gradual_withdrawal"
	AnomalyGhostingSpike      AnomalyType = "ghosting_spike"
	AnomalyInitiativeCollapse AnomalyType = "initiative_collapse"
)

// RTAnomaly is one detected event. Rules are independent and may co-fire
// for the same person/window; each firing is a separate record.
type RTAnomaly struct {
	Type        AnomalyType `json:"type"`
	Person      string      `json:"person"`
	WindowIndex int         `json:"window_index"`
	Severity    float64     `json:"severity"` // [0,1]
	Description string      `json:"description"`
}

// anomaly rule constants.
const (
	slowdownRTIThreshold  = 2.5
	slowdownRTICeiling    = 5.0
	withdrawalMinRun      = 3
	ghostingSpikeDelta    = 0.20
	initiativeFloor       = 0.15
	initiativeCollapseRun = 3
	windowMinSamples      = 3
)

// buildSlidingWindows steps a 30-day window by 7 days across the full
// timestamp range, recomputing per-person stats from turns and responses
// whose start timestamp falls inside the window. Skipped entirely when
// the span is shorter than one window.
func buildSlidingWindows(turns []Turn, responses []TurnResponse, baselines map[string]*PersonRTBaseline, starts []bool, cfg AnalysisConfig) []SlidingWindowEntry {
	if len(turns) == 0 {
		return nil
	}
	windowMs := cfg.SlidingWindow.Milliseconds()
	stepMs := cfg.SlidingStep.Milliseconds()
	first := turns[0].StartMs
	last := turns[len(turns)-1].EndMs
	if last-first < windowMs {
		return nil
	}

	var entries []SlidingWindowEntry
	for ws := first; ws+windowMs <= last+stepMs; ws += stepMs {
		we := ws + windowMs
		entry := SlidingWindowEntry{
			StartMs:         ws,
			EndMs:           we,
			PerPerson:       make(map[string]WindowPersonStats),
			GhostingIndex:   make(map[string]float64),
			InitiativeRatio: make(map[string]float64),
		}

		// Per-person RTI/median over the window's non-overnight responses.
		samples := make(map[string][]float64)
		for _, r := range responses {
			if r.Overnight || r.TimestampMs < ws || r.TimestampMs >= we {
				continue
			}
			if _, ok := baselines[r.Responder]; !ok {
				continue
			}
			samples[r.Responder] = append(samples[r.Responder], float64(r.ResponseMs))
		}
		for person, vals := range samples {
			if len(vals) < windowMinSamples {
				continue
			}
			med := median(vals)
			rti := 0.0
			if base := baselines[person].MedianMs; base > 0 {
				rti = med / base
			}
			entry.PerPerson[person] = WindowPersonStats{RTI: rti, MedianMs: med, SampleSize: len(vals)}
		}

		entry.RA = windowAsymmetry(entry.PerPerson)

		// Turn-level indices restricted to turns starting in the window.
		var winTurns []Turn
		var winStarts []bool
		for i, t := range turns {
			if t.StartMs < ws || t.StartMs >= we {
				continue
			}
			winTurns = append(winTurns, t)
			winStarts = append(winStarts, starts[i])
		}
		for person := range baselines {
			entry.GhostingIndex[person] = ghostingIndex(winTurns, person)
			entry.InitiativeRatio[person] = initiativeRatio(winTurns, winStarts, person)
		}

		entries = append(entries, entry)
	}
	return entries
}

func windowAsymmetry(perPerson map[string]WindowPersonStats) float64 {
	slowest, fastest := 0.0, 0.0
	count := 0
	for _, s := range perPerson {
		count++
		if s.MedianMs > slowest {
			slowest = s.MedianMs
		}
		if fastest == 0 || s.MedianMs < fastest {
			fastest = s.MedianMs
		}
	}
	if count < 2 || fastest <= 0 {
		return 1
	}
	return slowest / fastest
}

// detectRTAnomalies scans the window series once per rule per person.
// The four rules are deliberately independent: a bad month can produce a
// slowdown, a ghosting spike and an initiative collapse at once, and the
// presentation layer wants them as separate events.
func detectRTAnomalies(windows []SlidingWindowEntry, persons []string) []RTAnomaly {
	var anomalies []RTAnomaly
	for _, person := range persons {
		anomalies = append(anomalies, suddenSlowdowns(windows, person)...)
		anomalies = append(anomalies, gradualWithdrawals(windows, person)...)
		anomalies = append(anomalies, ghostingSpikes(windows, person)...)
		anomalies = append(anomalies, initiativeCollapses(windows, person)...)
	}
	return anomalies
}

// suddenSlowdowns fires on any window where RTI exceeds 2.5, severity
// scaling linearly up to RTI=5.
func suddenSlowdowns(windows []SlidingWindowEntry, person string) []RTAnomaly {
	var out []RTAnomaly
	for i, w := range windows {
		stats, ok := w.PerPerson[person]
		if !ok || stats.RTI <= slowdownRTIThreshold {
			continue
		}
		severity := clamp01((stats.RTI - slowdownRTIThreshold) / (slowdownRTICeiling - slowdownRTIThreshold))
		out = append(out, RTAnomaly{
			Type:        AnomalySuddenSlowdown,
			Person:      person,
			WindowIndex: i,
			Severity:    severity,
			Description: fmt.Sprintf("%s replied %.1fx slower than their baseline", person, stats.RTI),
		})
	}
	return out
}

// gradualWithdrawals fires on runs of strictly increasing RTI across 3+
// consecutive windows; severity scales with the total rise over the run.
func gradualWithdrawals(windows []SlidingWindowEntry, person string) []RTAnomaly {
	var out []RTAnomaly
	runStart := -1
	prev := 0.0
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart + 1
		if length >= withdrawalMinRun {
			first := windows[runStart].PerPerson[person].RTI
			last := windows[end].PerPerson[person].RTI
			out = append(out, RTAnomaly{
				Type:        AnomalyGradualWithdrawal,
				Person:      person,
				WindowIndex: end,
				Severity:    clamp01((last - first) / 2),
				Description: fmt.Sprintf("%s's response time rose across %d consecutive windows", person, length),
			})
		}
		runStart = -1
	}
	for i, w := range windows {
		stats, ok := w.PerPerson[person]
		if !ok {
			flush(i - 1)
			continue
		}
		if runStart >= 0 && stats.RTI > prev {
			prev = stats.RTI
			continue
		}
		flush(i - 1)
		runStart = i
		prev = stats.RTI
	}
	flush(len(windows) - 1)
	return out
}

// ghostingSpikes fires when the Ghosting Index jumps by more than 20
// percentage points between adjacent windows.
func ghostingSpikes(windows []SlidingWindowEntry, person string) []RTAnomaly {
	var out []RTAnomaly
	for i := 1; i < len(windows); i++ {
		prev, okPrev := windows[i-1].GhostingIndex[person]
		cur, okCur := windows[i].GhostingIndex[person]
		if !okPrev || !okCur {
			continue
		}
		delta := cur - prev
		if delta <= ghostingSpikeDelta {
			continue
		}
		out = append(out, RTAnomaly{
			Type:        AnomalyGhostingSpike,
			Person:      person,
			WindowIndex: i,
			Severity:    clamp01(delta / 0.5),
			Description: fmt.Sprintf("%s started leaving %.0f%% more messages unanswered", person, delta*100),
		})
	}
	return out
}

// initiativeCollapses fires when the Initiative Ratio stays below 0.15
// for 3+ consecutive windows; longer droughts are more severe.
func initiativeCollapses(windows []SlidingWindowEntry, person string) []RTAnomaly {
	var out []RTAnomaly
	runStart := -1
	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart + 1
		if length >= initiativeCollapseRun {
			out = append(out, RTAnomaly{
				Type:        AnomalyInitiativeCollapse,
				Person:      person,
				WindowIndex: end,
				Severity:    clamp01(float64(length) / 6),
				Description: fmt.Sprintf("%s stopped initiating conversations for %d consecutive windows", person, length),
			})
		}
		runStart = -1
	}
	for i, w := range windows {
		ratio, ok := w.InitiativeRatio[person]
		if !ok || ratio >= initiativeFloor {
			flush(i - 1)
			continue
		}
		if runStart < 0 {
			runStart = i
		}
	}
	flush(len(windows) - 1)
	return out
}
