package chatsignals

import (
	"fmt"
	"strings"
	"time"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Conflict / Escalation Detector — rolling-baseline spikes with
// cross-sender confirmation, plus cold silences
// ──────────────────────────────────────────────

// ConflictType tags a detected conflict event.
type ConflictType string

const (
	ConflictEscalation  ConflictType = "escalation"
	ConflictColdSilence ConflictType = "cold_silence"
	ConflictResolution  ConflictType = "resolution"
)

// ConflictEvent is one detected event. MessageRange holds positions in
// the chronologically sorted stream ([first,last] inclusive).
type ConflictEvent struct {
	Type         ConflictType `json:"type"`
	TimestampMs  int64        `json:"timestamp_ms"`
	Date         string       `json:"date"`
	Severity     int          `json:"severity"` // 1-3
	Participants []string     `json:"participants"`
	Description  string       `json:"description"`
	MessageRange [2]int       `json:"message_range"`
}

// ConflictAnalysis is the detector's result. TotalConflicts counts
// escalations and cold silences only; resolutions are tracked in Events
// but excluded from the total.
type ConflictAnalysis struct {
	Events            []ConflictEvent `json:"events"`
	TotalConflicts    int             `json:"total_conflicts"`
	MostConflictProne string          `json:"most_conflict_prone,omitempty"`
}

const (
	conflictWindowSize      = 10
	conflictColdStart       = 7
	conflictMinPriorEntries = 5
	conflictSpikeFactor     = 2.0
	confirmationWindowMs    = int64(15 * time.Minute / time.Millisecond)
	escalationDedupMs       = int64(4 * time.Hour / time.Millisecond)
	silenceMinGapMs         = int64(24 * time.Hour / time.Millisecond)
	silenceIntensityWindow  = int64(time.Hour / time.Millisecond)
	silenceIntensityCount   = 8
	resolutionWindowMs      = int64(24 * time.Hour / time.Millisecond)
)

// DetectConflicts scans the message stream (not the Turn structure — word
// counts live on individual messages) for escalation spikes and cold
// silences. Fewer than 20 messages returns an empty result.
func DetectConflicts(messages []Message, participantNames []string) ConflictAnalysis {
	return detectConflicts(messages, participantNames, DefaultAnalysisConfig())
}

func detectConflicts(messages []Message, participantNames []string, cfg AnalysisConfig) ConflictAnalysis {
	cfg = cfg.normalized()
	result := ConflictAnalysis{Events: []ConflictEvent{}}
	if len(messages) < cfg.ConflictMinMessages {
		return result
	}
	sorted := sortedByTime(messages)
	participants := participantSet(participantNames)

	wordCounts := make([]int, len(sorted))
	for i, m := range sorted {
		wordCounts[i] = len(strings.Fields(m.Content))
	}

	// Rolling window of each sender's last 10 word counts, fed as we scan.
	rolling := make(map[string][]int)
	escalators := make(map[string]int)
	lastEscalationMs := int64(-1)

	push := func(sender string, wc int) {
		w := append(rolling[sender], wc)
		if len(w) > conflictWindowSize {
			w = w[1:]
		}
		rolling[sender] = w
	}

	// spikes marks messages already known to spike against their sender's
	// rolling average, so confirmation lookups don't re-derive state.
	spikes := make([]bool, len(sorted))
	globalSum, globalCount := 0, 0
	for i, m := range sorted {
		wc := wordCounts[i]
		var avg float64
		entries := len(rolling[m.Sender])
		if i < conflictColdStart {
			// Cold start: conversation-wide average stands in for the
			// sender's own history.
			if globalCount > 0 {
				avg = float64(globalSum) / float64(globalCount)
			}
		} else if entries > 0 {
			sum := 0
			for _, v := range rolling[m.Sender] {
				sum += v
			}
			avg = float64(sum) / float64(entries)
		}
		if avg > 0 && float64(wc) > conflictSpikeFactor*avg {
			spikes[i] = true
		}
		globalSum += wc
		globalCount++
		push(m.Sender, wc)
	}

	priorEntries := make(map[string]int)
	var escalationEnds []int64 // for resolution tracking
	for i, m := range sorted {
		hadPrior := priorEntries[m.Sender]
		priorEntries[m.Sender] = minInt(hadPrior+1, conflictWindowSize)

		if !spikes[i] || hadPrior < conflictMinPriorEntries || !participants[m.Sender] {
			continue
		}
		if lastEscalationMs >= 0 && m.TimestampMs-lastEscalationMs < escalationDedupMs {
			// Same flare-up, already reported.
			continue
		}
		// Back-and-forth confirmation: a second sender also spikes
		// within 15 minutes.
		confirmIdx := -1
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].TimestampMs-m.TimestampMs > confirmationWindowMs {
				break
			}
			if sorted[j].Sender != m.Sender && spikes[j] {
				confirmIdx = j
				break
			}
		}
		if confirmIdx < 0 {
			continue
		}

		severity := escalationSeverity(sorted[i].Content, sorted[confirmIdx].Content, wordCounts[i], wordCounts[confirmIdx])

		result.Events = append(result.Events, ConflictEvent{
			Type:         ConflictEscalation,
			TimestampMs:  m.TimestampMs,
			Date:         dayKey(m.TimestampMs),
			Severity:     severity,
			Participants: []string{m.Sender, sorted[confirmIdx].Sender},
			Description:  fmt.Sprintf("Both sides escalated within %d minutes", int(confirmationWindowMs/60000)),
			MessageRange: [2]int{i, confirmIdx},
		})
		escalators[m.Sender]++
		lastEscalationMs = m.TimestampMs
		escalationEnds = append(escalationEnds, sorted[confirmIdx].TimestampMs)
	}

	// Cold silences: a high-intensity hour followed by a 24h+ gap.
	for i := 1; i < len(sorted); i++ {
		gap := sorted[i].TimestampMs - sorted[i-1].TimestampMs
		if gap < silenceMinGapMs {
			continue
		}
		intensity := 0
		for j := i - 1; j >= 0 && sorted[i-1].TimestampMs-sorted[j].TimestampMs <= silenceIntensityWindow; j-- {
			intensity++
		}
		if intensity < silenceIntensityCount {
			continue
		}
		result.Events = append(result.Events, ConflictEvent{
			Type:         ConflictColdSilence,
			TimestampMs:  sorted[i-1].TimestampMs,
			Date:         dayKey(sorted[i-1].TimestampMs),
			Severity:     silenceSeverity(gap),
			Participants: participantNames,
			Description:  fmt.Sprintf("Intense exchange followed by %.0f hours of silence", float64(gap)/float64(time.Hour.Milliseconds())),
			MessageRange: [2]int{i - 1, i},
		})
	}

	// Resolutions: an apology within 24h after an escalation's end.
	for _, endMs := range escalationEnds {
		for i, m := range sorted {
			if m.TimestampMs <= endMs || m.TimestampMs-endMs > resolutionWindowMs {
				continue
			}
			if !containsApology(m.Content) {
				continue
			}
			result.Events = append(result.Events, ConflictEvent{
				Type:         ConflictResolution,
				TimestampMs:  m.TimestampMs,
				Date:         dayKey(m.TimestampMs),
				Severity:     1,
				Participants: []string{m.Sender},
				Description:  "Apology after escalation",
				MessageRange: [2]int{i, i},
			})
			break
		}
	}

	for _, e := range result.Events {
		if e.Type == ConflictEscalation || e.Type == ConflictColdSilence {
			result.TotalConflicts++
		}
	}

	best, bestCount := "", 0
	for person, count := range escalators {
		if count > bestCount || (count == bestCount && person < best) {
			best, bestCount = person, count
		}
	}
	result.MostConflictProne = best
	return result
}

// escalationSeverity grades an escalation 1-3. Accusatory generalizations
// ("ty zawsze", "you never") max it out; otherwise the spike magnitude
// decides.
func escalationSeverity(primary, confirm string, primaryWC, confirmWC int) int {
	if containsAccusation(primary) || containsAccusation(confirm) {
		return 3
	}
	if primaryWC+confirmWC >= 60 {
		return 2
	}
	return 1
}

func silenceSeverity(gapMs int64) int {
	switch {
	case gapMs > 72*int64(time.Hour/time.Millisecond):
		return 3
	case gapMs > 48*int64(time.Hour/time.Millisecond):
		return 2
	default:
		return 1
	}
}

func containsAccusation(content string) bool {
	normalized := textutil.Normalize(content)
	folded := textutil.FoldDiacritics(normalized)
	for _, bigram := range lexicon.AccusatoryBigrams {
		if strings.Contains(normalized, bigram) || strings.Contains(folded, bigram) {
			return true
		}
	}
	return false
}

func containsApology(content string) bool {
	for _, tok := range textutil.Words(content) {
		if lexicon.Apology.Has(tok) {
			return true
		}
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
