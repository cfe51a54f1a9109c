package chatsignals

import (
	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Shift/support ratio — where a reply directs its attention
// ──────────────────────────────────────────────

// SupportShiftAnalysis summarizes reply orientation: support responses
// keep attention on the other person, shift responses pull it back to
// the replier.
type SupportShiftAnalysis struct {
	SupportResponses int `json:"support_responses"`
	ShiftResponses   int `json:"shift_responses"`
	// SupportRatio = support / (support + shift), in [0,1].
	SupportRatio float64            `json:"support_ratio"`
	PerPerson    map[string]float64 `json:"per_person"`
}

const supportShiftMinClassified = 10

// AnalyzeSupportShift classifies replies (messages following another
// sender's message) as supportive or self-shifting. Returns nil when
// fewer than 10 replies classify either way.
func AnalyzeSupportShift(messages []Message, participantNames []string) *SupportShiftAnalysis {
	sorted := sortedByTime(messages)
	participants := participantSet(participantNames)

	type tally struct{ support, shift int }
	perPerson := make(map[string]*tally)
	total := tally{}

	for i := 1; i < len(sorted); i++ {
		m := sorted[i]
		if m.Sender == sorted[i-1].Sender || !participants[m.Sender] {
			continue
		}
		supportive, shifting := classifyReply(m.Content)
		if !supportive && !shifting {
			continue
		}
		t := perPerson[m.Sender]
		if t == nil {
			t = &tally{}
			perPerson[m.Sender] = t
		}
		if supportive {
			t.support++
			total.support++
		} else {
			t.shift++
			total.shift++
		}
	}

	classified := total.support + total.shift
	if classified < supportShiftMinClassified {
		return nil
	}

	analysis := &SupportShiftAnalysis{
		SupportResponses: total.support,
		ShiftResponses:   total.shift,
		SupportRatio:     float64(total.support) / float64(classified),
		PerPerson:        make(map[string]float64, len(perPerson)),
	}
	for person, t := range perPerson {
		if n := t.support + t.shift; n > 0 {
			analysis.PerPerson[person] = float64(t.support) / float64(n)
		}
	}
	return analysis
}

// classifyReply checks support markers first (substring, multi-word
// phrases included), then a leading first-person token as a shift marker.
// Support wins on a tie: "rozumiem, ja też tak miałem" consoles before
// it redirects.
func classifyReply(content string) (supportive, shifting bool) {
	normalized := textutil.Normalize(content)
	folded := textutil.FoldDiacritics(normalized)
	if containsAnyPhrase(normalized, folded, lexicon.Support) {
		return true, false
	}
	words := textutil.Words(content)
	if len(words) == 0 {
		return false, false
	}
	if lexicon.FirstSingular.Has(words[0]) {
		return false, true
	}
	// "a ja ..." — a particle then the pronoun still shifts.
	if len(words) > 1 && lexicon.FirstSingular.Has(words[1]) {
		return false, true
	}
	return false, false
}
