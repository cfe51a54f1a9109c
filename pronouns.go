package chatsignals

import (
	"sort"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Pronoun analysis — I/we balance as relational orientation
// ──────────────────────────────────────────────

// PronounStats is one person's pronoun summary.
type PronounStats struct {
	Person  string `json:"person"`
	ICount  int    `json:"i_count"`
	WeCount int    `json:"we_count"`
	// IWeRatio = I / (I + We); neutral 1 when no pronouns appear.
	IWeRatio float64 `json:"i_we_ratio"`
	// RelationshipOrientation = We share on a 0-100 scale; the neutral
	// 50 stands in when the denominator is zero.
	RelationshipOrientation float64 `json:"relationship_orientation"`
	WordCount               int     `json:"word_count"`
}

// PronounAnalysis covers every qualifying participant.
type PronounAnalysis struct {
	PerPerson map[string]*PronounStats `json:"per_person"`
	// CoupleOrientation averages the qualifying participants.
	CoupleOrientation float64 `json:"couple_orientation"`
}

const pronounMinWords = 50

// AnalyzePronouns counts first-person-singular and -plural forms per
// participant. Participants under 50 words are excluded; nil when nobody
// qualifies.
func AnalyzePronouns(messages []Message, participantNames []string) *PronounAnalysis {
	participants := participantSet(participantNames)
	stats := make(map[string]*PronounStats)

	for _, m := range messages {
		if !participants[m.Sender] {
			continue
		}
		s := stats[m.Sender]
		if s == nil {
			s = &PronounStats{Person: m.Sender}
			stats[m.Sender] = s
		}
		english := englishMarker.MatchString(textutil.Normalize(m.Content))
		for _, tok := range textutil.Words(m.Content) {
			s.WordCount++
			if tok == "i" && !english {
				// Polish "i" is the conjunction, not a pronoun.
				continue
			}
			folded := textutil.FoldDiacritics(tok)
			switch {
			case lexicon.FirstPlural.Has(tok) || lexicon.FirstPlural.Has(folded):
				s.WeCount++
			case lexicon.FirstSingular.Has(tok) || lexicon.FirstSingular.Has(folded):
				s.ICount++
			}
		}
	}

	analysis := &PronounAnalysis{PerPerson: make(map[string]*PronounStats)}
	var orientations []float64
	persons := make([]string, 0, len(stats))
	for p := range stats {
		persons = append(persons, p)
	}
	sort.Strings(persons)
	for _, p := range persons {
		s := stats[p]
		if s.WordCount < pronounMinWords {
			continue
		}
		total := s.ICount + s.WeCount
		if total == 0 {
			// Degenerate denominator: neutral fallbacks, not NaN.
			s.IWeRatio = 1
			s.RelationshipOrientation = 50
		} else {
			s.IWeRatio = float64(s.ICount) / float64(total)
			s.RelationshipOrientation = float64(s.WeCount) / float64(total) * 100
		}
		analysis.PerPerson[p] = s
		orientations = append(orientations, s.RelationshipOrientation)
	}
	if len(analysis.PerPerson) == 0 {
		return nil
	}
	analysis.CoupleOrientation = mean(orientations)
	return analysis
}
