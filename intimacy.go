package chatsignals

import (
	"sort"
	"strings"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Intimacy progression — monthly closeness score and its slope
// ──────────────────────────────────────────────

// IntimacyPoint is one month's closeness score.
type IntimacyPoint struct {
	Month        string  `json:"month"`
	Score        float64 `json:"score"` // [0,100]
	MessageCount int     `json:"message_count"`
}

// IntimacyAnalysis is the progression result. Label is the presentation
// string the trend maps to.
type IntimacyAnalysis struct {
	Monthly      []IntimacyPoint `json:"monthly"`
	OverallSlope float64         `json:"overall_slope"`
	Label        string          `json:"label"`
}

const (
	intimacyMinMonths        = 2
	intimacyMinMonthMessages = 10
	intimacySlopeThreshold   = 2.0
)

// Intimacy trend labels surfaced to the presentation layer.
const (
	LabelGrowingCloseness = "Rosnąca bliskość"
	LabelDriftingApart    = "Oddalanie się"
	LabelStableRelation   = "Stabilna relacja"
)

// AnalyzeIntimacy scores each month's closeness from affection markers,
// emotion vocabulary and exclamatory energy, then fits a slope over the
// monthly series. Months with fewer than 10 messages are skipped; fewer
// than 2 qualifying months returns nil.
func AnalyzeIntimacy(messages []Message) *IntimacyAnalysis {
	type bucket struct {
		count       int
		strongHits  int
		softHits    int
		emotionHits int
		exclaimed   int
	}
	buckets := make(map[string]*bucket)
	for _, m := range sortedByTime(messages) {
		if m.Type != MessageText && m.Type != "" {
			continue
		}
		mk := monthKey(m.TimestampMs)
		b := buckets[mk]
		if b == nil {
			b = &bucket{}
			buckets[mk] = b
		}
		b.count++
		normalized := textutil.Normalize(m.Content)
		folded := textutil.FoldDiacritics(normalized)
		if containsAnyPhrase(normalized, folded, lexicon.IntimacyStrong) {
			b.strongHits++
		} else if containsAnyPhrase(normalized, folded, lexicon.IntimacySoft) {
			b.softHits++
		}
		if hitsAnyEmotion(normalized) {
			b.emotionHits++
		}
		if strings.Contains(m.Content, "!") {
			b.exclaimed++
		}
	}

	months := make([]string, 0, len(buckets))
	for m, b := range buckets {
		if b.count >= intimacyMinMonthMessages {
			months = append(months, m)
		}
	}
	if len(months) < intimacyMinMonths {
		return nil
	}
	sort.Strings(months)

	analysis := &IntimacyAnalysis{}
	scores := make([]float64, 0, len(months))
	for _, m := range months {
		b := buckets[m]
		total := float64(b.count)
		// Percent rates weighted: declarations dominate, warmth and
		// emotional vocabulary follow, exclamatory energy trails.
		score := clamp0100(
			float64(b.strongHits)/total*100*0.45 +
				float64(b.softHits)/total*100*0.25 +
				float64(b.emotionHits)/total*100*0.20 +
				float64(b.exclaimed)/total*100*0.10,
		)
		analysis.Monthly = append(analysis.Monthly, IntimacyPoint{
			Month:        m,
			Score:        score,
			MessageCount: b.count,
		})
		scores = append(scores, score)
	}
	analysis.OverallSlope = linearSlope(scores)
	switch {
	case analysis.OverallSlope > intimacySlopeThreshold:
		analysis.Label = LabelGrowingCloseness
	case analysis.OverallSlope < -intimacySlopeThreshold:
		analysis.Label = LabelDriftingApart
	default:
		analysis.Label = LabelStableRelation
	}
	return analysis
}

// containsAnyPhrase matches set entries as substrings so multi-word
// markers ("myślę o tobie") hit too.
func containsAnyPhrase(normalized, folded string, set lexicon.Set) bool {
	for phrase := range set {
		if strings.Contains(normalized, phrase) || strings.Contains(folded, phrase) {
			return true
		}
	}
	return false
}

func hitsAnyEmotion(normalized string) bool {
	for _, tok := range textutil.Tokenize(normalized) {
		folded := textutil.FoldDiacritics(tok)
		for _, set := range lexicon.EmotionCategories {
			if set.Has(tok) || set.Has(folded) {
				return true
			}
		}
	}
	return false
}
