package chatsignals

import (
	"math"
	"sort"

	"github.com/relata-io/chat-signals-go/lexicon"
	"github.com/relata-io/chat-signals-go/textutil"
)

// ──────────────────────────────────────────────
// Emotional granularity — breadth of the emotion vocabulary
// ──────────────────────────────────────────────

// GranularityPoint is one month's emotion-vocabulary profile.
type GranularityPoint struct {
	Month              string  `json:"month"`
	DistinctCategories int     `json:"distinct_categories"`
	EmotionWordCount   int     `json:"emotion_word_count"`
	Score              float64 `json:"score"` // [0,100]
}

// EmotionalGranularity is the monthly series plus an overall score.
// High granularity means naming many distinct emotions evenly; a chat
// that only ever registers "joy" scores low however cheerful it is.
type EmotionalGranularity struct {
	Monthly      []GranularityPoint `json:"monthly"`
	OverallScore float64            `json:"overall_score"` // [0,100]
}

const (
	granularityMinMonthHits = 3
	granularityMinMonths    = 1
)

// AnalyzeEmotionalGranularity buckets emotion-category hits by month and
// scores each month by category breadth and evenness (normalized Shannon
// entropy). Months with fewer than 3 emotion-word hits are skipped;
// nil when no month qualifies.
func AnalyzeEmotionalGranularity(messages []Message) *EmotionalGranularity {
	hits := make(map[string]map[string]int) // month -> category -> count
	for _, m := range messages {
		if m.Type != MessageText && m.Type != "" {
			continue
		}
		mk := monthKey(m.TimestampMs)
		for _, tok := range textutil.Tokenize(m.Content) {
			if lexicon.Stopwords.Has(tok) {
				continue
			}
			folded := textutil.FoldDiacritics(tok)
			for category, set := range lexicon.EmotionCategories {
				if !set.Has(tok) && !set.Has(folded) {
					continue
				}
				if hits[mk] == nil {
					hits[mk] = make(map[string]int)
				}
				hits[mk][category]++
			}
		}
	}

	months := make([]string, 0, len(hits))
	for m, categories := range hits {
		total := 0
		for _, c := range categories {
			total += c
		}
		if total >= granularityMinMonthHits {
			months = append(months, m)
		}
	}
	if len(months) < granularityMinMonths {
		return nil
	}
	sort.Strings(months)

	result := &EmotionalGranularity{}
	var scores []float64
	for _, m := range months {
		categories := hits[m]
		total := 0
		for _, c := range categories {
			total += c
		}
		breadth := float64(len(categories)) / float64(lexicon.EmotionCategoryCount)
		evenness := normalizedEntropy(categories, total)
		score := clamp0100((breadth*0.6 + evenness*0.4) * 100)
		result.Monthly = append(result.Monthly, GranularityPoint{
			Month:              m,
			DistinctCategories: len(categories),
			EmotionWordCount:   total,
			Score:              score,
		})
		scores = append(scores, score)
	}
	result.OverallScore = mean(scores)
	return result
}

// normalizedEntropy is Shannon entropy over the category distribution,
// scaled to [0,1] by the log of the category count. A single category
// yields 0.
func normalizedEntropy(categories map[string]int, total int) float64 {
	if total == 0 || len(categories) < 2 {
		return 0
	}
	entropy := 0.0
	for _, count := range categories {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(total)
		entropy -= p * math.Log(p)
	}
	return entropy / math.Log(float64(len(categories)))
}
