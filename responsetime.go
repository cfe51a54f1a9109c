package chatsignals

import (
	"math"
	"sort"
	"time"
)

// ──────────────────────────────────────────────
// Response-Time Analytics — baselines, composite indices, trends
// ──────────────────────────────────────────────

// ResponseCategory buckets a measured reply latency.
type ResponseCategory string

const (
	CategoryInstant   ResponseCategory = "instant"   // < 30s
	CategoryQuick     ResponseCategory = "quick"     // < 2m
	CategoryNormal    ResponseCategory = "normal"    // < 15m
	CategoryDelayed   ResponseCategory = "delayed"   // < 1h
	CategorySlow      ResponseCategory = "slow"      // < 4h
	CategoryOvernight ResponseCategory = "overnight" // sleep-window reply
	CategoryGhosting  ResponseCategory = "ghosting"  // everything beyond
)

// TurnResponse is one measured reply latency between two turns of
// different senders.
type TurnResponse struct {
	Responder      string           `json:"responder"`
	Initiator      string           `json:"initiator"`
	ResponseMs     int64            `json:"response_ms"`
	Category       ResponseCategory `json:"category"`
	Overnight      bool             `json:"overnight"`
	EffortWeighted float64          `json:"effort_weighted"`
	// TimestampMs is the start of the responding turn; windowed
	// recomputation keys on it.
	TimestampMs int64 `json:"timestamp_ms"`
}

// PersonRTBaseline is the per-person statistical summary of non-overnight
// response times.
type PersonRTBaseline struct {
	Person     string  `json:"person"`
	MedianMs   float64 `json:"median_ms"`
	P25Ms      float64 `json:"p25_ms"`
	P75Ms      float64 `json:"p75_ms"`
	IQRMs      float64 `json:"iqr_ms"`
	MeanMs     float64 `json:"mean_ms"`
	SampleSize int     `json:"sample_size"`
	// HourlyMedianMs and WeekdayMedianMs hold medians for buckets that
	// have samples; absent buckets are absent keys.
	HourlyMedianMs  map[int]float64 `json:"hourly_median_ms"`
	WeekdayMedianMs map[int]float64 `json:"weekday_median_ms"`
	// CategoryDistribution covers all of the person's responses,
	// overnight included; fractions sum to 1.
	CategoryDistribution map[ResponseCategory]float64 `json:"category_distribution"`
}

// MonthlyRTPoint is one person-month of the trend series: monthly median
// response time divided by the person's baseline median.
type MonthlyRTPoint struct {
	Month      string  `json:"month"`
	Person     string  `json:"person"`
	RTI        float64 `json:"rti"`
	SampleSize int     `json:"sample_size"`
}

// MonthlyRAPoint is one month of pair-level Response Asymmetry.
type MonthlyRAPoint struct {
	Month string  `json:"month"`
	RA    float64 `json:"ra"`
}

// ResponseTimeAnalysis is the full analysis result. A nil return from
// ComputeResponseTimeAnalysis means "not enough data to be meaningful" —
// the caller hides the visualization instead of showing noise.
type ResponseTimeAnalysis struct {
	PerPerson map[string]*PersonRTBaseline `json:"per_person"`
	// RTI is 1.0 at global scope by construction; the per-window values
	// in Windows carry the signal.
	RTI               float64              `json:"rti"`
	ResponseAsymmetry float64              `json:"response_asymmetry"`
	RATrend           string               `json:"ra_trend"` // diverging|converging|stable
	GhostingIndex     map[string]float64   `json:"ghosting_index"`
	InitiativeRatio   map[string]float64   `json:"initiative_ratio"`
	EWRTMedianMs      map[string]float64   `json:"ewrt_median_ms"`
	MonthlyTrend      []MonthlyRTPoint     `json:"monthly_trend"`
	MonthlyRA         []MonthlyRAPoint     `json:"monthly_ra"`
	Windows           []SlidingWindowEntry `json:"windows"`
	Anomalies         []RTAnomaly          `json:"anomalies"`
	SessionGapMs      int64                `json:"session_gap_ms"`
	ResponseCount     int                  `json:"response_count"`
}

// ComputeResponseTimeAnalysis derives the full response-time battery for
// the conversation. Returns nil when any insufficiency guard trips:
// fewer than 30 messages, 5 turns, 10 measured responses, or 2 people
// with a valid baseline.
func ComputeResponseTimeAnalysis(messages []Message, participantNames []string) *ResponseTimeAnalysis {
	return computeResponseTimeAnalysis(messages, participantNames, DefaultAnalysisConfig())
}

func computeResponseTimeAnalysis(messages []Message, participantNames []string, cfg AnalysisConfig) *ResponseTimeAnalysis {
	cfg = cfg.normalized()
	if len(messages) < cfg.MinMessages {
		return nil
	}
	turns := buildTurns(messages, cfg)
	if len(turns) < cfg.MinTurns {
		return nil
	}
	sessionGapMs := adaptiveSessionGap(messages, cfg).Milliseconds()
	responses := measureTurnResponses(turns, sessionGapMs)
	if len(responses) < cfg.MinResponses {
		return nil
	}

	participants := participantSet(participantNames)
	baselines := buildBaselines(responses, participants, cfg.BaselineMinSamples)
	if len(baselines) < 2 {
		return nil
	}

	analysis := &ResponseTimeAnalysis{
		PerPerson:       baselines,
		RTI:             1.0,
		GhostingIndex:   make(map[string]float64, len(baselines)),
		InitiativeRatio: make(map[string]float64, len(baselines)),
		EWRTMedianMs:    make(map[string]float64, len(baselines)),
		SessionGapMs:    sessionGapMs,
		ResponseCount:   len(responses),
	}

	analysis.ResponseAsymmetry = responseAsymmetry(baselines)

	starts := sessionStarts(turns, sessionGapMs)
	for person := range baselines {
		analysis.GhostingIndex[person] = ghostingIndex(turns, person)
		analysis.InitiativeRatio[person] = initiativeRatio(turns, starts, person)
		analysis.EWRTMedianMs[person] = ewrtMedian(responses, person)
	}

	analysis.MonthlyTrend = monthlyTrend(responses, baselines)
	analysis.MonthlyRA = monthlyRA(responses, baselines)
	analysis.RATrend = classifyRATrend(analysis.MonthlyRA)

	analysis.Windows = buildSlidingWindows(turns, responses, baselines, starts, cfg)
	analysis.Anomalies = detectRTAnomalies(analysis.Windows, sortedPersons(baselines))

	return analysis
}

// measureTurnResponses walks adjacent turn pairs with a sender change.
// Non-positive gaps are skipped; overnight replies are kept and flagged;
// non-overnight gaps beyond the session boundary are cross-session noise
// and skipped.
func measureTurnResponses(turns []Turn, sessionGapMs int64) []TurnResponse {
	var responses []TurnResponse
	for i := 1; i < len(turns); i++ {
		prev, next := turns[i-1], turns[i]
		if prev.Sender == next.Sender {
			continue
		}
		rt := next.StartMs - prev.EndMs
		if rt <= 0 {
			continue
		}
		overnight := isOvernight(prev.EndMs, next.StartMs, rt)
		if !overnight && rt > sessionGapMs {
			continue
		}
		responses = append(responses, TurnResponse{
			Responder:      next.Sender,
			Initiator:      prev.Sender,
			ResponseMs:     rt,
			Category:       categorize(rt, overnight),
			Overnight:      overnight,
			EffortWeighted: effortWeighted(rt, next.CharCount),
			TimestampMs:    next.StartMs,
		})
	}
	return responses
}

// isOvernight exempts sleep-driven delay from being misread as
// disengagement: previous turn ends 21:00-03:00, reply starts 06:00-12:00,
// gap between 4 and 14 hours.
func isOvernight(prevEndMs, nextStartMs, rtMs int64) bool {
	prevHour := hourOf(prevEndMs)
	nextHour := hourOf(nextStartMs)
	if !(prevHour >= 21 || prevHour < 3) {
		return false
	}
	if nextHour < 6 || nextHour >= 12 {
		return false
	}
	return rtMs >= (4 * time.Hour).Milliseconds() && rtMs <= (14 * time.Hour).Milliseconds()
}

func categorize(rtMs int64, overnight bool) ResponseCategory {
	if overnight {
		return CategoryOvernight
	}
	switch {
	case rtMs < (30 * time.Second).Milliseconds():
		return CategoryInstant
	case rtMs < (2 * time.Minute).Milliseconds():
		return CategoryQuick
	case rtMs < (15 * time.Minute).Milliseconds():
		return CategoryNormal
	case rtMs < time.Hour.Milliseconds():
		return CategoryDelayed
	case rtMs < (4 * time.Hour).Milliseconds():
		return CategorySlow
	default:
		return CategoryGhosting
	}
}

// effortWeighted is rt / ln(1+chars): a fast one-word reply is penalized
// less than a fast substantive one would suggest. A zero-length reply
// degenerates to the raw response time.
func effortWeighted(rtMs int64, chars int) float64 {
	denom := math.Log(1 + float64(chars))
	if denom <= 0 {
		return float64(rtMs)
	}
	return float64(rtMs) / denom
}

// buildBaselines computes per-person summaries. Baseline statistics use
// non-overnight responses only and require BaselineMinSamples of them;
// the category distribution covers all of the person's responses.
func buildBaselines(responses []TurnResponse, participants map[string]bool, minSamples int) map[string]*PersonRTBaseline {
	daytime := make(map[string][]float64)
	byHour := make(map[string]map[int][]float64)
	byWeekday := make(map[string]map[int][]float64)
	categories := make(map[string]map[ResponseCategory]int)
	totals := make(map[string]int)

	for _, r := range responses {
		if !participants[r.Responder] {
			continue
		}
		if categories[r.Responder] == nil {
			categories[r.Responder] = make(map[ResponseCategory]int)
			byHour[r.Responder] = make(map[int][]float64)
			byWeekday[r.Responder] = make(map[int][]float64)
		}
		categories[r.Responder][r.Category]++
		totals[r.Responder]++
		if r.Overnight {
			continue
		}
		rt := float64(r.ResponseMs)
		daytime[r.Responder] = append(daytime[r.Responder], rt)
		byHour[r.Responder][hourOf(r.TimestampMs)] = append(byHour[r.Responder][hourOf(r.TimestampMs)], rt)
		byWeekday[r.Responder][weekdayOf(r.TimestampMs)] = append(byWeekday[r.Responder][weekdayOf(r.TimestampMs)], rt)
	}

	baselines := make(map[string]*PersonRTBaseline)
	for person, samples := range daytime {
		if len(samples) < minSamples {
			continue
		}
		b := &PersonRTBaseline{
			Person:               person,
			MedianMs:             median(samples),
			P25Ms:                percentile(samples, 25),
			P75Ms:                percentile(samples, 75),
			MeanMs:               mean(samples),
			SampleSize:           len(samples),
			HourlyMedianMs:       make(map[int]float64),
			WeekdayMedianMs:      make(map[int]float64),
			CategoryDistribution: make(map[ResponseCategory]float64),
		}
		b.IQRMs = b.P75Ms - b.P25Ms
		for hour, vals := range byHour[person] {
			b.HourlyMedianMs[hour] = median(vals)
		}
		for day, vals := range byWeekday[person] {
			b.WeekdayMedianMs[day] = median(vals)
		}
		for cat, count := range categories[person] {
			b.CategoryDistribution[cat] = float64(count) / float64(totals[person])
		}
		baselines[person] = b
	}
	return baselines
}

// responseAsymmetry is the slower median over the faster median, >= 1
// whenever both medians are positive. A degenerate zero denominator
// falls back to the neutral 1.
func responseAsymmetry(baselines map[string]*PersonRTBaseline) float64 {
	slowest, fastest := 0.0, math.MaxFloat64
	for _, b := range baselines {
		if b.MedianMs > slowest {
			slowest = b.MedianMs
		}
		if b.MedianMs < fastest {
			fastest = b.MedianMs
		}
	}
	if fastest <= 0 || fastest == math.MaxFloat64 {
		return 1
	}
	return slowest / fastest
}

// ghostingIndex is the fraction of turns directed at person that got no
// reply from them within 24 hours. Only the immediately following turn is
// inspected; when a third party replies first the pair is skipped rather
// than misattributed (a known undercount in group chats, preserved by
// design choice for the 2-person case).
func ghostingIndex(turns []Turn, person string) float64 {
	const replyWindowMs = 24 * 60 * 60 * 1000
	ghosted, replied := 0, 0
	for i, t := range turns {
		if t.Sender == person {
			continue
		}
		if i == len(turns)-1 {
			// Conversation ends on a turn directed at person.
			ghosted++
			continue
		}
		next := turns[i+1]
		gap := next.StartMs - t.EndMs
		switch {
		case next.Sender == person:
			if gap <= replyWindowMs {
				replied++
			} else {
				ghosted++
			}
		case next.Sender == t.Sender:
			// Initiator followed up before person replied. Only a
			// silence beyond the window is a clean no-reply signal.
			if gap > replyWindowMs {
				ghosted++
			}
		default:
			// Third party replied first — skip the pair.
		}
	}
	total := ghosted + replied
	if total == 0 {
		return 0
	}
	return float64(ghosted) / float64(total)
}

// initiativeRatio is the fraction of sessions this person opened.
func initiativeRatio(turns []Turn, starts []bool, person string) float64 {
	sessions, opened := 0, 0
	for i, isStart := range starts {
		if !isStart {
			continue
		}
		sessions++
		if turns[i].Sender == person {
			opened++
		}
	}
	if sessions == 0 {
		return 0
	}
	return float64(opened) / float64(sessions)
}

// ewrtMedian is the median effort-weighted response time of a person's
// non-overnight responses.
func ewrtMedian(responses []TurnResponse, person string) float64 {
	var vals []float64
	for _, r := range responses {
		if r.Responder != person || r.Overnight {
			continue
		}
		vals = append(vals, r.EffortWeighted)
	}
	return median(vals)
}

// monthlyTrend computes, per person-month with at least 3 samples, the
// monthly median over the baseline median. Months below the sample floor
// are noise and skipped.
func monthlyTrend(responses []TurnResponse, baselines map[string]*PersonRTBaseline) []MonthlyRTPoint {
	const minMonthlySamples = 3
	buckets := make(map[string]map[string][]float64) // person -> month -> rts
	for _, r := range responses {
		if r.Overnight {
			continue
		}
		b, ok := baselines[r.Responder]
		if !ok || b.MedianMs <= 0 {
			continue
		}
		if buckets[r.Responder] == nil {
			buckets[r.Responder] = make(map[string][]float64)
		}
		m := monthKey(r.TimestampMs)
		buckets[r.Responder][m] = append(buckets[r.Responder][m], float64(r.ResponseMs))
	}

	var points []MonthlyRTPoint
	for _, person := range sortedPersons(baselines) {
		months := make([]string, 0, len(buckets[person]))
		for m := range buckets[person] {
			months = append(months, m)
		}
		sort.Strings(months)
		for _, m := range months {
			vals := buckets[person][m]
			if len(vals) < minMonthlySamples {
				continue
			}
			points = append(points, MonthlyRTPoint{
				Month:      m,
				Person:     person,
				RTI:        median(vals) / baselines[person].MedianMs,
				SampleSize: len(vals),
			})
		}
	}
	return points
}

// monthlyRA computes the pair-level asymmetry per month. A month counts
// only when at least two baseline holders each have 2+ samples in it.
func monthlyRA(responses []TurnResponse, baselines map[string]*PersonRTBaseline) []MonthlyRAPoint {
	const minPersonSamples = 2
	byMonth := make(map[string]map[string][]float64)
	for _, r := range responses {
		if r.Overnight {
			continue
		}
		if _, ok := baselines[r.Responder]; !ok {
			continue
		}
		m := monthKey(r.TimestampMs)
		if byMonth[m] == nil {
			byMonth[m] = make(map[string][]float64)
		}
		byMonth[m][r.Responder] = append(byMonth[m][r.Responder], float64(r.ResponseMs))
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	var points []MonthlyRAPoint
	for _, m := range months {
		slowest, fastest := 0.0, math.MaxFloat64
		qualified := 0
		for _, vals := range byMonth[m] {
			if len(vals) < minPersonSamples {
				continue
			}
			qualified++
			med := median(vals)
			if med > slowest {
				slowest = med
			}
			if med < fastest {
				fastest = med
			}
		}
		if qualified < 2 || fastest <= 0 {
			continue
		}
		points = append(points, MonthlyRAPoint{Month: m, RA: slowest / fastest})
	}
	return points
}

// classifyRATrend splits the monthly series at its midpoint and compares
// half averages: delta beyond +0.3 is "diverging", below -0.3
// "converging", otherwise "stable".
func classifyRATrend(points []MonthlyRAPoint) string {
	if len(points) < 2 {
		return "stable"
	}
	mid := len(points) / 2
	var first, second []float64
	for i, p := range points {
		if i < mid {
			first = append(first, p.RA)
		} else {
			second = append(second, p.RA)
		}
	}
	delta := mean(second) - mean(first)
	switch {
	case delta > 0.3:
		return "diverging"
	case delta < -0.3:
		return "converging"
	default:
		return "stable"
	}
}

// sortedPersons gives deterministic iteration order over baseline holders.
func sortedPersons(baselines map[string]*PersonRTBaseline) []string {
	persons := make([]string, 0, len(baselines))
	for p := range baselines {
		persons = append(persons, p)
	}
	sort.Strings(persons)
	return persons
}
