package chatsignals

import "time"

// ──────────────────────────────────────────────
// AnalysisConfig — every threshold in one place, spec defaults baked in
// ──────────────────────────────────────────────

// AnalysisConfig carries the thresholds shared across the analysis
// functions. Zero values fall back to DefaultAnalysisConfig fields, so
// callers can override a single knob without restating the rest.
type AnalysisConfig struct {
	// TurnBurstGap is the max gap merging consecutive same-sender
	// messages into one turn.
	TurnBurstGap time.Duration
	// SessionGapMin / SessionGapMax clamp the adaptive session gap.
	SessionGapMin time.Duration
	SessionGapMax time.Duration
	// SessionGapDefault applies when too few sub-hour gaps exist.
	SessionGapDefault time.Duration
	// SessionGapMinSamples is the sub-hour gap count below which the
	// default applies.
	SessionGapMinSamples int

	// MinMessages / MinTurns / MinResponses gate the response-time
	// analysis.
	MinMessages  int
	MinTurns     int
	MinResponses int
	// BaselineMinSamples is the non-overnight response count a person
	// needs for a baseline.
	BaselineMinSamples int

	// SlidingWindow / SlidingStep shape the windowed recomputation.
	SlidingWindow time.Duration
	SlidingStep   time.Duration

	// ConflictMinMessages gates conflict detection.
	ConflictMinMessages int

	// GapMinDuration is the silence length the gap detector reports.
	GapMinDuration time.Duration
	// GapMaxResults caps the returned gap list.
	GapMaxResults int

	// TypoCacheSize bounds the typo-correction memo cache.
	TypoCacheSize int
}

// DefaultAnalysisConfig returns the engine defaults.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		TurnBurstGap:         2 * time.Minute,
		SessionGapMin:        15 * time.Minute,
		SessionGapMax:        2 * time.Hour,
		SessionGapDefault:    30 * time.Minute,
		SessionGapMinSamples: 20,
		MinMessages:          30,
		MinTurns:             5,
		MinResponses:         10,
		BaselineMinSamples:   5,
		SlidingWindow:        30 * 24 * time.Hour,
		SlidingStep:          7 * 24 * time.Hour,
		ConflictMinMessages:  20,
		GapMinDuration:       7 * 24 * time.Hour,
		GapMaxResults:        15,
		TypoCacheSize:        2000,
	}
}

// normalized fills zero fields with defaults.
func (c AnalysisConfig) normalized() AnalysisConfig {
	def := DefaultAnalysisConfig()
	if c.TurnBurstGap <= 0 {
		c.TurnBurstGap = def.TurnBurstGap
	}
	if c.SessionGapMin <= 0 {
		c.SessionGapMin = def.SessionGapMin
	}
	if c.SessionGapMax <= 0 {
		c.SessionGapMax = def.SessionGapMax
	}
	if c.SessionGapDefault <= 0 {
		c.SessionGapDefault = def.SessionGapDefault
	}
	if c.SessionGapMinSamples <= 0 {
		c.SessionGapMinSamples = def.SessionGapMinSamples
	}
	if c.MinMessages <= 0 {
		c.MinMessages = def.MinMessages
	}
	if c.MinTurns <= 0 {
		c.MinTurns = def.MinTurns
	}
	if c.MinResponses <= 0 {
		c.MinResponses = def.MinResponses
	}
	if c.BaselineMinSamples <= 0 {
		c.BaselineMinSamples = def.BaselineMinSamples
	}
	if c.SlidingWindow <= 0 {
		c.SlidingWindow = def.SlidingWindow
	}
	if c.SlidingStep <= 0 {
		c.SlidingStep = def.SlidingStep
	}
	if c.ConflictMinMessages <= 0 {
		c.ConflictMinMessages = def.ConflictMinMessages
	}
	if c.GapMinDuration <= 0 {
		c.GapMinDuration = def.GapMinDuration
	}
	if c.GapMaxResults <= 0 {
		c.GapMaxResults = def.GapMaxResults
	}
	if c.TypoCacheSize <= 0 {
		c.TypoCacheSize = def.TypoCacheSize
	}
	return c
}
