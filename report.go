package chatsignals

// ──────────────────────────────────────────────
// Report — one call, every signal
// ──────────────────────────────────────────────

// Report bundles every analysis for one conversation. Nil sub-results
// mean the corresponding analysis had insufficient data; the presentation
// layer hides those sections instead of rendering noise. The whole struct
// is JSON-serializable plain data.
type Report struct {
	MessageCount  int                      `json:"message_count"`
	Participants  []string                 `json:"participants"`
	MonthlyVolume []MonthlyVolume          `json:"monthly_volume"`
	Sentiment     *SentimentTrend          `json:"sentiment,omitempty"`
	ResponseTimes *ResponseTimeAnalysis    `json:"response_times,omitempty"`
	Conflicts     ConflictAnalysis         `json:"conflicts"`
	Gaps          []CommunicationGap       `json:"gaps"`
	Bursts        []MessageBurst           `json:"bursts,omitempty"`
	Intimacy      *IntimacyAnalysis        `json:"intimacy,omitempty"`
	Pronouns      *PronounAnalysis         `json:"pronouns,omitempty"`
	Granularity   *EmotionalGranularity    `json:"granularity,omitempty"`
	Chronotype    *ChronotypeCompatibility `json:"chronotype,omitempty"`
	SupportShift  *SupportShiftAnalysis    `json:"support_shift,omitempty"`
}

// BuildReport runs the full signal battery. Every analysis is an
// independent pure transform over the same message slice; nothing here
// shares state beyond the process-lifetime typo memo cache.
func BuildReport(messages []Message, participantNames []string) Report {
	monthly := ComputeMonthlyVolume(messages)
	return Report{
		MessageCount:  len(messages),
		Participants:  participantNames,
		MonthlyVolume: monthly,
		Sentiment:     AnalyzeSentimentTrend(messages),
		ResponseTimes: ComputeResponseTimeAnalysis(messages, participantNames),
		Conflicts:     DetectConflicts(messages, participantNames),
		Gaps:          DetectCommunicationGaps(messages, monthly),
		Bursts:        DetectBursts(messages),
		Intimacy:      AnalyzeIntimacy(messages),
		Pronouns:      AnalyzePronouns(messages, participantNames),
		Granularity:   AnalyzeEmotionalGranularity(messages),
		Chronotype:    AnalyzeChronotype(messages, participantNames),
		SupportShift:  AnalyzeSupportShift(messages, participantNames),
	}
}
