package chatsignals

import (
	"math"
	"time"
)

// ──────────────────────────────────────────────
// Chronotype compatibility — circular time-of-day arithmetic
// ──────────────────────────────────────────────

// ChronotypeProfile is one person's daily activity pattern.
type ChronotypeProfile struct {
	Person string `json:"person"`
	// MeanHour is the circular mean of message hours, in [0,24).
	// Circular because 23:30 and 00:30 are an hour apart, not 23.
	MeanHour float64 `json:"mean_hour"`
	// PeakHour is the hour with the most messages.
	PeakHour int `json:"peak_hour"`
	// NightOwlScore is the percent of messages sent 22:00-04:00.
	NightOwlScore float64 `json:"night_owl_score"` // [0,100]
	// HourShare is the fraction of the person's messages per hour;
	// shares sum to 1.
	HourShare [24]float64 `json:"hour_share"`
	Messages  int         `json:"messages"`
}

// ChronotypeCompatibility compares participants' daily rhythms.
type ChronotypeCompatibility struct {
	PerPerson map[string]*ChronotypeProfile `json:"per_person"`
	// OverlapScore is the histogram overlap of the two most active
	// participants' hour shares, 0-100.
	OverlapScore float64 `json:"overlap_score"`
	// MeanHourDifference is the circular distance between their mean
	// hours, in [0,12].
	MeanHourDifference float64 `json:"mean_hour_difference"`
}

const chronotypeMinMessages = 30

// AnalyzeChronotype profiles each participant's hour-of-day distribution
// and scores pairwise compatibility. Participants under 30 messages are
// excluded; nil unless at least 2 qualify.
func AnalyzeChronotype(messages []Message, participantNames []string) *ChronotypeCompatibility {
	participants := participantSet(participantNames)

	type acc struct {
		hours  [24]int
		sinSum float64
		cosSum float64
		count  int
	}
	accs := make(map[string]*acc)
	for _, m := range messages {
		if !participants[m.Sender] {
			continue
		}
		a := accs[m.Sender]
		if a == nil {
			a = &acc{}
			accs[m.Sender] = a
		}
		t := time.UnixMilli(m.TimestampMs).UTC()
		hourFrac := float64(t.Hour()) + float64(t.Minute())/60
		angle := hourFrac / 24 * 2 * math.Pi
		a.hours[t.Hour()]++
		a.sinSum += math.Sin(angle)
		a.cosSum += math.Cos(angle)
		a.count++
	}

	result := &ChronotypeCompatibility{PerPerson: make(map[string]*ChronotypeProfile)}
	for person, a := range accs {
		if a.count < chronotypeMinMessages {
			continue
		}
		p := &ChronotypeProfile{Person: person, Messages: a.count}
		p.MeanHour = circularMeanHour(a.sinSum, a.cosSum)
		night := 0
		for hour, count := range a.hours {
			p.HourShare[hour] = float64(count) / float64(a.count)
			if count > a.hours[p.PeakHour] {
				p.PeakHour = hour
			}
			if hour >= 22 || hour < 4 {
				night += count
			}
		}
		p.NightOwlScore = float64(night) / float64(a.count) * 100
		result.PerPerson[person] = p
	}
	if len(result.PerPerson) < 2 {
		return nil
	}

	first, second := topTwoBySize(result.PerPerson)
	result.OverlapScore = histogramOverlap(first.HourShare, second.HourShare) * 100
	result.MeanHourDifference = circularHourDistance(first.MeanHour, second.MeanHour)
	return result
}

// circularMeanHour converts summed unit vectors back to an hour in [0,24).
func circularMeanHour(sinSum, cosSum float64) float64 {
	angle := math.Atan2(sinSum, cosSum)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle / (2 * math.Pi) * 24
}

// circularHourDistance is the shorter way around the 24h clock, in [0,12].
func circularHourDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 12 {
		d = 24 - d
	}
	return d
}

// histogramOverlap is the shared mass of two normalized histograms, [0,1].
func histogramOverlap(a, b [24]float64) float64 {
	overlap := 0.0
	for i := range a {
		overlap += math.Min(a[i], b[i])
	}
	return clamp01(overlap)
}

// topTwoBySize picks the two most active profiles, names breaking ties so
// the result is deterministic.
func topTwoBySize(profiles map[string]*ChronotypeProfile) (*ChronotypeProfile, *ChronotypeProfile) {
	var first, second *ChronotypeProfile
	better := func(x, y *ChronotypeProfile) bool {
		if y == nil {
			return true
		}
		if x.Messages != y.Messages {
			return x.Messages > y.Messages
		}
		return x.Person < y.Person
	}
	for _, p := range profiles {
		if better(p, first) {
			first, second = p, first
		} else if better(p, second) {
			second = p
		}
	}
	return first, second
}
