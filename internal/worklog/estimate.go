package worklog

import "time"

const (
	// DefaultEstimate is credited to a commit with no usable predecessor
	DefaultEstimate = 30 * time.Minute

	// DefaultSessionGap is the longest gap still counted as the same session
	DefaultSessionGap = 3 * time.Hour
)

// Estimator infers how long the work behind each commit took.
//
// Commits within SessionGap of the previous commit are credited with the
// elapsed time since that commit. The first commit of the history, and any
// commit following a longer or negative gap, is credited with Default.
type Estimator struct {
	Default    time.Duration
	SessionGap time.Duration

	// LegacyFloor also credits the second commit of the history with
	// Default instead of its gap, as the original Ruby tool did.
	LegacyFloor bool
}

// DefaultEstimator returns the estimator with the stock 30 minute / 3 hour rules
func DefaultEstimator() Estimator {
	return Estimator{
		Default:    DefaultEstimate,
		SessionGap: DefaultSessionGap,
	}
}

// Minutes returns the estimate for timestamps[index] in minutes.
// timestamps must be in chronological order.
func (e Estimator) Minutes(timestamps []time.Time, index int) float64 {
	floor := e.Default.Seconds()

	first := 0
	if e.LegacyFloor {
		first = 1
	}
	if index <= first {
		return floor / 60.0
	}

	gap := timestamps[index].Sub(timestamps[index-1]).Seconds()
	if gap < 0 || gap > e.SessionGap.Seconds() {
		// negative gaps are usually merges
		gap = floor
	}
	return gap / 60.0
}

// EstimateMinutes scores timestamps[index] with the default estimator
func EstimateMinutes(timestamps []time.Time, index int) float64 {
	return DefaultEstimator().Minutes(timestamps, index)
}
