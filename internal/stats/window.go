package stats

import "time"

// Window is one contributionsCollection query range.
type Window struct {
	From time.Time
	To   time.Time
}

// Split divides [since, until) into consecutive windows of at most
// chunkDays each. The final window is clamped to until. Returns nil
// when since is not before until.
func Split(since, until time.Time, chunkDays int) []Window {
	if chunkDays <= 0 || !since.Before(until) {
		return nil
	}

	step := time.Duration(chunkDays) * 24 * time.Hour

	var windows []Window
	for start := since; start.Before(until); {
		end := start.Add(step)
		if end.After(until) {
			end = until
		}
		windows = append(windows, Window{From: start, To: end})
		start = end
	}
	return windows
}
