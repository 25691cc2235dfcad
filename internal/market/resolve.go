package market

import "time"

// PriorQuote returns the most recent stored price for a label taken at
// or before cutoff. ok reports whether one exists.
type PriorQuote func(label string, cutoff time.Time) (price float64, takenAt time.Time, ok bool)

// Resolve turns fetch results into table rows.
//
// Live quotes missing a native 24h change get one computed against a
// stored price at least minChangeAge old, so the figure approximates
// a daily move instead of comparing to minutes-old data. Failed
// indicators fall back to their last stored price as a stale row, or
// an unavailable row when no history exists. prior may be nil when no
// history backend is configured.
func Resolve(results []Result, prior PriorQuote, now time.Time, minChangeAge time.Duration) []Row {
	rows := make([]Row, 0, len(results))

	for _, res := range results {
		row := Row{
			Label:  res.Indicator.Label,
			Source: res.Indicator.Provider,
		}

		switch {
		case res.Err == nil:
			row.Price = res.Quote.Price
			row.Change = res.Quote.Change24h
			row.Source = res.Quote.Source
			row.Status = StatusLive
			row.AsOf = res.Quote.FetchedAt

			if row.Change == nil && prior != nil {
				if prev, _, ok := prior(row.Label, now.Add(-minChangeAge)); ok && prev > 0 {
					change := (row.Price - prev) / prev * 100
					row.Change = &change
				}
			}

		case prior != nil:
			if prev, at, ok := prior(row.Label, now); ok {
				row.Price = prev
				row.Status = StatusStale
				row.AsOf = at
			} else {
				row.Status = StatusMissing
			}

		default:
			row.Status = StatusMissing
		}

		rows = append(rows, row)
	}

	return rows
}
