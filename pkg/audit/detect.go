package audit

import (
	"sort"
	"time"
)

// Duplicate is a calendar date that appeared Count times among the
// observed entries.
type Duplicate struct {
	Date  time.Time
	Count int
}

// MissingDates returns the dates of expected, minus exceptions, that do
// not appear among the observed dates. Duplicates in observed collapse;
// the result keeps the ascending order of expected. A date listed in
// exceptions is never reported, even when it is genuinely absent.
func MissingDates(expected, exceptions, observed []time.Time) []time.Time {
	candidates := FilterExceptions(expected, exceptions)

	seen := make(map[time.Time]struct{}, len(observed))
	for _, d := range observed {
		seen[Day(d)] = struct{}{}
	}

	var missing []time.Time
	for _, d := range candidates {
		if _, ok := seen[Day(d)]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}

// DuplicateDates groups the observed dates and returns every date that
// occurred at least threshold times, ascending by date. The output order
// is deterministic for any input order. A threshold of 1 flags every
// distinct date; callers wanting meaningful duplicate detection validate
// threshold >= 2 upstream.
func DuplicateDates(observed []time.Time, threshold int) []Duplicate {
	counts := make(map[time.Time]int, len(observed))
	for _, d := range observed {
		counts[Day(d)]++
	}

	var dupes []Duplicate
	for d, n := range counts {
		if n >= threshold {
			dupes = append(dupes, Duplicate{Date: d, Count: n})
		}
	}

	sort.Slice(dupes, func(i, j int) bool {
		return dupes[i].Date.Before(dupes[j].Date)
	})
	return dupes
}
