package audit

import "time"

// Day truncates t to its calendar date (midnight UTC). All dates inside
// this package are normalized through Day, so two entries on the same
// calendar day compare equal regardless of their original timestamps.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange returns every calendar date from start through the day before
// now's date, ascending. The range is empty when start is after that
// upper bound.
func DateRange(start, now time.Time) []time.Time {
	end := Day(now).AddDate(0, 0, -1)

	var dates []time.Time
	for d := Day(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// FilterExceptions removes any date present in exceptions from dates,
// preserving order.
func FilterExceptions(dates, exceptions []time.Time) []time.Time {
	if len(exceptions) == 0 {
		return dates
	}

	skip := make(map[time.Time]struct{}, len(exceptions))
	for _, e := range exceptions {
		skip[Day(e)] = struct{}{}
	}

	kept := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if _, ok := skip[Day(d)]; !ok {
			kept = append(kept, d)
		}
	}
	return kept
}
