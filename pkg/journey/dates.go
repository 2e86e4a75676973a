package journey

import (
	"time"

	"github.com/railscout/railscout/pkg/util"
	"golang.org/x/exp/slices"
)

// CandidateDates expands the inclusive [since, until] range into an ascending
// list of outbound dates. When weekdays is non-empty only dates falling on
// one of them are kept. An empty range yields an empty list, not an error.
func CandidateDates(since time.Time, until time.Time, weekdays []time.Weekday) []time.Time {
	var dates []time.Time

	until = util.TruncateToDate(until)
	for date := util.TruncateToDate(since); !date.After(until); date = date.AddDate(0, 0, 1) {
		if len(weekdays) == 0 || slices.Contains(weekdays, date.Weekday()) {
			dates = append(dates, date)
		}
	}

	return dates
}

// InboundDate derives the return date for an outbound date. AddDate handles
// month and year boundaries.
func InboundDate(outbound time.Time, tripLengthDays int) time.Time {
	return outbound.AddDate(0, 0, tripLengthDays)
}
