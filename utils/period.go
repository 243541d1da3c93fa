package utils

import "time"

// Reporting periods accepted by the statistics endpoints.
const (
	PeriodMonth = "month"
	PeriodYear  = "year"
	PeriodAll   = "all"
)

// PeriodStart returns the inclusive lower bound of the reporting period
// relative to now. "all" (or anything unrecognized) returns the zero time,
// meaning no bound.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}
