// Package window maps record timestamps onto discrete time buckets.
package window

import (
	"time"

	"trendtracker/internal/domain/trend"
)

// Assign maps a timestamp to its window for the given granularity. It is a
// pure function: the same timestamp always yields the same WindowKey, with
// no locale dependence. Week buckets follow ISO-8601 (Monday start, the week
// containing the year's first Thursday is week 1).
func Assign(ts time.Time, g trend.Granularity) trend.WindowKey {
	ts = ts.UTC()
	var start time.Time
	switch g {
	case trend.GranularityWeek:
		start = isoWeekStart(ts)
	case trend.GranularityMonth:
		start = time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		start = time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	}
	return trend.WindowKey{Granularity: g, Start: start}
}

// isoWeekStart returns midnight UTC on the Monday of the timestamp's ISO week.
func isoWeekStart(ts time.Time) time.Time {
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	back := (int(day.Weekday()) + 6) % 7 // days since Monday
	return day.AddDate(0, 0, -back)
}
