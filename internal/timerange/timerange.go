// Package timerange maps the dashboard's relative date-range selectors to
// concrete absolute start/end instants. Resolution is a pure function of the
// selector and an injected "now", which keeps it independently testable.
package timerange

import (
	"errors"
	"fmt"
	"time"
)

// Selector identifies a reporting window relative to the current time. The
// string values are the codes the dashboard sends as query parameters.
type Selector string

const (
	Today       Selector = "today"
	WeekToDate  Selector = "wtd"
	MonthToDate Selector = "mtd"
	Last7Days   Selector = "last_7_days"
	Last30Days  Selector = "last_30_days"
	Custom      Selector = "custom"
)

// ErrInvalidRange is returned for a custom range whose start is after its end.
var ErrInvalidRange = errors.New("invalid range: start after end")

// ErrExplicitBoundsRequired is returned when Resolve is called with Custom;
// custom windows carry their own bounds and go through ResolveCustom.
var ErrExplicitBoundsRequired = errors.New("custom selector requires explicit start and end")

// Range is an absolute reporting window. Start <= End always holds for
// ranges produced by this package.
type Range struct {
	Start time.Time
	End   time.Time
}

// Parse validates a selector code from the outside world.
func Parse(s string) (Selector, error) {
	switch sel := Selector(s); sel {
	case Today, WeekToDate, MonthToDate, Last7Days, Last30Days, Custom:
		return sel, nil
	}
	return "", fmt.Errorf("unknown date range selector %q", s)
}

// Resolve turns a relative selector into an absolute window ending at now.
// Calendar-aligned selectors (Today, WeekToDate, MonthToDate) truncate to
// midnight in now's location; Last7Days and Last30Days subtract an exact
// duration. Weeks start on Sunday.
func Resolve(sel Selector, now time.Time) (Range, error) {
	switch sel {
	case Today:
		return Range{Start: midnight(now), End: now}, nil
	case WeekToDate:
		return Range{Start: midnight(now).AddDate(0, 0, -int(now.Weekday())), End: now}, nil
	case MonthToDate:
		y, m, _ := now.Date()
		return Range{Start: time.Date(y, m, 1, 0, 0, 0, 0, now.Location()), End: now}, nil
	case Last7Days:
		return Range{Start: now.Add(-7 * 24 * time.Hour), End: now}, nil
	case Last30Days:
		return Range{Start: now.Add(-30 * 24 * time.Hour), End: now}, nil
	case Custom:
		return Range{}, ErrExplicitBoundsRequired
	}
	return Range{}, fmt.Errorf("unknown date range selector %q", string(sel))
}

// ResolveCustom passes caller-supplied bounds through unchanged after
// validating their order.
func ResolveCustom(start, end time.Time) (Range, error) {
	if start.After(end) {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// TimeframeKey maps a selector to the upstream reporting API's timeframe
// key. Custom has no key (the caller must send explicit bounds instead), so
// ok is false.
func TimeframeKey(sel Selector) (key string, ok bool) {
	switch sel {
	case Today:
		return "today", true
	case WeekToDate:
		return "this_week", true
	case MonthToDate:
		return "this_month", true
	case Last7Days:
		return "last_7_days", true
	case Last30Days:
		return "last_30_days", true
	}
	return "", false
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
