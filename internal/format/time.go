// Package format renders times and durations for terminal output.
package format

import (
	"time"
)

// Clock settings accepted by the clock configuration key.
const (
	Clock24 = "24h"
	Clock12 = "12h"
)

// Time formats the time of day with seconds.
// Example output: "15:04:05" or "3:04:05 PM"
func Time(t time.Time, clock string) string {
	if clock == Clock12 {
		return t.Format("3:04:05 PM")
	}
	return t.Format("15:04:05")
}

// DateTime formats an ISO date followed by Time.
// Example output: "2024-01-23 15:04:05"
func DateTime(t time.Time, clock string) string {
	return t.Format("2006-01-02") + " " + Time(t, clock)
}

// Duration rounds d for display: milliseconds below a second, then
// hundredths of a second, then whole seconds past a minute.
func Duration(d time.Duration) string {
	switch {
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	case d < time.Minute:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(time.Second).String()
	}
}
