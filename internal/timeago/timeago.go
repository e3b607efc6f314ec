// Package timeago converts a past timestamp into a coarse relative-age string.
package timeago

import (
	"fmt"
	"time"
)

// Fixed unit approximations, not calendar-accurate boundaries.
const (
	secondsPerYear   = 31536000
	secondsPerMonth  = 2592000
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

type unit struct {
	seconds int64
	name    string
}

var units = []unit{
	{secondsPerYear, "year"},
	{secondsPerMonth, "month"},
	{secondsPerDay, "day"},
	{secondsPerHour, "hour"},
	{secondsPerMinute, "minute"},
}

// Format returns the relative age of t against time.Now.
func Format(t time.Time) string {
	return FormatAt(t, time.Now())
}

// FormatAt returns the relative age of t against now, using the largest
// applicable unit. Anything under a minute is "just now".
func FormatAt(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())

	for _, u := range units {
		interval := seconds / u.seconds
		if interval >= 1 {
			if interval == 1 {
				return fmt.Sprintf("1 %s ago", u.name)
			}
			return fmt.Sprintf("%d %ss ago", interval, u.name)
		}
	}

	return "just now"
}
