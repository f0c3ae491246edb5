package utils

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bodhi-os/bodhi/internal/constants"
)

// All date arithmetic in this package works on local calendar days. An
// earlier revision derived "today" from UTC, which skewed streaks and
// scores around midnight for anyone east of Greenwich; every caller must
// go through these helpers instead of formatting time.Time directly.

// Today returns today's date string (YYYY-MM-DD) in the local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// TodayWeekday returns today's uppercase weekday label, e.g. "MONDAY".
func TodayWeekday() string {
	return WeekdayLabel(time.Now())
}

// WeekdayLabel returns the uppercase weekday label for t.
func WeekdayLabel(t time.Time) string {
	return strings.ToUpper(t.Weekday().String())
}

// NowStamp returns the current instant as an RFC3339 timestamp.
func NowStamp() string {
	return time.Now().Format(time.RFC3339)
}

// ParseDate parses a date string (YYYY-MM-DD) at local midnight.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ValidDate reports whether dateStr is a well-formed YYYY-MM-DD date.
func ValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// LocalDay reduces an RFC3339 timestamp to the local calendar day it
// falls on.
func LocalDay(stamp string) (string, error) {
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", stamp, err)
	}
	return t.Local().Format(constants.DateFormat), nil
}

// DaysBetween returns the number of whole calendar days from a to b
// (negative when b is earlier). Both arguments are YYYY-MM-DD strings.
func DaysBetween(a, b string) (int, error) {
	ta, err := ParseDate(a)
	if err != nil {
		return 0, err
	}
	tb, err := ParseDate(b)
	if err != nil {
		return 0, err
	}
	// Rounding, not truncation: a DST transition makes the local day 23
	// or 25 hours long, and truncating would count the short day as zero.
	return int(math.Round(tb.Sub(ta).Hours() / 24)), nil
}

// DaysAgo returns the date string N days before today.
func DaysAgo(days int) string {
	return time.Now().AddDate(0, 0, -days).Format(constants.DateFormat)
}

// DaysFromNow returns the date string N days after today.
func DaysFromNow(days int) string {
	return time.Now().AddDate(0, 0, days).Format(constants.DateFormat)
}

// SameMonth reports whether the given date string falls in the same
// local calendar month and year as ref.
func SameMonth(dateStr string, ref time.Time) bool {
	t, err := ParseDate(dateStr)
	if err != nil {
		return false
	}
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
