// utils/dates.go
package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock converts a zero-padded "HH:MM" clock to minutes since
// midnight. The whole string must match; trailing junk is rejected.
func ParseClock(clock string) (int, error) {
	m := clockRegex.FindStringSubmatch(clock)
	if m == nil {
		return 0, fmt.Errorf("invalid time %q", clock)
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins, nil
}

// FormatClock converts minutes since midnight to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// WeekdayKey returns the lowercase weekday name used as the business
// hours map key ("monday" ... "sunday").
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}
