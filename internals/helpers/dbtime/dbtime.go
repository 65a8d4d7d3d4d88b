// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"math"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Today is the local calendar date at midnight.
func Today() time.Time {
	return DateOf(time.Now())
}

func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ParseDate expects "YYYY-MM-DD"; input is validated before it reaches here,
// so a parse failure yields the zero date.
func ParseDate(s string) datatypes.Date {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return datatypes.Date{}
	}
	return datatypes.Date(t)
}

func ParseDatePtr(s *string) *datatypes.Date {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	d := ParseDate(*s)
	return &d
}

// ParseClock accepts "HH:MM" or "HH:MM:SS".
func ParseClock(s string) datatypes.Time {
	s = strings.TrimSpace(s)
	layout := ClockLayout
	if strings.Count(s, ":") == 2 {
		layout = "15:04:05"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return datatypes.Time(0)
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
}

func ParseClockPtr(s *string) *datatypes.Time {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	c := ParseClock(*s)
	return &c
}

func T(d datatypes.Date) time.Time { return DateOf(time.Time(d)) }

func Before(a, b datatypes.Date) bool { return T(a).Before(T(b)) }

// DaysInclusive counts calendar days from start to end, both included.
func DaysInclusive(start, end datatypes.Date) int {
	return days(T(end).Sub(T(start))) + 1
}

// DaysLate is how many whole days at lies after due; never negative.
func DaysLate(due datatypes.Date, at time.Time) int {
	n := days(DateOf(at).Sub(T(due)))
	if n < 0 {
		return 0
	}
	return n
}

func days(d time.Duration) int { return int(math.Round(d.Hours() / 24)) }

func Format(d datatypes.Date) string { return time.Time(d).Format(DateLayout) }
