package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDay parses a calendar date as a local date. Dashed input is split into
// year/month/day components so "2024-01-03" never shifts a day across a
// timezone boundary the way a generic timestamp parse can. Undashed input
// falls back to a short list of known layouts.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if strings.Contains(s, "-") {
		// Tolerate a trailing time component ("2024-01-03T00:00:00Z").
		if i := strings.IndexByte(s, 'T'); i > 0 {
			s = s[:i]
		}
		parts := strings.Split(s, "-")
		if len(parts) != 3 {
			return time.Time{}, fmt.Errorf("parse date %q: want YYYY-MM-DD", s)
		}
		y, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		d, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return time.Time{}, fmt.Errorf("parse date %q: non-numeric component", s)
		}
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
	}
	for _, layout := range []string{"20060102", "01/02/2006"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Midnight(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("parse date %q: unrecognized format", s)
}

// FormatDay renders a local date back to its YYYY-MM-DD wire form.
func FormatDay(t time.Time) string { return t.Format("2006-01-02") }

// Midnight normalizes a time to 00:00 local on the same calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday beginning the week containing d. A Sunday
// belongs to the week that started six days earlier.
func WeekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7
	return Midnight(d).AddDate(0, 0, -offset)
}

// SundayWeekStart returns the Sunday beginning the week containing d. The
// dashboard's "this week" counter uses Sunday-Saturday windows.
func SundayWeekStart(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, -int(d.Weekday()))
}

func SameWeek(a, b time.Time) bool {
	return WeekStart(a).Equal(WeekStart(b))
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysBetween counts whole calendar days from a to b; both are normalized to
// midnight first. Rounding keeps DST-shortened or -lengthened days at exactly
// one day apart.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(Midnight(b).Sub(Midnight(a)).Hours() / 24))
}
