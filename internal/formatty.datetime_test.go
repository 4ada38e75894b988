package internal

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	// Tuesday, day 65 of a leap year
	ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)

	tests := []struct {
		spec     string
		expected string
	}{
		{spec: "%Y", expected: "2024"},
		{spec: "%y", expected: "24"},
		{spec: "%C", expected: "20"},
		{spec: "%m", expected: "03"},
		{spec: "%d", expected: "05"},
		{spec: "%e", expected: " 5"},
		{spec: "%j", expected: "065"},
		{spec: "%H", expected: "14"},
		{spec: "%k", expected: "14"},
		{spec: "%I", expected: "02"},
		{spec: "%l", expected: " 2"},
		{spec: "%M", expected: "07"},
		{spec: "%S", expected: "09"},
		{spec: "%p", expected: "PM"},
		{spec: "%a", expected: "Tue"},
		{spec: "%A", expected: "Tuesday"},
		{spec: "%b", expected: "Mar"},
		{spec: "%h", expected: "Mar"},
		{spec: "%B", expected: "March"},
		{spec: "%u", expected: "2"},
		{spec: "%w", expected: "2"},
		{spec: "%U", expected: "09"},
		{spec: "%W", expected: "10"},
		{spec: "%V", expected: "10"},
		{spec: "%G", expected: "2024"},
		{spec: "%g", expected: "24"},
		{spec: "%F", expected: "2024-03-05"},
		{spec: "%D", expected: "03/05/24"},
		{spec: "%x", expected: "03/05/24"},
		{spec: "%T", expected: "14:07:09"},
		{spec: "%X", expected: "14:07:09"},
		{spec: "%R", expected: "14:07"},
		{spec: "%r", expected: "02:07:09 PM"},
		{spec: "%c", expected: "Tue Mar  5 14:07:09 2024"},
		{spec: "%z", expected: "+0000"},
		{spec: "%Z", expected: "UTC"},
		{spec: "%s", expected: strconv.FormatInt(ts.Unix(), 10)},
		{spec: "%%", expected: "%"},
		{spec: "%n%t", expected: "\n\t"},
		{spec: "%q", expected: "q"},
		{spec: "at %H:%M", expected: "at 14:07"},
		{spec: "trailing %", expected: "trailing "},
		{spec: "", expected: ""},
		{spec: "日付 %Y", expected: "日付 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatTime(ts, tt.spec, DefaultCalendar))
		})
	}
}

func TestFormatTime_EdgeDates(t *testing.T) {
	t.Run("ISO year differs from calendar year", func(t *testing.T) {
		// Friday, 1 January 2021 belongs to week 53 of 2020
		ts := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2020-W53", FormatTime(ts, "%G-W%V", DefaultCalendar))
		assert.Equal(t, "00 00", FormatTime(ts, "%U %W", DefaultCalendar))
	})

	t.Run("midnight is twelve AM", func(t *testing.T) {
		ts := time.Date(2024, time.March, 5, 0, 30, 0, 0, time.UTC)
		assert.Equal(t, "12:30 AM", FormatTime(ts, "%I:%M %p", DefaultCalendar))
	})

	t.Run("noon is twelve PM", func(t *testing.T) {
		ts := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "12 PM", FormatTime(ts, "%I %p", DefaultCalendar))
	})

	t.Run("negative zone offset", func(t *testing.T) {
		zone := time.FixedZone("NST", -(3*3600 + 30*60))
		ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, zone)
		assert.Equal(t, "-0330 NST", FormatTime(ts, "%z %Z", DefaultCalendar))
	})

	t.Run("custom calendar", func(t *testing.T) {
		cal := Calendar{
			Days:   [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
			Months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		}
		ts := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
		assert.Equal(t, "Dienstag,  5. März (Die/Mär)", FormatTime(ts, "%A, %e. %B (%a/%b)", cal))
	})
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		sunday int
		monday int
	}{
		// 2023-01-01 is a Sunday
		{name: "first sunday", date: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), sunday: 1, monday: 0},
		{name: "following monday", date: time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC), sunday: 1, monday: 1},
		{name: "last day", date: time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), sunday: 53, monday: 52},
		// 2024-01-01 is a Monday
		{name: "leap year start", date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), sunday: 0, monday: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sunday, WeekOfYear(tt.date, false))
			assert.Equal(t, tt.monday, WeekOfYear(tt.date, true))
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	sunday := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DayOfWeek(sunday, false))
	assert.Equal(t, 7, DayOfWeek(sunday, true))

	monday := sunday.AddDate(0, 0, 1)
	assert.Equal(t, 1, DayOfWeek(monday, false))
	assert.Equal(t, 1, DayOfWeek(monday, true))
}
