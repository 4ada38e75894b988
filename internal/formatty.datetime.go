package internal

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Calendar holds the day and month names used by the temporal directives.
type Calendar struct {
	Days   [7]string  // starting with Sunday
	Months [12]string // starting with January
}

// DefaultCalendar uses English names
var DefaultCalendar = Calendar{
	Days: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
}

// Composite directive expansions (C locale)
const (
	timeLayoutDateTime = "%a %b %e %H:%M:%S %Y"
	timeLayoutDate     = "%m/%d/%y"
	timeLayoutTime     = "%H:%M:%S"
	timeLayoutISODate  = "%Y-%m-%d"
	timeLayoutClock12  = "%I:%M:%S %p"
	timeLayoutClock    = "%H:%M"
	abbrevLength       = 3
	meridianAM         = "AM"
	meridianPM         = "PM"
)

// FormatTime renders t according to a strftime-style spec. Characters outside
// directives are copied, an unknown directive yields its own character and a
// trailing lone `%` is dropped.
func FormatTime(t time.Time, spec string, cal Calendar) string {
	var sb strings.Builder
	for i := 0; i < len(spec); {
		r, size := utf8.DecodeRuneInString(spec[i:])
		i += size
		if r != CharPercent {
			sb.WriteRune(r)
			continue
		}
		if i >= len(spec) {
			break
		}
		d, size := utf8.DecodeRuneInString(spec[i:])
		i += size
		sb.WriteString(timeDirective(t, d, cal))
	}
	return sb.String()
}

func timeDirective(t time.Time, d rune, cal Calendar) string {
	switch d {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case '%':
		return "%"

	// Year
	case 'Y':
		return strconv.Itoa(t.Year())
	case 'y':
		return padInt(t.Year()%100, 2, CharZero)
	case 'C':
		return padInt(t.Year()/100, 2, CharZero)
	case 'G':
		year, _ := t.ISOWeek()
		return strconv.Itoa(year)
	case 'g':
		year, _ := t.ISOWeek()
		return padInt(year%100, 2, CharZero)

	// Month
	case 'b', 'h':
		return abbreviate(cal.Months[t.Month()-1])
	case 'B':
		return cal.Months[t.Month()-1]
	case 'm':
		return padInt(int(t.Month()), 2, CharZero)

	// Week
	case 'U':
		return padInt(WeekOfYear(t, false), 2, CharZero)
	case 'W':
		return padInt(WeekOfYear(t, true), 2, CharZero)
	case 'V':
		_, week := t.ISOWeek()
		return padInt(week, 2, CharZero)

	// Day of the year / month
	case 'j':
		return padInt(t.YearDay(), 3, CharZero)
	case 'd':
		return padInt(t.Day(), 2, CharZero)
	case 'e':
		return padInt(t.Day(), 2, CharSpace)

	// Day of the week
	case 'a':
		return abbreviate(cal.Days[t.Weekday()])
	case 'A':
		return cal.Days[t.Weekday()]
	case 'u':
		return strconv.Itoa(DayOfWeek(t, true))
	case 'w':
		return strconv.Itoa(DayOfWeek(t, false))

	// Hour, minute, second
	case 'H':
		return padInt(t.Hour(), 2, CharZero)
	case 'k':
		return padInt(t.Hour(), 2, CharSpace)
	case 'I':
		return padInt(hour12(t), 2, CharZero)
	case 'l':
		return padInt(hour12(t), 2, CharSpace)
	case 'M':
		return padInt(t.Minute(), 2, CharZero)
	case 'S':
		return padInt(t.Second(), 2, CharZero)
	case 'p':
		if t.Hour() > 11 {
			return meridianPM
		}
		return meridianAM
	case 's':
		return strconv.FormatInt(t.Unix(), 10)

	// Composites
	case 'c':
		return FormatTime(t, timeLayoutDateTime, cal)
	case 'D', 'x':
		return FormatTime(t, timeLayoutDate, cal)
	case 'F':
		return FormatTime(t, timeLayoutISODate, cal)
	case 'r':
		return FormatTime(t, timeLayoutClock12, cal)
	case 'R':
		return FormatTime(t, timeLayoutClock, cal)
	case 'T', 'X':
		return FormatTime(t, timeLayoutTime, cal)

	// Zone
	case 'z':
		_, offset := t.Zone()
		sign := string(SignAlways)
		if offset < 0 {
			sign = string(SignNegative)
			offset = -offset
		}
		minutes := offset / 60
		return sign + padInt(minutes/60*100+minutes%60, 4, CharZero)
	case 'Z':
		name, _ := t.Zone()
		return name
	}

	return string(d)
}

// WeekOfYear numbers the weeks of t's year. The first Sunday (or Monday when
// startsOnMonday) starts week 1; days before it fall in week 0.
func WeekOfYear(t time.Time, startsOnMonday bool) int {
	yday := t.YearDay() - 1
	wday := DayOfWeek(t, false)
	if startsOnMonday {
		wday = (wday + 6) % 7
	}
	return (yday + 7 - wday) / 7
}

// DayOfWeek returns 0..6 from Sunday, or 1..7 from Monday when iso is set.
func DayOfWeek(t time.Time, iso bool) int {
	day := int(t.Weekday())
	if iso {
		return (day+6)%7 + 1
	}
	return day
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

func abbreviate(name string) string {
	return truncateRunes(name, abbrevLength)
}

// padInt right-aligns a non-negative integer in width using the text formatter
func padInt(v, width int, fill rune) string {
	return FormatText(strconv.Itoa(v), Spec{Fill: fill, HasFill: true, Align: AlignRight, Width: width})
}
