package domain

import (
	"strings"
	"time"
)

// DayOfWeek is the weekday a class or course runs on
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// DaysOfWeek lists all valid days in calendar order starting from Monday
var DaysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// IsValid returns true if d is one of the seven weekday names
func (d DayOfWeek) IsValid() bool {
	for _, day := range DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ParseDayOfWeek parses a weekday name case-insensitively
func ParseDayOfWeek(s string) (DayOfWeek, bool) {
	s = strings.TrimSpace(s)
	for _, day := range DaysOfWeek {
		if strings.EqualFold(s, string(day)) {
			return day, true
		}
	}
	return "", false
}

// DayOfWeekFromTime converts time.Weekday to DayOfWeek
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// YogaClass is a single scheduled session of a course. Read-only catalog item.
type YogaClass struct {
	ID          string
	Comments    string
	CourseID    string
	Date        time.Time // date only, see DateFormat
	TeacherName string
	DayOfWeek   DayOfWeek
}

// DateString returns the class date in DateFormat
func (c *YogaClass) DateString() string {
	return c.Date.Format(DateFormat)
}
