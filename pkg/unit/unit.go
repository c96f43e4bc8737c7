// Package unit defines the calendar and clock units a designator label can name.
package unit

import (
	"strconv"
	"strings"
	"time"
)

// Unit is a span of time named by a designator label.
// The zero value is not a valid unit.
type Unit int

const (
	Nanosecond Unit = iota + 1
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

var names = [...]string{
	Nanosecond:  "Nanosecond",
	Microsecond: "Microsecond",
	Millisecond: "Millisecond",
	Second:      "Second",
	Minute:      "Minute",
	Hour:        "Hour",
	Day:         "Day",
	Week:        "Week",
	Month:       "Month",
	Year:        "Year",
}

// All returns every unit, smallest first.
func All() []Unit {
	return []Unit{
		Nanosecond, Microsecond, Millisecond, Second, Minute,
		Hour, Day, Week, Month, Year,
	}
}

// IsValid reports whether u is one of the declared units.
func (u Unit) IsValid() bool {
	return u >= Nanosecond && u <= Year
}

// String returns the identifier of the constant, e.g. "Year".
func (u Unit) String() string {
	if !u.IsValid() {
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
	return names[u]
}

// ParseUnit parses a unit identifier, ignoring case.
func ParseUnit(s string) (Unit, bool) {
	for _, u := range All() {
		if strings.EqualFold(s, names[u]) {
			return u, true
		}
	}
	return 0, false
}

// Duration returns the nominal length of a fixed-length unit.
// Month and Year vary with the calendar and report false.
func (u Unit) Duration() (time.Duration, bool) {
	switch u {
	case Nanosecond:
		return time.Nanosecond, true
	case Microsecond:
		return time.Microsecond, true
	case Millisecond:
		return time.Millisecond, true
	case Second:
		return time.Second, true
	case Minute:
		return time.Minute, true
	case Hour:
		return time.Hour, true
	case Day:
		return 24 * time.Hour, true
	case Week:
		return 7 * 24 * time.Hour, true
	default:
		return 0, false
	}
}
