// Package label holds the dictionary of unit designator labels and orders it
// so that longer labels are always tried before their prefixes.
package label

import (
	"github.com/kittclouds/unitlabel/pkg/unit"
)

// Entry maps one designator label to the unit it names.
// Label is compared byte for byte; non-ASCII labels are raw UTF-8.
type Entry struct {
	Label string
	Unit  unit.Unit
}

// Len returns the label length in bytes.
func (e Entry) Len() int {
	return len(e.Label)
}

// Table is an unordered set of entries. Several labels may share a unit,
// but each label must appear once.
type Table []Entry

// Units returns the distinct units named by the table, in table order.
func (t Table) Units() []unit.Unit {
	seen := make(map[unit.Unit]bool, len(t))
	var out []unit.Unit
	for _, e := range t {
		if !seen[e.Unit] {
			seen[e.Unit] = true
			out = append(out, e.Unit)
		}
	}
	return out
}

var defaultTable = Table{
	{"years", unit.Year},
	{"year", unit.Year},
	{"yrs", unit.Year},
	{"yr", unit.Year},
	{"y", unit.Year},

	{"months", unit.Month},
	{"month", unit.Month},
	{"mos", unit.Month},
	{"mo", unit.Month},

	{"weeks", unit.Week},
	{"week", unit.Week},
	{"wks", unit.Week},
	{"wk", unit.Week},
	{"w", unit.Week},

	{"days", unit.Day},
	{"day", unit.Day},
	{"d", unit.Day},

	{"hours", unit.Hour},
	{"hour", unit.Hour},
	{"hrs", unit.Hour},
	{"hr", unit.Hour},
	{"h", unit.Hour},

	{"minutes", unit.Minute},
	{"minute", unit.Minute},
	{"mins", unit.Minute},
	{"min", unit.Minute},
	{"m", unit.Minute},

	{"seconds", unit.Second},
	{"second", unit.Second},
	{"secs", unit.Second},
	{"sec", unit.Second},
	{"s", unit.Second},

	{"milliseconds", unit.Millisecond},
	{"millisecond", unit.Millisecond},
	{"millis", unit.Millisecond},
	{"milli", unit.Millisecond},
	{"msecs", unit.Millisecond},
	{"msec", unit.Millisecond},
	{"ms", unit.Millisecond},

	{"microseconds", unit.Microsecond},
	{"microsecond", unit.Microsecond},
	{"micros", unit.Microsecond},
	{"micro", unit.Microsecond},
	{"usecs", unit.Microsecond},
	{"usec", unit.Microsecond},
	{"µsecs", unit.Microsecond},
	{"µsec", unit.Microsecond},
	{"us", unit.Microsecond},
	{"µs", unit.Microsecond},

	{"nanoseconds", unit.Nanosecond},
	{"nanosecond", unit.Nanosecond},
	{"nanos", unit.Nanosecond},
	{"nano", unit.Nanosecond},
	{"nsecs", unit.Nanosecond},
	{"nsec", unit.Nanosecond},
	{"ns", unit.Nanosecond},
}

// Default returns a copy of the built-in label table.
func Default() Table {
	out := make(Table, len(defaultTable))
	copy(out, defaultTable)
	return out
}
