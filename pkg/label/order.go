package label

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	ErrEmptyLabel     = errors.New("label: empty label")
	ErrInvalidUnit    = errors.New("label: invalid unit")
	ErrDuplicateLabel = errors.New("label: duplicate label")
)

// DuplicateError describes two entries sharing the same label bytes.
type DuplicateError struct {
	Label string
	First Entry
	Again Entry
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("label: duplicate label %s (%s and %s)",
		strconv.Quote(e.Label), e.First.Unit, e.Again.Unit)
}

func (e *DuplicateError) Unwrap() error {
	return ErrDuplicateLabel
}

// Validate checks every entry and reports all problems found, not just the
// first one.
func Validate(t Table) error {
	var errs []error
	seen := make(map[string]Entry, len(t))

	for i, e := range t {
		if e.Label == "" {
			errs = append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyLabel))
			continue
		}
		if !e.Unit.IsValid() {
			errs = append(errs, fmt.Errorf("entry %d (%q): %w", i, e.Label, ErrInvalidUnit))
			continue
		}
		if first, dup := seen[e.Label]; dup {
			errs = append(errs, &DuplicateError{Label: e.Label, First: first, Again: e})
			continue
		}
		seen[e.Label] = e
	}

	return errors.Join(errs...)
}

// Ordered is a validated table sorted so that no entry is preceded by one of
// its own proper prefixes. It is immutable once built.
type Ordered struct {
	entries []Entry
	maxLen  int
}

// Order validates t and sorts a copy of it by byte length descending, then
// by bytes descending. The result does not depend on the order of t.
func Order(t Table) (Ordered, error) {
	if err := Validate(t); err != nil {
		return Ordered{}, err
	}

	entries := make([]Entry, len(t))
	copy(entries, t)
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[j], entries[i])
	})

	maxLen := 0
	if len(entries) > 0 {
		maxLen = entries[0].Len()
	}
	return Ordered{entries: entries, maxLen: maxLen}, nil
}

// MustOrder is like Order but panics on an invalid table.
// It is meant for tables that are fixed at compile time.
func MustOrder(t Table) Ordered {
	o, err := Order(t)
	if err != nil {
		panic(err)
	}
	return o
}

func less(a, b Entry) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	return a.Label < b.Label
}

// Len returns the number of entries.
func (o Ordered) Len() int {
	return len(o.entries)
}

// At returns the i'th entry in match order.
func (o Ordered) At(i int) Entry {
	return o.entries[i]
}

// MaxLen returns the byte length of the longest label.
func (o Ordered) MaxLen() int {
	return o.maxLen
}

// Entries returns a copy of the entries in match order.
func (o Ordered) Entries() []Entry {
	out := make([]Entry, len(o.entries))
	copy(out, o.entries)
	return out
}

// Table returns the entries as a plain table, in match order.
func (o Ordered) Table() Table {
	return Table(o.Entries())
}
