package recognizer

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/unitlabel/pkg/label"
	"github.com/kittclouds/unitlabel/pkg/unit"
)

// AhoCorasick runs a leftmost-longest automaton over the start of the input.
// Only a match beginning at offset zero counts; the input is clipped to the
// longest label so a miss never scans further than that.
type AhoCorasick struct {
	ac     ahocorasick.AhoCorasick
	units  []unit.Unit // pattern index -> unit
	maxLen int
}

// NewAhoCorasick builds an automaton over o.
func NewAhoCorasick(o label.Ordered) *AhoCorasick {
	entries := o.Entries()
	patterns := make([]string, len(entries))
	units := make([]unit.Unit, len(entries))
	for i, e := range entries {
		patterns[i] = e.Label
		units[i] = e.Unit
	}

	a := &AhoCorasick{units: units, maxLen: o.MaxLen()}
	if len(patterns) == 0 {
		return a
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: false,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
		DFA:                  true,
	})

	a.ac = builder.Build(patterns)
	return a
}

func (a *AhoCorasick) Find(haystack []byte) (Result, bool) {
	if len(haystack) == 0 || a.maxLen == 0 {
		return Result{}, false
	}
	if len(haystack) > a.maxLen {
		haystack = haystack[:a.maxLen]
	}

	matches := a.ac.FindAll(string(haystack))
	if len(matches) == 0 || matches[0].Start() != 0 {
		return Result{}, false
	}
	m := matches[0]
	return Result{Unit: a.units[m.Pattern()], Consumed: m.End() - m.Start()}, true
}
