// Package recognizer finds the longest unit designator label at the start of
// a byte buffer.
//
// A label table is compiled into a Procedure. Every Procedure answers the
// same question as walking the ordered table and returning the first entry
// whose bytes prefix the input; they differ only in how they get there.
// Procedures are immutable and safe for concurrent use.
package recognizer

import (
	"fmt"
	"strings"

	"github.com/kittclouds/unitlabel/pkg/label"
	"github.com/kittclouds/unitlabel/pkg/unit"
)

// Result is a recognized label. Consumed counts bytes, not characters.
type Result struct {
	Unit     unit.Unit
	Consumed int
}

// Procedure resolves the longest label prefixing haystack.
// A miss is reported with ok == false and is not an error.
type Procedure interface {
	Find(haystack []byte) (res Result, ok bool)
}

// Strategy selects how a Procedure is built.
type Strategy int

const (
	StrategyTrie Strategy = iota
	StrategyChain
	StrategyFST
	StrategyAhoCorasick
)

func (s Strategy) String() string {
	names := []string{"trie", "chain", "fst", "aho-corasick"}
	if int(s) >= 0 && int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy parses a strategy name as printed by String.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "trie", "":
		return StrategyTrie, nil
	case "chain":
		return StrategyChain, nil
	case "fst":
		return StrategyFST, nil
	case "aho-corasick", "ac":
		return StrategyAhoCorasick, nil
	default:
		return 0, fmt.Errorf("recognizer: unknown strategy %q", s)
	}
}

// Build compiles an ordered table with the given strategy.
func Build(o label.Ordered, s Strategy) (Procedure, error) {
	switch s {
	case StrategyTrie:
		return NewTrie(o), nil
	case StrategyChain:
		return NewChain(o), nil
	case StrategyFST:
		f, err := NewFST(o)
		if err != nil {
			return nil, err
		}
		return f, nil
	case StrategyAhoCorasick:
		return NewAhoCorasick(o), nil
	default:
		return nil, fmt.Errorf("recognizer: unknown strategy %v", s)
	}
}
