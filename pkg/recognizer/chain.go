package recognizer

import (
	"github.com/kittclouds/unitlabel/pkg/label"
)

// Chain tests each label in match order and returns the first that prefixes
// the input. It is the reference the other procedures are checked against.
type Chain struct {
	entries []label.Entry
}

// NewChain builds a branch chain over o.
func NewChain(o label.Ordered) *Chain {
	return &Chain{entries: o.Entries()}
}

func (c *Chain) Find(haystack []byte) (Result, bool) {
	for _, e := range c.entries {
		n := len(e.Label)
		if len(haystack) >= n && string(haystack[:n]) == e.Label {
			return Result{Unit: e.Unit, Consumed: n}, true
		}
	}
	return Result{}, false
}
