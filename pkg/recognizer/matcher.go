package recognizer

import (
	"sync"

	"github.com/kittclouds/unitlabel/pkg/label"
)

// Matcher pairs an ordered table with the procedure compiled from it.
type Matcher struct {
	ordered  label.Ordered
	strategy Strategy
	proc     Procedure
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithStrategy picks the procedure used by the Matcher. The default is
// StrategyTrie.
func WithStrategy(s Strategy) Option {
	return func(m *Matcher) {
		m.strategy = s
	}
}

// New orders t and compiles it. Table problems such as duplicate labels are
// returned here and never surface from Find.
func New(t label.Table, opts ...Option) (*Matcher, error) {
	m := &Matcher{strategy: StrategyTrie}
	for _, opt := range opts {
		opt(m)
	}

	o, err := label.Order(t)
	if err != nil {
		return nil, err
	}
	proc, err := Build(o, m.strategy)
	if err != nil {
		return nil, err
	}

	m.ordered = o
	m.proc = proc
	return m, nil
}

// Find returns the longest label at the start of haystack.
func (m *Matcher) Find(haystack []byte) (Result, bool) {
	return m.proc.Find(haystack)
}

// FindString is Find for string input.
func (m *Matcher) FindString(s string) (Result, bool) {
	return m.proc.Find([]byte(s))
}

// Strategy reports which procedure backs m.
func (m *Matcher) Strategy() Strategy {
	return m.strategy
}

// Ordered returns the table m was compiled from, in match order.
func (m *Matcher) Ordered() label.Ordered {
	return m.ordered
}

var (
	defaultOnce    sync.Once
	defaultMatcher *Matcher
)

// Default returns a trie Matcher over the built-in table. It is built on
// first use; concurrent callers all receive the same instance.
func Default() *Matcher {
	defaultOnce.Do(func() {
		m, err := New(label.Default())
		if err != nil {
			panic("recognizer: built-in label table: " + err.Error())
		}
		defaultMatcher = m
	})
	return defaultMatcher
}

// Find returns the longest built-in label at the start of haystack using the
// generated branch chain. It does not allocate.
func Find(haystack []byte) (Result, bool) {
	u, n, ok := findGenerated(haystack)
	if !ok {
		return Result{}, false
	}
	return Result{Unit: u, Consumed: n}, true
}
