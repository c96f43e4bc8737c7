package recognizer

import (
	"fmt"

	"github.com/kittclouds/unitlabel/pkg/fst"
	"github.com/kittclouds/unitlabel/pkg/label"
	"github.com/kittclouds/unitlabel/pkg/unit"
)

// FST stores labels as keys of a vellum transducer whose outputs are units.
type FST struct {
	index *fst.IndexReader
}

// NewFST builds a transducer over o.
func NewFST(o label.Ordered) (*FST, error) {
	pairs := make([]fst.KeyValue, 0, o.Len())
	for _, e := range o.Entries() {
		pairs = append(pairs, fst.KeyValue{Key: []byte(e.Label), Val: uint64(e.Unit)})
	}

	data, err := fst.BuildSorted(pairs)
	if err != nil {
		return nil, fmt.Errorf("recognizer: build fst: %w", err)
	}
	idx, err := fst.OpenIndex(data)
	if err != nil {
		return nil, fmt.Errorf("recognizer: open fst: %w", err)
	}
	return &FST{index: idx}, nil
}

func (f *FST) Find(haystack []byte) (Result, bool) {
	val, n, ok := f.index.LongestPrefix(haystack)
	if !ok {
		return Result{}, false
	}
	return Result{Unit: unit.Unit(val), Consumed: n}, true
}

// Close releases the transducer.
func (f *FST) Close() error {
	return f.index.Close()
}
