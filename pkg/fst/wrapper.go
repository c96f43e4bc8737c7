// Package fst wraps vellum finite state transducers keyed by raw bytes.
package fst

import (
	"bytes"
	"errors"
	"sort"

	"github.com/blevesearch/vellum"
)

var ErrDuplicateKey = errors.New("fst: duplicate key")

// IndexBuilder helps build an FST index
type IndexBuilder struct {
	builder *vellum.Builder
	buffer  *bytes.Buffer
}

// NewIndexBuilder creates a new in-memory FST builder
func NewIndexBuilder() (*IndexBuilder, error) {
	buf := &bytes.Buffer{}
	b, err := vellum.New(buf, nil)
	if err != nil {
		return nil, err
	}
	return &IndexBuilder{
		builder: b,
		buffer:  buf,
	}, nil
}

// Insert adds a key-value pair. Keys MUST be sorted.
func (ib *IndexBuilder) Insert(key []byte, val uint64) error {
	return ib.builder.Insert(key, val)
}

// Finish closes the builder and returns the FST bytes
func (ib *IndexBuilder) Finish() ([]byte, error) {
	if err := ib.builder.Close(); err != nil {
		return nil, err
	}
	return ib.buffer.Bytes(), nil
}

// KeyValue is one key and its output value.
type KeyValue struct {
	Key []byte
	Val uint64
}

// BuildSorted sorts pairs by key before insertion. Keys must be distinct.
func BuildSorted(pairs []KeyValue) ([]byte, error) {
	sorted := make([]KeyValue, len(pairs))
	copy(sorted, pairs)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})

	ib, err := NewIndexBuilder()
	if err != nil {
		return nil, err
	}

	for i, kv := range sorted {
		if i > 0 && bytes.Equal(sorted[i-1].Key, kv.Key) {
			return nil, ErrDuplicateKey
		}
		if err := ib.Insert(kv.Key, kv.Val); err != nil {
			return nil, err
		}
	}

	return ib.Finish()
}

// IndexReader wraps a read-only FST
type IndexReader struct {
	fst *vellum.FST
}

// OpenIndex opens an FST from bytes
func OpenIndex(data []byte) (*IndexReader, error) {
	f, err := vellum.Load(data)
	if err != nil {
		return nil, err
	}
	return &IndexReader{fst: f}, nil
}

// Len returns the number of keys in the FST
func (ir *IndexReader) Len() int {
	return ir.fst.Len()
}

// Get returns the value for a key
func (ir *IndexReader) Get(key []byte) (uint64, bool, error) {
	return ir.fst.Get(key)
}

// LongestPrefix walks haystack through the transducer and returns the value
// of the longest non-empty key that prefixes it, and that key's length.
func (ir *IndexReader) LongestPrefix(haystack []byte) (uint64, int, bool) {
	var (
		addr  = ir.fst.Start()
		sum   uint64
		val   uint64
		n     int
		found bool
	)

	for i, b := range haystack {
		next, out := ir.fst.AcceptWithVal(addr, b)
		if !ir.fst.CanMatch(next) {
			break
		}
		sum += out
		addr = next

		if final, fout := ir.fst.IsMatchWithVal(addr); final {
			val, n, found = sum+fout, i+1, true
		}
	}

	return val, n, found
}

// Close cleans up resources
func (ir *IndexReader) Close() error {
	return ir.fst.Close()
}
