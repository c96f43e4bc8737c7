package recognizer

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/kittclouds/unitlabel/pkg/label"
	"github.com/kittclouds/unitlabel/pkg/unit"
)

// Trie is a byte-indexed trie flattened into arrays. Each node's outgoing
// edges are contiguous in edges and sorted by byte.
type Trie struct {
	lead  *bitset.BitSet
	nodes []trieNode
	edges []trieEdge
}

type trieNode struct {
	first  int32
	count  int32
	accept unit.Unit // zero when no label ends here
}

type trieEdge struct {
	b    byte
	next int32
}

// scratch node used while inserting
type buildNode struct {
	children map[byte]int
	accept   unit.Unit
}

// NewTrie builds a trie over o.
func NewTrie(o label.Ordered) *Trie {
	tmp := []buildNode{{children: map[byte]int{}}}
	lead := bitset.New(256)

	for _, e := range o.Entries() {
		lead.Set(uint(e.Label[0]))

		cur := 0
		for i := 0; i < len(e.Label); i++ {
			b := e.Label[i]
			next, ok := tmp[cur].children[b]
			if !ok {
				next = len(tmp)
				tmp = append(tmp, buildNode{children: map[byte]int{}})
				tmp[cur].children[b] = next
			}
			cur = next
		}
		tmp[cur].accept = e.Unit
	}

	t := &Trie{
		lead:  lead,
		nodes: make([]trieNode, len(tmp)),
	}
	for id, n := range tmp {
		keys := make([]int, 0, len(n.children))
		for b := range n.children {
			keys = append(keys, int(b))
		}
		sort.Ints(keys)

		t.nodes[id] = trieNode{
			first:  int32(len(t.edges)),
			count:  int32(len(keys)),
			accept: n.accept,
		}
		for _, b := range keys {
			t.edges = append(t.edges, trieEdge{b: byte(b), next: int32(n.children[byte(b)])})
		}
	}
	return t
}

func (t *Trie) child(node int32, b byte) int32 {
	n := t.nodes[node]
	for _, e := range t.edges[n.first : n.first+n.count] {
		if e.b == b {
			return e.next
		}
		if e.b > b {
			break
		}
	}
	return -1
}

// Find walks as deep as the input allows and reports the deepest node on
// the way that ends a label.
func (t *Trie) Find(haystack []byte) (Result, bool) {
	if len(haystack) == 0 || !t.lead.Test(uint(haystack[0])) {
		return Result{}, false
	}

	var (
		node  int32
		best  Result
		found bool
	)
	for i := 0; i < len(haystack); i++ {
		node = t.child(node, haystack[i])
		if node < 0 {
			break
		}
		if u := t.nodes[node].accept; u != 0 {
			best = Result{Unit: u, Consumed: i + 1}
			found = true
		}
	}
	return best, found
}

// Nodes returns the number of trie nodes, including the root.
func (t *Trie) Nodes() int {
	return len(t.nodes)
}
