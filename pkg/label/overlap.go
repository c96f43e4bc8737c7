package label

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Overlap records an entry that is a proper prefix of longer entries.
// Shadowed holds the ordered-table indices of those longer entries.
type Overlap struct {
	Index    int
	Entry    Entry
	Shadowed *roaring.Bitmap
}

// Overlaps lists every entry in o that is a proper prefix of another entry.
// In a correctly ordered table every index in Shadowed is below Index.
func Overlaps(o Ordered) []Overlap {
	var out []Overlap
	for i, short := range o.entries {
		bm := roaring.New()
		for j, long := range o.entries {
			if long.Len() > short.Len() && strings.HasPrefix(long.Label, short.Label) {
				bm.Add(uint32(j))
			}
		}
		if !bm.IsEmpty() {
			out = append(out, Overlap{Index: i, Entry: short, Shadowed: bm})
		}
	}
	return out
}

// Labels returns the labels of the shadowed entries in match order.
func (ov Overlap) Labels(o Ordered) []string {
	idx := ov.Shadowed.ToArray()
	out := make([]string, 0, len(idx))
	for _, j := range idx {
		out = append(out, o.entries[j].Label)
	}
	return out
}
