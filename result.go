package ptfmine

import (
	"strconv"
	"strings"

	"github.com/trailbase-oss/ptfmine/item"
	"github.com/trailbase-oss/ptfmine/topk"
)

// Item is the dense item identifier used throughout the engine; see
// package item for its canonicalization and ordering rules.
type Item = item.Item

// Result is one (itemset, support) member of a mining run's output.
type Result struct {
	Items   []Item
	Support int
}

// String renders an itemset as "{ i1, i2, … }" with items ascending.
func (r Result) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, it := range r.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(it)))
	}
	b.WriteString(" }")
	return b.String()
}

func toResults(entries []topk.Entry) []Result {
	out := make([]Result, len(entries))
	for i, e := range entries {
		out[i] = Result{Items: e.Items, Support: e.Support}
	}
	return out
}
