package txsource

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/grailbio/base/errors"
	"github.com/klauspost/compress/gzip"

	"github.com/trailbase-oss/ptfmine/item"
)

// Text reads a line-oriented textual dataset format: ASCII lines, each a
// whitespace-separated list of non-negative integer item ids; blank lines
// are ignored; there is no header.
//
// Arbitrary external ids are remapped onto a dense Item space as they are
// first seen, via an internal Dictionary; call Dictionary to translate
// results back to the original ids.
type Text struct {
	scanner *bufio.Scanner
	line    int
	dict    *Dictionary
	cur     []item.Item
	n       int
	err     error
	done    bool
}

// NewText wraps r as a Text source.
func NewText(r io.Reader) *Text {
	return &Text{scanner: bufio.NewScanner(r), dict: newDictionary()}
}

// NewGzipText wraps a gzip-compressed reader of the same textual format,
// using klauspost/compress/gzip (faster than the standard library's,
// mirroring pileup/common.go's import of the same package for this
// purpose).
func NewGzipText(r io.Reader) (*Text, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, errors.E(err, "txsource: opening gzip dataset")
	}
	return NewText(gz), nil
}

// Dictionary returns the id remapping built so far; it is complete once
// Next has returned false.
func (t *Text) Dictionary() *Dictionary { return t.dict }

func (t *Text) Next() bool {
	if t.done || t.err != nil {
		return false
	}
	for t.scanner.Scan() {
		t.line++
		line := strings.TrimSpace(t.scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		raw := make([]item.Item, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				t.err = errors.E(err, "txsource: malformed item token on line", t.line, f)
				return false
			}
			if v < 0 {
				t.err = errors.E("txsource: negative item id on line", t.line, f)
				return false
			}
			raw = append(raw, t.dict.intern(v))
		}
		t.cur = item.Canonical(raw)
		t.n++
		return true
	}
	if err := t.scanner.Err(); err != nil {
		t.err = errors.E(err, "txsource: reading dataset")
	}
	t.done = true
	return false
}

func (t *Text) Transaction() []item.Item { return t.cur }

func (t *Text) Err() error { return t.err }

func (t *Text) N() int { return t.n }

// Dictionary maps arbitrary non-negative external item ids to a dense Item
// space, in order of first appearance.
type Dictionary struct {
	toDense  map[int]item.Item
	original []int
}

func newDictionary() *Dictionary {
	return &Dictionary{toDense: make(map[int]item.Item)}
}

func (d *Dictionary) intern(v int) item.Item {
	if it, ok := d.toDense[v]; ok {
		return it
	}
	it := item.Item(len(d.original))
	d.toDense[v] = it
	d.original = append(d.original, v)
	return it
}

// Original returns the external id that Item it was interned from.
func (d *Dictionary) Original(it item.Item) (int, bool) {
	if int(it) < 0 || int(it) >= len(d.original) {
		return 0, false
	}
	return d.original[it], true
}
