package token

import (
	"fmt"
	"sort"
	"strconv"
)

// Doc wraps an input buffer together with an index of its newline
// offsets, so positions can be mapped to line/column on demand.
type Doc struct {
	d []byte
	n []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{d: d}
	for i, c := range d {
		if c == '\n' {
			doc.n = append(doc.n, i)
		}
	}
	return doc
}

func (d *Doc) Bytes() []byte {
	return d.d
}

func (d *Doc) Len() int {
	return len(d.d)
}

// LineCol maps a byte offset to a 1-based line and column.
func (d *Doc) LineCol(off int) (int, int) {
	N := len(d.n)
	li := sort.Search(N, func(i int) bool {
		return d.n[i] >= off
	})
	if li == 0 {
		return 1, off + 1
	}
	return li + 1, off - d.n[li-1]
}

func (d *Doc) Pos(off int) *Pos {
	return &Pos{Off: off, Doc: d}
}

type Pos struct {
	Off int
	Doc *Doc
}

func (p *Pos) LineCol() (int, int) {
	return p.Doc.LineCol(p.Off)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p *Pos) String() string {
	d := p.Doc.d
	sample := string(d[max(0, p.Off-5):min(p.Off+5, len(d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	l, c := p.LineCol()
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.Off, l, c)
}
