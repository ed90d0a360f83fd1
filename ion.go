// Package ion reads and writes Ion documents, a line-oriented
// configuration format with named sections, typed assignments and
// pipe-delimited tables.
//
// Parse produces an immutable ir.Document; the encode package renders
// documents back to text, JSON or YAML; gomap maps parsed values onto
// Go structs.
package ion

import (
	"io"

	"github.com/ion-format/go-ion/encode"
	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/parse"
)

// Parse reads an Ion document from d.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse(d, opts...)
}

// ParseString reads an Ion document from s.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Document, error) {
	return parse.Parse([]byte(s), opts...)
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...parse.ParseOption) (*ir.Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// Encode writes doc as Ion text.
func Encode(doc *ir.Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(doc, w, opts...)
}

// FilterPaths returns a section filter accepting exactly the given
// dot-separated paths. Paths that do not parse are never matched.
func FilterPaths(paths ...string) parse.SectionFilter {
	want := make([]ir.Path, 0, len(paths))
	for _, p := range paths {
		pp, err := ir.ParsePath(p)
		if err != nil {
			continue
		}
		want = append(want, pp)
	}
	return func(p ir.Path) bool {
		for _, w := range want {
			if p.Equal(w) {
				return true
			}
		}
		return false
	}
}

// FilterPrefix returns a section filter accepting the given path and
// everything beneath it.
func FilterPrefix(prefix string) (parse.SectionFilter, error) {
	pp, err := ir.ParsePath(prefix)
	if err != nil {
		return nil, err
	}
	return func(p ir.Path) bool { return p.HasPrefix(pp) }, nil
}
