package ir

import "fmt"

// Document is the ordered list of sections that survived filtering.
// Two sections may share a path; no merging happens, Lookup returns
// the first and All returns every one.
type Document struct {
	Sections []*Section
}

func (d *Document) Len() int {
	return len(d.Sections)
}

// Lookup returns the first section whose path renders exactly as
// path, or nil.
func (d *Document) Lookup(path string) *Section {
	for _, s := range d.Sections {
		if s.Path.String() == path {
			return s
		}
	}
	return nil
}

// All returns every section at the given path, in document order.
func (d *Document) All(path string) []*Section {
	var res []*Section
	for _, s := range d.Sections {
		if s.Path.String() == path {
			res = append(res, s)
		}
	}
	return res
}

// Fetch is Lookup with an error naming the missing path.
func (d *Document) Fetch(path string) (*Section, error) {
	s := d.Lookup(path)
	if s == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingSection, path)
	}
	return s, nil
}
