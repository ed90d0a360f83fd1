package ir

import "fmt"

// Section is one [path] block: ordered fields and at most one table.
type Section struct {
	Path   Path
	Fields []Field
	Table  *Table
}

// Get returns the value of a direct field by key, or nil.
func (s *Section) Get(key string) *Value {
	for i := range s.Fields {
		if s.Fields[i].Key == key {
			return s.Fields[i].Value
		}
	}
	return nil
}

// Fetch is Get with an error naming the missing key.
func (s *Section) Fetch(key string) (*Value, error) {
	v := s.Get(key)
	if v == nil {
		return nil, fmt.Errorf("%w: %q in section %s", ErrMissingField, key, s.Path)
	}
	return v, nil
}
