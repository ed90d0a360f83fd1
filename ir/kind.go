// Package ir holds the Ion document model: typed values, sections,
// tables, and the document itself. The model is built once by a parse
// and not mutated afterwards.
package ir

import "fmt"

type Kind int

const (
	StringKind Kind = iota
	IntKind
	FloatKind
	BoolKind
	ArrayKind
	DictKind
	// EmptyKind marks an omitted table cell. It never appears outside
	// a table row and is distinct from an empty string.
	EmptyKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		StringKind: "String",
		IntKind:    "Integer",
		FloatKind:  "Float",
		BoolKind:   "Bool",
		ArrayKind:  "Array",
		DictKind:   "Dictionary",
		EmptyKind:  "Empty",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"String":     StringKind,
		"Integer":    IntKind,
		"Float":      FloatKind,
		"Bool":       BoolKind,
		"Array":      ArrayKind,
		"Dictionary": DictKind,
		"Empty":      EmptyKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		StringKind,
		IntKind,
		FloatKind,
		BoolKind,
		ArrayKind,
		DictKind,
		EmptyKind,
	}
}

func (k Kind) IsScalar() bool {
	switch k {
	case ArrayKind, DictKind:
		return false
	default:
		return true
	}
}
