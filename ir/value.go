package ir

// Value is one Ion value. Kind selects which of the payload fields is
// meaningful; consumers are expected to switch exhaustively on it.
type Value struct {
	Kind Kind

	Str     string
	Int64   int64
	Float64 float64
	Bool    bool
	Values  []*Value // ArrayKind, in source order
	Fields  []Field  // DictKind, in insertion order
}

// Field is a single key/value pair of a dictionary or a section.
type Field struct {
	Key   string
	Value *Value
}

func FromString(v string) *Value {
	return &Value{Kind: StringKind, Str: v}
}

func FromInt(v int64) *Value {
	return &Value{Kind: IntKind, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Kind: FloatKind, Float64: v}
}

func FromBool(v bool) *Value {
	return &Value{Kind: BoolKind, Bool: v}
}

func FromValues(vs []*Value) *Value {
	return &Value{Kind: ArrayKind, Values: vs}
}

func FromFields(fs []Field) *Value {
	return &Value{Kind: DictKind, Fields: fs}
}

// Empty returns the marker for an omitted table cell.
func Empty() *Value {
	return &Value{Kind: EmptyKind}
}

func (v *Value) AsString() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.Str, true
}

func (v *Value) AsInt() (int64, bool) {
	if v.Kind != IntKind {
		return 0, false
	}
	return v.Int64, true
}

func (v *Value) AsFloat() (float64, bool) {
	if v.Kind != FloatKind {
		return 0, false
	}
	return v.Float64, true
}

func (v *Value) AsBool() (bool, bool) {
	if v.Kind != BoolKind {
		return false, false
	}
	return v.Bool, true
}

func (v *Value) AsArray() ([]*Value, bool) {
	if v.Kind != ArrayKind {
		return nil, false
	}
	return v.Values, true
}

func (v *Value) AsDict() ([]Field, bool) {
	if v.Kind != DictKind {
		return nil, false
	}
	return v.Fields, true
}

func (v *Value) IsEmpty() bool {
	return v.Kind == EmptyKind
}

// Get returns the value under key in a dictionary, or nil.
func Get(v *Value, key string) *Value {
	if v.Kind != DictKind {
		return nil
	}
	for i := range v.Fields {
		if v.Fields[i].Key == key {
			return v.Fields[i].Value
		}
	}
	return nil
}

// Interface projects the value onto plain Go types: string, int64,
// float64, bool, []any, map[string]any, nil for the empty marker.
// Dictionary insertion order is not representable in the projection.
func (v *Value) Interface() any {
	switch v.Kind {
	case StringKind:
		return v.Str
	case IntKind:
		return v.Int64
	case FloatKind:
		return v.Float64
	case BoolKind:
		return v.Bool
	case ArrayKind:
		res := make([]any, len(v.Values))
		for i, vv := range v.Values {
			res[i] = vv.Interface()
		}
		return res
	case DictKind:
		res := make(map[string]any, len(v.Fields))
		for i := range v.Fields {
			res[v.Fields[i].Key] = v.Fields[i].Value.Interface()
		}
		return res
	case EmptyKind:
		return nil
	}
	return nil
}

func (v *Value) Clone() *Value {
	res := &Value{
		Kind:    v.Kind,
		Str:     v.Str,
		Int64:   v.Int64,
		Float64: v.Float64,
		Bool:    v.Bool,
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			res.Values[i] = vv.Clone()
		}
	}
	if v.Fields != nil {
		res.Fields = make([]Field, len(v.Fields))
		for i := range v.Fields {
			res.Fields[i] = Field{Key: v.Fields[i].Key, Value: v.Fields[i].Value.Clone()}
		}
	}
	return res
}
