// Package gomap maps Ion values, sections and tables onto Go structs
// and slices by reflection.
package gomap

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/ion-format/go-ion/ir"
)

// FromValue populates p, which must be a non-nil pointer, from v.
// Struct fields are matched by their "ion" tag, falling back to the
// field name; a tag of "-" skips the field.
func FromValue(v *ir.Value, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("gomap: destination must be a non-nil pointer, got %T", p)
	}
	return fromValue(v, rv.Elem())
}

// FromSection populates a struct from a section's fields.
func FromSection(s *ir.Section, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("gomap: destination must be a non-nil pointer, got %T", p)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return &TypeError{Kind: ir.DictKind, Go: elem.Type()}
	}
	return fromFields(s.Fields, elem)
}

// FromTable populates a slice of structs from a table, one element per
// row, matching columns to struct fields the way FromValue matches
// dict keys. Empty cells leave the field at its zero value.
func FromTable(t *ir.Table, p any) error {
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("gomap: destination must be a non-nil pointer, got %T", p)
	}
	slice := rv.Elem()
	if slice.Kind() != reflect.Slice || slice.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("gomap: table destination must be a pointer to a slice of structs, got %T", p)
	}
	elemTy := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, t.NumRows())
	for ri, row := range t.Rows {
		elem := reflect.New(elemTy).Elem()
		for ci, cell := range row {
			if cell.Kind == ir.EmptyKind {
				continue
			}
			fv, name := structField(elem, t.Columns[ci])
			if !fv.IsValid() {
				continue
			}
			if err := fromValue(cell, fv); err != nil {
				return fieldErr(fmt.Sprintf("row %d, column %q", ri+1, name), err)
			}
		}
		out = reflect.Append(out, elem)
	}
	slice.Set(out)
	return nil
}

func fromValue(v *ir.Value, dst reflect.Value) error {
	if dst.Kind() == reflect.Pointer {
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return fromValue(v, dst.Elem())
	}
	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		dst.Set(reflect.ValueOf(v.Interface()))
		return nil
	}
	switch v.Kind {
	case ir.StringKind:
		if dst.Kind() != reflect.String {
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
		dst.SetString(v.Str)
	case ir.IntKind:
		switch dst.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if dst.OverflowInt(v.Int64) {
				return fmt.Errorf("value %d overflows %s", v.Int64, dst.Type())
			}
			dst.SetInt(v.Int64)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if v.Int64 < 0 || dst.OverflowUint(uint64(v.Int64)) {
				return fmt.Errorf("value %d overflows %s", v.Int64, dst.Type())
			}
			dst.SetUint(uint64(v.Int64))
		case reflect.Float32, reflect.Float64:
			dst.SetFloat(float64(v.Int64))
		default:
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
	case ir.FloatKind:
		switch dst.Kind() {
		case reflect.Float32, reflect.Float64:
			dst.SetFloat(v.Float64)
		default:
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
	case ir.BoolKind:
		if dst.Kind() != reflect.Bool {
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
		dst.SetBool(v.Bool)
	case ir.ArrayKind:
		if dst.Kind() != reflect.Slice {
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
		out := reflect.MakeSlice(dst.Type(), len(v.Values), len(v.Values))
		for i, vv := range v.Values {
			if err := fromValue(vv, out.Index(i)); err != nil {
				return fieldErr(fmt.Sprintf("[%d]", i), err)
			}
		}
		dst.Set(out)
	case ir.DictKind:
		switch dst.Kind() {
		case reflect.Struct:
			return fromFields(v.Fields, dst)
		case reflect.Map:
			return fromMap(v.Fields, dst)
		default:
			return &TypeError{Kind: v.Kind, Go: dst.Type()}
		}
	case ir.EmptyKind:
		// zero value stands
	default:
		return &TypeError{Kind: v.Kind, Go: dst.Type()}
	}
	return nil
}

func fromFields(fields []ir.Field, dst reflect.Value) error {
	for i := range fields {
		f := &fields[i]
		fv, name := structField(dst, f.Key)
		if !fv.IsValid() {
			continue
		}
		if err := fromValue(f.Value, fv); err != nil {
			return fieldErr(name, err)
		}
	}
	return nil
}

func fromMap(fields []ir.Field, dst reflect.Value) error {
	ty := dst.Type()
	if ty.Key().Kind() != reflect.String {
		return &TypeError{Kind: ir.DictKind, Go: ty}
	}
	out := reflect.MakeMapWithSize(ty, len(fields))
	for i := range fields {
		f := &fields[i]
		ev := reflect.New(ty.Elem()).Elem()
		if err := fromValue(f.Value, ev); err != nil {
			return fieldErr(f.Key, err)
		}
		out.SetMapIndex(reflect.ValueOf(f.Key).Convert(ty.Key()), ev)
	}
	dst.Set(out)
	return nil
}

// structField finds the field of dst matching key by "ion" tag first,
// then case-insensitive name. The second result is the matched field's
// reported name.
func structField(dst reflect.Value, key string) (reflect.Value, string) {
	ty := dst.Type()
	n := ty.NumField()
	for i := range n {
		f := ty.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("ion")
		if tag == "-" {
			continue
		}
		if tag != "" {
			if name, _, _ := strings.Cut(tag, ","); name == key {
				return dst.Field(i), name
			}
			continue
		}
		if strings.EqualFold(f.Name, key) {
			return dst.Field(i), f.Name
		}
	}
	return reflect.Value{}, key
}
