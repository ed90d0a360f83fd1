package gomap

import (
	"fmt"
	"reflect"

	"github.com/ion-format/go-ion/ir"
)

// UnmarshalError reports a failure to map an Ion value onto a Go
// destination, naming the field where it occurred.
type UnmarshalError struct {
	Field string
	Err   error
}

func (e *UnmarshalError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Err)
}

func (e *UnmarshalError) Unwrap() error { return e.Err }

// TypeError reports an Ion kind that does not fit the Go type it was
// asked to populate.
type TypeError struct {
	Kind ir.Kind
	Go   reflect.Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("cannot map %s value to %s", e.Kind, e.Go)
}

func fieldErr(field string, err error) error {
	if err == nil {
		return nil
	}
	if ue, ok := err.(*UnmarshalError); ok && ue.Field != "" {
		return &UnmarshalError{Field: field + "." + ue.Field, Err: ue.Err}
	}
	if ue, ok := err.(*UnmarshalError); ok {
		return &UnmarshalError{Field: field, Err: ue.Err}
	}
	return &UnmarshalError{Field: field, Err: err}
}
