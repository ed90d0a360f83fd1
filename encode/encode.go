package encode

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/ion-format/go-ion/debug"
	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/token"
)

// Encode writes the document as Ion text. The output parses back to
// the same model; original whitespace and comments are not preserved.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	buf := &bytes.Buffer{}
	for i, s := range doc.Sections {
		if i > 0 {
			buf.WriteByte('\n')
		}
		es.section(buf, s)
	}
	if debug.Encode() {
		debug.LogAny(buf.String())
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeSection writes one section, header included.
func EncodeSection(s *ir.Section, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	buf := &bytes.Buffer{}
	es.section(buf, s)
	_, err := w.Write(buf.Bytes())
	return err
}

// EncodeValue writes one value in assignment position (strings are
// quoted).
func EncodeValue(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, f := range opts {
		f(es)
	}
	buf := &bytes.Buffer{}
	es.value(buf, v)
	_, err := w.Write(buf.Bytes())
	return err
}

func (es *EncState) section(buf *bytes.Buffer, s *ir.Section) {
	buf.WriteString(es.paint(colorKey{Kind: ir.StringKind, Attr: HeaderColor}, "["+s.Path.String()+"]"))
	buf.WriteByte('\n')
	for i := range s.Fields {
		f := &s.Fields[i]
		buf.WriteString(es.paint(colorKey{Kind: f.Value.Kind, Attr: FieldColor}, f.Key))
		buf.WriteString(" = ")
		es.value(buf, f.Value)
		buf.WriteByte('\n')
	}
	if s.Table != nil {
		es.table(buf, s.Table)
	}
}

func (es *EncState) table(buf *bytes.Buffer, t *ir.Table) {
	sep := es.paint(colorKey{Kind: ir.StringKind, Attr: SepColor}, "|")
	for _, col := range t.Columns {
		buf.WriteString(sep)
		buf.WriteByte(' ')
		buf.WriteString(token.QuoteCell(col))
		buf.WriteByte(' ')
	}
	buf.WriteString(sep)
	buf.WriteByte('\n')
	for range t.Columns {
		buf.WriteString(sep)
		buf.WriteString(" --- ")
	}
	buf.WriteString(sep)
	buf.WriteByte('\n')
	for _, row := range t.Rows {
		for _, cell := range row {
			buf.WriteString(sep)
			buf.WriteByte(' ')
			es.cell(buf, cell)
			buf.WriteByte(' ')
		}
		buf.WriteString(sep)
		buf.WriteByte('\n')
	}
}

// cell renders a value in cell position: bare strings stay bare when
// they can, pipes are escaped, the empty marker renders as nothing.
func (es *EncState) cell(buf *bytes.Buffer, v *ir.Value) {
	if v.Kind == ir.EmptyKind {
		return
	}
	if s, ok := v.AsString(); ok && !token.NeedsQuote(s) {
		buf.WriteString(es.paint(colorKey{Kind: ir.StringKind, Attr: ValueColor}, s))
		return
	}
	if s, ok := v.AsString(); ok {
		buf.WriteString(es.paint(colorKey{Kind: ir.StringKind, Attr: ValueColor},
			token.QuoteCell(token.Quote(s))))
		return
	}
	es.value(buf, v)
}

func (es *EncState) value(buf *bytes.Buffer, v *ir.Value) {
	paintScalar := func(s string) {
		buf.WriteString(es.paint(colorKey{Kind: v.Kind, Attr: ValueColor}, s))
	}
	switch v.Kind {
	case ir.StringKind:
		paintScalar(token.Quote(v.Str))
	case ir.IntKind:
		paintScalar(strconv.FormatInt(v.Int64, 10))
	case ir.FloatKind:
		paintScalar(formatFloat(v.Float64))
	case ir.BoolKind:
		paintScalar(strconv.FormatBool(v.Bool))
	case ir.ArrayKind:
		if len(v.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[ ")
		for i, vv := range v.Values {
			if i > 0 {
				buf.WriteString(", ")
			}
			es.value(buf, vv)
		}
		buf.WriteString(" ]")
	case ir.DictKind:
		if len(v.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{ ")
		for i := range v.Fields {
			if i > 0 {
				buf.WriteString(", ")
			}
			f := &v.Fields[i]
			buf.WriteString(es.paint(colorKey{Kind: f.Value.Kind, Attr: FieldColor}, f.Key))
			buf.WriteString(" = ")
			es.value(buf, f.Value)
		}
		buf.WriteString(" }")
	case ir.EmptyKind:
		// only meaningful in cell position
	}
}

// formatFloat keeps a decimal point in the rendering so the value
// reads back as a float, not an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") { // n/N cover Inf and NaN
		return s
	}
	return s + ".0"
}
