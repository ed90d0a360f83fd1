package encode

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ion-format/go-ion/ir"
)

// EncodeJSON writes a JSON projection of the document. Sections become
// objects with "path", "fields" and, when present, "table" members.
// Empty cells project to null.
func EncodeJSON(doc *ir.Document, w io.Writer) error {
	d, err := json.MarshalIndent(docAny(doc), "", "  ")
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

// EncodeYAML writes a YAML projection of the document with the same
// shape as EncodeJSON.
func EncodeYAML(doc *ir.Document, w io.Writer) error {
	d, err := yaml.Marshal(docAny(doc))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func docAny(doc *ir.Document) []any {
	res := make([]any, 0, doc.Len())
	for _, s := range doc.Sections {
		res = append(res, sectionAny(s))
	}
	return res
}

func sectionAny(s *ir.Section) map[string]any {
	fields := map[string]any{}
	for i := range s.Fields {
		fields[s.Fields[i].Key] = s.Fields[i].Value.Interface()
	}
	m := map[string]any{
		"path":   s.Path.String(),
		"fields": fields,
	}
	if s.Table != nil {
		rows := make([]any, 0, s.Table.NumRows())
		for _, row := range s.Table.Rows {
			r := make([]any, 0, len(row))
			for _, cell := range row {
				r = append(r, cell.Interface())
			}
			rows = append(rows, r)
		}
		m["table"] = map[string]any{
			"columns": s.Table.Columns,
			"rows":    rows,
		}
	}
	return m
}
