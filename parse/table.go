package parse

import (
	"fmt"

	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/token"
)

// parseTable turns one contiguous run of row lines into a table. The
// first row names the columns, the second must be a pure dash
// separator, and every data row must have exactly as many cells as
// there are columns. Blank cells become the empty marker.
func parseTable(doc *token.Doc, rows []token.Line, po *parseOpts) (*ir.Table, error) {
	header := &rows[0]
	columns := make([]string, 0, len(header.Cells))
	seen := map[string]bool{}
	for _, cell := range header.Cells {
		if cell.Text == "" {
			return nil, fmt.Errorf("%w: empty column name %s", ErrStructural, doc.Pos(cell.Off))
		}
		if seen[cell.Text] {
			return nil, fmt.Errorf("%w: duplicate column %q %s", ErrStructural, cell.Text, doc.Pos(cell.Off))
		}
		seen[cell.Text] = true
		columns = append(columns, cell.Text)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table header has no columns %s", ErrStructural, header.Pos)
	}

	if len(rows) < 2 || !isSeparator(&rows[1]) {
		p := header.Pos
		if len(rows) >= 2 {
			p = rows[1].Pos
		}
		return nil, fmt.Errorf("%w: table header must be followed by a separator row %s", ErrStructural, p)
	}

	t := &ir.Table{Columns: columns}
	for ri := 2; ri < len(rows); ri++ {
		row := &rows[ri]
		if len(row.Cells) != len(columns) {
			return nil, fmt.Errorf("%w: table row %d has %d cells, want %d %s",
				ErrStructural, ri-1, len(row.Cells), len(columns), row.Pos)
		}
		vals := make([]*ir.Value, len(row.Cells))
		for i, cell := range row.Cells {
			if cell.Text == "" {
				vals[i] = ir.Empty()
				continue
			}
			v, err := parseCell(doc, cell, po)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}
		t.Rows = append(t.Rows, vals)
	}
	return t, nil
}

// parseCell runs the value grammar over one cell and requires it to
// consume the cell in full.
func parseCell(doc *token.Doc, cell token.Cell, po *parseOpts) (*ir.Value, error) {
	c := &cursor{doc: doc, spans: []token.Span{{Off: cell.Off, Text: cell.Text}}}
	v, err := parseValue(c, 0, po)
	if err != nil {
		return nil, err
	}
	c.skipSpace(true)
	if _, more := c.peek(); more {
		return nil, fmt.Errorf("%w: trailing characters after cell value %s", ErrSyntax, c.pos())
	}
	return v, nil
}

// isSeparator reports whether every cell of the row is dashes only.
func isSeparator(row *token.Line) bool {
	if len(row.Cells) == 0 {
		return false
	}
	for _, cell := range row.Cells {
		if cell.Text == "" {
			return false
		}
		for i := 0; i < len(cell.Text); i++ {
			if cell.Text[i] != '-' {
				return false
			}
		}
	}
	return true
}
