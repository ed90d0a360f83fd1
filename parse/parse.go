// Package parse builds Ion documents from raw text. Parsing is a pure
// function of the input: every call owns its own state, so concurrent
// calls need no coordination.
package parse

import (
	"fmt"

	"github.com/ion-format/go-ion/debug"
	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/token"
)

// Parse converts one Ion document to its model. The whole input is
// validated even when a section filter excludes parts of it; the
// first malformed construct fails the document.
func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	po := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(po)
	}
	doc := token.NewDoc(d)
	lines, err := token.Scan(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	res, err := assemble(doc, lines, po)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.LogAny(res)
	}
	return res, nil
}

func assemble(doc *token.Doc, lines []token.Line, po *parseOpts) (*ir.Document, error) {
	res := &ir.Document{}
	var (
		cur       *ir.Section
		keys      map[string]bool
		tableDone bool
	)
	finalize := func() {
		if cur == nil {
			return
		}
		if po.filter == nil || po.filter(cur.Path) {
			res.Sections = append(res.Sections, cur)
		}
		cur = nil
	}

	i := 0
	for i < len(lines) {
		line := &lines[i]
		switch line.Type {
		case token.LSection:
			finalize()
			path, err := ir.ParsePath(line.Text)
			if err != nil {
				return nil, fmt.Errorf("%w: %w %s", ErrSyntax, err, line.Pos)
			}
			cur = &ir.Section{Path: path}
			keys = map[string]bool{}
			tableDone = false
			i++

		case token.LEntry:
			if cur == nil {
				return nil, fmt.Errorf("%w: content before first section header %s", ErrStructural, line.Pos)
			}
			f, err := parseEntry(doc, line, po)
			if err != nil {
				return nil, err
			}
			if keys[f.Key] {
				return nil, fmt.Errorf("%w: duplicate field %q in section %s %s",
					ErrStructural, f.Key, cur.Path, line.Pos)
			}
			keys[f.Key] = true
			cur.Fields = append(cur.Fields, f)
			i++

		case token.LRow:
			if cur == nil {
				return nil, fmt.Errorf("%w: content before first section header %s", ErrStructural, line.Pos)
			}
			if tableDone {
				return nil, fmt.Errorf("%w: second table block in section %s %s",
					ErrStructural, cur.Path, line.Pos)
			}
			// a table block is a run of rows on adjacent physical
			// lines; any gap (blank or comment line) ends it
			j := i + 1
			for j < len(lines) && lines[j].Type == token.LRow &&
				lines[j].Pos.Line() == lines[j-1].Pos.Line()+1 {
				j++
			}
			t, err := parseTable(doc, lines[i:j], po)
			if err != nil {
				return nil, err
			}
			cur.Table = t
			tableDone = true
			i = j
		}
	}
	finalize()
	return res, nil
}
