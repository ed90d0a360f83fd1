package parse

import (
	"fmt"
	"strings"

	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/token"
)

// parseEntry turns one assignment logical line into a field: split at
// the first top-level '=', validate the key, parse the value, and
// require the whole value span to be consumed.
func parseEntry(doc *token.Doc, line *token.Line, po *parseOpts) (ir.Field, error) {
	si, ci, ok := findAssign(line.Spans)
	if !ok {
		return ir.Field{}, fmt.Errorf("%w: missing '=' in assignment %s", ErrSyntax, line.Pos)
	}

	var keyText strings.Builder
	for i := 0; i < si; i++ {
		keyText.WriteString(line.Spans[i].Text)
	}
	keyText.WriteString(line.Spans[si].Text[:ci])
	key := strings.TrimSpace(keyText.String())
	if !ir.IsIdent(key) {
		return ir.Field{}, fmt.Errorf("%w: invalid key %q %s", ErrSyntax, key, line.Pos)
	}

	valSpans := make([]token.Span, 0, len(line.Spans)-si)
	first := line.Spans[si]
	valSpans = append(valSpans, token.Span{Off: first.Off + ci + 1, Text: first.Text[ci+1:]})
	valSpans = append(valSpans, line.Spans[si+1:]...)

	c := &cursor{doc: doc, spans: valSpans}
	v, err := parseValue(c, 0, po)
	if err != nil {
		return ir.Field{}, err
	}
	c.skipSpace(true)
	if _, more := c.peek(); more {
		return ir.Field{}, fmt.Errorf("%w: trailing characters after value %s", ErrSyntax, c.pos())
	}
	return ir.Field{Key: key, Value: v}, nil
}

// findAssign locates the first '=' outside quotes and brackets.
func findAssign(spans []token.Span) (si, ci int, ok bool) {
	depth := 0
	inQuote := false
	for i, sp := range spans {
		for j := 0; j < len(sp.Text); j++ {
			c := sp.Text[j]
			if inQuote {
				if c == '\\' {
					j++
					continue
				}
				if c == '"' {
					inQuote = false
				}
				continue
			}
			switch c {
			case '"':
				inQuote = true
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			case '=':
				if depth == 0 {
					return i, j, true
				}
			}
		}
	}
	return 0, 0, false
}
