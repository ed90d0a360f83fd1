package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/token"
)

// cursor walks the comment-stripped spans of one logical line. Span
// boundaries read as a synthetic newline, which is how dictionary
// entries stay newline-separated across physical lines.
type cursor struct {
	doc   *token.Doc
	spans []token.Span
	si    int
	ci    int
}

func (c *cursor) peek() (byte, bool) {
	if c.si >= len(c.spans) {
		return 0, false
	}
	if c.ci < len(c.spans[c.si].Text) {
		return c.spans[c.si].Text[c.ci], true
	}
	if c.si == len(c.spans)-1 {
		return 0, false
	}
	return '\n', true
}

func (c *cursor) next() {
	if c.si >= len(c.spans) {
		return
	}
	if c.ci < len(c.spans[c.si].Text) {
		c.ci++
		return
	}
	c.si++
	c.ci = 0
}

func (c *cursor) pos() *token.Pos {
	if c.si >= len(c.spans) {
		if len(c.spans) == 0 {
			return c.doc.Pos(c.doc.Len())
		}
		last := c.spans[len(c.spans)-1]
		return c.doc.Pos(last.Off + len(last.Text))
	}
	return c.doc.Pos(c.spans[c.si].Off + c.ci)
}

// skipSpace consumes spaces and tabs; with nl it also crosses span
// boundaries.
func (c *cursor) skipSpace(nl bool) {
	for {
		ch, ok := c.peek()
		if !ok {
			return
		}
		switch ch {
		case ' ', '\t', '\r':
			c.next()
		case '\n':
			if !nl {
				return
			}
			c.next()
		default:
			return
		}
	}
}

func parseValue(c *cursor, depth int, po *parseOpts) (*ir.Value, error) {
	if depth > po.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d %s", ErrSyntax, po.maxDepth, c.pos())
	}
	c.skipSpace(true)
	ch, ok := c.peek()
	if !ok {
		return nil, fmt.Errorf("%w: cannot read a value %s", ErrSyntax, c.pos())
	}
	switch ch {
	case '"':
		return finishString(c)
	case '[':
		return finishArray(c, depth, po)
	case '{':
		return finishDict(c, depth, po)
	}
	return bareToken(c)
}

// finishString consumes a quoted string. The only escape sequences in
// the format are \" and \\; anything else after a backslash is fatal.
func finishString(c *cursor) (*ir.Value, error) {
	open := c.pos()
	c.next() // opening quote
	var b strings.Builder
	for {
		ch, ok := c.peek()
		if !ok || ch == '\n' {
			return nil, fmt.Errorf("%w: %w %s", ErrSyntax, token.ErrUnterminatedString, open)
		}
		c.next()
		switch ch {
		case '"':
			return ir.FromString(b.String()), nil
		case '\\':
			esc, ok := c.peek()
			if !ok || (esc != '"' && esc != '\\') {
				return nil, fmt.Errorf("%w: %w %s", ErrSyntax, token.ErrBadEscape, c.pos())
			}
			c.next()
			b.WriteByte(esc)
		default:
			b.WriteByte(ch)
		}
	}
}

func finishArray(c *cursor, depth int, po *parseOpts) (*ir.Value, error) {
	open := c.pos()
	c.next() // '['
	vals := []*ir.Value{}
	for {
		c.skipSpace(true)
		ch, ok := c.peek()
		if !ok {
			return nil, fmt.Errorf("%w: cannot finish array %s", ErrSyntax, open)
		}
		switch ch {
		case ']':
			c.next()
			return ir.FromValues(vals), nil
		case ',':
			// separators and trailing commas; empty elements are not
			// a thing, consecutive commas read as one
			c.next()
		case '}':
			return nil, fmt.Errorf("%w: unexpected '}' in array %s", ErrSyntax, c.pos())
		default:
			v, err := parseValue(c, depth+1, po)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	}
}

func finishDict(c *cursor, depth int, po *parseOpts) (*ir.Value, error) {
	open := c.pos()
	c.next() // '{'
	fields := []ir.Field{}
	seen := map[string]bool{}
	for {
		c.skipSpace(true)
		ch, ok := c.peek()
		if !ok {
			return nil, fmt.Errorf("%w: cannot finish dictionary %s", ErrSyntax, open)
		}
		switch ch {
		case '}':
			c.next()
			return ir.FromFields(fields), nil
		case ',':
			c.next()
		case ']':
			return nil, fmt.Errorf("%w: unexpected ']' in dictionary %s", ErrSyntax, c.pos())
		default:
			keyPos := c.pos()
			key := c.ident()
			if key == "" {
				return nil, fmt.Errorf("%w: expected key %s", ErrSyntax, keyPos)
			}
			c.skipSpace(false)
			if eq, ok := c.peek(); !ok || eq != '=' {
				return nil, fmt.Errorf("%w: expected '=' after key %q %s", ErrSyntax, key, c.pos())
			}
			c.next()
			v, err := parseValue(c, depth+1, po)
			if err != nil {
				return nil, err
			}
			if seen[key] {
				return nil, fmt.Errorf("%w: duplicate key %q in dictionary %s", ErrStructural, key, keyPos)
			}
			seen[key] = true
			fields = append(fields, ir.Field{Key: key, Value: v})
		}
	}
}

// ident consumes a run of bare-identifier characters.
func (c *cursor) ident() string {
	var b strings.Builder
	for {
		ch, ok := c.peek()
		if !ok || !isIdentChar(ch) {
			return b.String()
		}
		b.WriteByte(ch)
		c.next()
	}
}

func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
	case c >= 'A' && c <= 'Z':
	case c >= '0' && c <= '9':
	case c == '_' || c == '-':
	default:
		return false
	}
	return true
}

// bareToken reads up to the next structural delimiter and classifies
// the whole token: boolean, then integer, then float, then bare
// string. A token must satisfy a numeric pattern in full to claim the
// type; "1a" is a bare string.
func bareToken(c *cursor) (*ir.Value, error) {
	start := c.pos()
	var b strings.Builder
	for {
		ch, ok := c.peek()
		if !ok || ch == ',' || ch == ']' || ch == '}' || ch == '\n' {
			break
		}
		b.WriteByte(ch)
		c.next()
	}
	tok := strings.TrimRight(b.String(), " \t\r")
	if tok == "" {
		return nil, fmt.Errorf("%w: cannot read a value %s", ErrSyntax, start)
	}
	switch tok {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if isIntToken(tok) {
		i, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %q exceeds 64-bit range %s", ErrRange, tok, start)
		}
		return ir.FromInt(i), nil
	}
	if isFloatToken(tok) {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid float %q %s", ErrRange, tok, start)
		}
		return ir.FromFloat(f), nil
	}
	return ir.FromString(tok), nil
}

// isIntToken: optional leading '-', then digits only.
func isIntToken(tok string) bool {
	s := tok
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isFloatToken: optional leading '-', digits, exactly one decimal
// point, optional fraction digits, optional exponent.
func isFloatToken(tok string) bool {
	s := tok
	if s[0] == '-' {
		s = s[1:]
	}
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i == len(s) || s[i] != '.' {
		return false
	}
	i++
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == len(s) {
		return true
	}
	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
