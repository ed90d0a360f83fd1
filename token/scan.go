package token

import (
	"strings"

	"github.com/ion-format/go-ion/debug"
)

type LineType int

const (
	LSection LineType = iota
	LEntry
	LRow
)

func (t LineType) String() string {
	return map[LineType]string{
		LSection: "LSection",
		LEntry:   "LEntry",
		LRow:     "LRow",
	}[t]
}

// Span is a comment-stripped slice of one physical line, addressed by
// the offset of its first byte in the source document.
type Span struct {
	Off  int
	Text string
}

// Line is one logical line. An LEntry spans as many physical lines as
// it takes for brackets to balance, one Span per physical line.
type Line struct {
	Type  LineType
	Pos   *Pos
	Spans []Span // LEntry
	Text  string // LSection: the text between the brackets
	Cells []Cell // LRow
}

// Cell is one |-delimited span of a table row, trimmed, with \|
// decoded. Off addresses the first significant byte, or the position
// where content would start for an all-blank cell.
type Cell struct {
	Off  int
	Text string
}

// Scan splits the document into logical lines, discarding blank lines
// and comments. It fails on an unterminated quoted string, an
// unterminated section header, or an assignment whose brackets never
// balance before end of input.
func Scan(doc *Doc) ([]Line, error) {
	var (
		lines []Line
		d     = doc.d
		i     = 0
	)
	for i < len(d) {
		start := i
		eol := lineEnd(d, start)
		i = eol + 1

		text, off, err := significant(doc, start, eol)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}

		switch text[0] {
		case '[':
			if len(text) < 2 || text[len(text)-1] != ']' {
				return nil, NewScanErr(ErrUnterminatedSection, doc.Pos(off))
			}
			lines = append(lines, Line{
				Type: LSection,
				Pos:  doc.Pos(off),
				Text: text[1 : len(text)-1],
			})
		case '|':
			lines = append(lines, Line{
				Type:  LRow,
				Pos:   doc.Pos(off),
				Cells: splitCells(text, off),
			})
		default:
			line := Line{
				Type:  LEntry,
				Pos:   doc.Pos(off),
				Spans: []Span{{Off: off, Text: text}},
			}
			depth := bracketDelta(text)
			for depth > 0 {
				if i > len(d) {
					return nil, NewScanErr(ErrDocBalance, doc.Pos(off))
				}
				contStart := i
				contEol := lineEnd(d, contStart)
				i = contEol + 1
				contText, contOff, err := significant(doc, contStart, contEol)
				if err != nil {
					return nil, err
				}
				line.Spans = append(line.Spans, Span{Off: contOff, Text: contText})
				depth += bracketDelta(contText)
			}
			lines = append(lines, line)
		}
	}
	if debug.Scan() {
		debug.LogAny(lines)
	}
	return lines, nil
}

func lineEnd(d []byte, start int) int {
	for i := start; i < len(d); i++ {
		if d[i] == '\n' {
			return i
		}
	}
	return len(d)
}

// significant strips the comment, if any, from the physical line
// d[start:eol] and trims surrounding whitespace. It returns the
// remaining text and the offset of its first byte. Quoted strings may
// contain '#' and "//"; a quote left open at end of line is an error.
func significant(doc *Doc, start, eol int) (string, int, error) {
	d := doc.d
	cut := eol
	inQuote := false
	quoteStart := 0
	for j := start; j < eol; j++ {
		c := d[j]
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
			quoteStart = j
		case '#':
			cut = j
		case '/':
			if j+1 < eol && d[j+1] == '/' {
				cut = j
			}
		}
		if cut != eol {
			break
		}
	}
	if inQuote {
		return "", 0, NewScanErr(ErrUnterminatedString, doc.Pos(quoteStart))
	}
	text := string(d[start:cut])
	trimmed := strings.TrimLeft(text, " \t\r")
	off := start + len(text) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, " \t\r")
	return trimmed, off, nil
}

// bracketDelta counts bracket/brace opens minus closes outside quoted
// strings. The scanner only needs the running balance; bracket kind
// mismatches are reported by the value parser.
func bracketDelta(text string) int {
	depth := 0
	inQuote := false
	for j := 0; j < len(text); j++ {
		c := text[j]
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
		}
	}
	return depth
}

// splitCells breaks a row line on unescaped '|'. The spans before the
// leading '|' and after a trailing '|' are discarded; everything else
// is a cell, even when blank.
func splitCells(text string, off int) []Cell {
	var (
		cells   []Cell
		buf     strings.Builder
		start   = 1 // after the leading '|'
		pending = false
	)
	flush := func(end int) {
		raw := buf.String()
		buf.Reset()
		trimmed := strings.TrimLeft(raw, " \t")
		cellOff := off + start + len(raw) - len(trimmed)
		cells = append(cells, Cell{
			Off:  cellOff,
			Text: strings.TrimRight(trimmed, " \t"),
		})
		start = end + 1
		pending = false
	}
	for j := 1; j < len(text); j++ {
		c := text[j]
		switch c {
		case '\\':
			if j+1 < len(text) && text[j+1] == '|' {
				buf.WriteByte('|')
				j++
			} else {
				buf.WriteByte(c)
			}
			pending = true
		case '|':
			flush(j)
		default:
			buf.WriteByte(c)
			pending = true
		}
	}
	if pending {
		flush(len(text))
	}
	return cells
}
