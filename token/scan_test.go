package token

import (
	"errors"
	"testing"
)

type scanTest struct {
	in    string
	types []LineType
	e     error
}

func TestScan(t *testing.T) {
	sts := []scanTest{
		{
			in:    "[a]\n",
			types: []LineType{LSection},
		},
		{
			in:    "[a.b]\nk = 1\n",
			types: []LineType{LSection, LEntry},
		},
		{
			in:    "# comment\n\n[a]\nk = 1 // trailing\n",
			types: []LineType{LSection, LEntry},
		},
		{
			in:    "[a]\n| x | y |\n| --- | --- |\n| 1 | 2 |\n",
			types: []LineType{LSection, LRow, LRow, LRow},
		},
		{
			// brackets keep the entry open across physical lines
			in:    "[a]\nk = [1,\n  2]\n",
			types: []LineType{LSection, LEntry},
		},
		{
			// '#' inside a quoted string is content, not a comment
			in:    "[a]\nk = \"x#y\"\n",
			types: []LineType{LSection, LEntry},
		},
		{
			in: "[a]\nk = \"oops\n",
			e:  ErrUnterminatedString,
		},
		{
			in: "[a\n",
			e:  ErrUnterminatedSection,
		},
		{
			in: "[a]\nk = [1, 2\n",
			e:  ErrDocBalance,
		},
	}
	for i, st := range sts {
		lines, err := Scan(NewDoc([]byte(st.in)))
		if st.e != nil {
			if !errors.Is(err, st.e) {
				t.Errorf("test %d: got error %v, want %v", i, err, st.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if len(lines) != len(st.types) {
			t.Errorf("test %d: got %d lines, want %d", i, len(lines), len(st.types))
			continue
		}
		for j, ty := range st.types {
			if lines[j].Type != ty {
				t.Errorf("test %d line %d: got %s, want %s", i, j, lines[j].Type, ty)
			}
		}
	}
}

func TestScanContinuationSpans(t *testing.T) {
	lines, err := Scan(NewDoc([]byte("[a]\nk = [1, # first\n  2]\n")))
	if err != nil {
		t.Fatal(err)
	}
	entry := lines[1]
	if len(entry.Spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(entry.Spans))
	}
	if entry.Spans[0].Text != "k = [1," {
		t.Errorf("span 0 = %q", entry.Spans[0].Text)
	}
	if entry.Spans[1].Text != "2]" {
		t.Errorf("span 1 = %q", entry.Spans[1].Text)
	}
}

type cellsTest struct {
	in    string
	cells []string
}

func TestSplitCells(t *testing.T) {
	cts := []cellsTest{
		{in: "| a | b |", cells: []string{"a", "b"}},
		{in: "| a | b", cells: []string{"a", "b"}},
		{in: "|  | b |", cells: []string{"", "b"}},
		{in: "| a\\|b | c |", cells: []string{"a|b", "c"}},
		{in: "| --- | --- |", cells: []string{"---", "---"}},
		{in: "||", cells: []string{""}},
	}
	for i, ct := range cts {
		lines, err := Scan(NewDoc([]byte("[s]\n" + ct.in + "\n")))
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		row := lines[1]
		if len(row.Cells) != len(ct.cells) {
			t.Errorf("test %d: got %d cells, want %d", i, len(row.Cells), len(ct.cells))
			continue
		}
		for j, want := range ct.cells {
			if row.Cells[j].Text != want {
				t.Errorf("test %d cell %d: got %q, want %q", i, j, row.Cells[j].Text, want)
			}
		}
	}
}

// Cell.Off must address the first significant source byte, escaped
// pipes included; for a cell starting with \| that is the backslash.
func TestCellOffsets(t *testing.T) {
	for _, x := range []struct {
		in   string
		offs []int
	}{
		// "[s]\n" occupies offsets 0-3, the row starts at 4
		{in: "| a\\|b | c |", offs: []int{6, 13}},
		{in: "| \\|x | y |", offs: []int{6, 12}},
		{in: "|  x | \\|\\| |", offs: []int{7, 11}},
	} {
		lines, err := Scan(NewDoc([]byte("[s]\n" + x.in + "\n")))
		if err != nil {
			t.Errorf("%q: %v", x.in, err)
			continue
		}
		row := lines[1]
		if len(row.Cells) != len(x.offs) {
			t.Errorf("%q: got %d cells, want %d", x.in, len(row.Cells), len(x.offs))
			continue
		}
		for j, want := range x.offs {
			if row.Cells[j].Off != want {
				t.Errorf("%q cell %d: Off = %d, want %d (%q)",
					x.in, j, row.Cells[j].Off, want, row.Cells[j].Text)
			}
		}
	}
}

func TestLineCol(t *testing.T) {
	doc := NewDoc([]byte("ab\ncd\ne"))
	for _, x := range []struct{ off, line, col int }{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
	} {
		l, c := doc.LineCol(x.off)
		if l != x.line || c != x.col {
			t.Errorf("LineCol(%d) = (%d, %d), want (%d, %d)", x.off, l, c, x.line, x.col)
		}
	}
}
