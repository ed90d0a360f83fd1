package token

import "testing"

func TestNeedsQuote(t *testing.T) {
	for _, x := range []struct {
		in   string
		want bool
	}{
		{"plain", false},
		{"two words", false},
		{"a/b", false},
		{"", true},
		{"true", true},
		{"false", true},
		{"42", true},
		{"-1.5", true},
		{"1a", false},
		{"has=assign", true},
		{"pipe|d", true},
		{"brack[et", true},
		{"a, b", true},
		{"sl//ash", true},
		{" edge", true},
		{"edge\t", true},
		{`quo"te`, true},
	} {
		if got := NeedsQuote(x.in); got != x.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", x.in, got, x.want)
		}
	}
}

func TestQuote(t *testing.T) {
	for _, x := range []struct {
		in, want string
	}{
		{`plain`, `"plain"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
		{``, `""`},
	} {
		if got := Quote(x.in); got != x.want {
			t.Errorf("Quote(%q) = %s, want %s", x.in, got, x.want)
		}
	}
}

func TestQuoteCell(t *testing.T) {
	if got := QuoteCell("a|b"); got != `a\|b` {
		t.Errorf("QuoteCell = %q", got)
	}
}
