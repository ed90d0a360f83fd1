package ir

import "testing"

func TestParsePath(t *testing.T) {
	for _, x := range []struct {
		in   string
		want string
		bad  bool
	}{
		{in: "a", want: "a"},
		{in: "a.b.c", want: "a.b.c"},
		{in: " a . b ", want: "a.b"},
		{in: "DEF.MEAL-2_x", want: "DEF.MEAL-2_x"},
		{in: "42", want: "42"},
		{in: "", bad: true},
		{in: "a..b", bad: true},
		{in: ".a", bad: true},
		{in: "a.", bad: true},
		{in: "a b.c", bad: true},
		{in: "a[0]", bad: true},
	} {
		p, err := ParsePath(x.in)
		if x.bad {
			if err == nil {
				t.Errorf("ParsePath(%q) = %v, want error", x.in, p)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePath(%q): %v", x.in, err)
			continue
		}
		if p.String() != x.want {
			t.Errorf("ParsePath(%q) = %q, want %q", x.in, p, x.want)
		}
	}
}

func TestPathRelations(t *testing.T) {
	a := Path{"a", "b"}
	if !a.Equal(Path{"a", "b"}) {
		t.Error("Equal")
	}
	if a.Equal(Path{"a"}) || a.Equal(Path{"a", "c"}) {
		t.Error("Equal false positives")
	}
	if !a.HasPrefix(Path{"a"}) || !a.HasPrefix(a) {
		t.Error("HasPrefix")
	}
	// prefix is segment-wise, DEF is not a prefix of DEFG
	if (Path{"DEFG"}).HasPrefix(Path{"DEF"}) {
		t.Error("HasPrefix matched a partial segment")
	}
}
