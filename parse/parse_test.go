package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ion-format/go-ion/ir"
)

const menuDoc = `# lunch service
[CONTRACT]
id = 17
client = "ACME Corp"

[CONTRACT.rates]
rooms = [ single, double ]
| room   | weekday | price |
| ------ | ------- | ----- |
| single | mon     | 40.0  |
| double | mon     | 60.0  |

[MEAL] // per-day defaults
breakfast = { start = "07:00", buffet = true }
`

func TestParseDocument(t *testing.T) {
	doc, err := Parse([]byte(menuDoc))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 3 {
		t.Fatalf("got %d sections, want 3", doc.Len())
	}
	c, err := doc.Fetch("CONTRACT")
	if err != nil {
		t.Fatal(err)
	}
	if v := c.Get("id"); v == nil || v.Int64 != 17 {
		t.Errorf("CONTRACT.id = %v", v)
	}
	if v := c.Get("client"); v == nil || v.Str != "ACME Corp" {
		t.Errorf("CONTRACT.client = %v", v)
	}

	rates, err := doc.Fetch("CONTRACT.rates")
	if err != nil {
		t.Fatal(err)
	}
	wantTable := &ir.Table{
		Columns: []string{"room", "weekday", "price"},
		Rows: [][]*ir.Value{
			{ir.FromString("single"), ir.FromString("mon"), ir.FromFloat(40)},
			{ir.FromString("double"), ir.FromString("mon"), ir.FromFloat(60)},
		},
	}
	if d := cmp.Diff(wantTable, rates.Table); d != "" {
		t.Errorf("rates table (-want +got)\n%s", d)
	}

	meal, err := doc.Fetch("MEAL")
	if err != nil {
		t.Fatal(err)
	}
	b := meal.Get("breakfast")
	if b == nil || b.Kind != ir.DictKind {
		t.Fatalf("MEAL.breakfast = %v", b)
	}
	if v := ir.Get(b, "buffet"); v == nil || !v.Bool {
		t.Errorf("breakfast.buffet = %v", v)
	}
}

func TestParseNumeralKeys(t *testing.T) {
	doc, err := Parse([]byte("[rooms]\n75042 = { view = \"SV\", loc = [ \"M\", \"B\" ] }\n"))
	if err != nil {
		t.Fatal(err)
	}
	v, err := doc.Sections[0].Fetch("75042")
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromFields([]ir.Field{
		{Key: "view", Value: ir.FromString("SV")},
		{Key: "loc", Value: ir.FromValues([]*ir.Value{
			ir.FromString("M"), ir.FromString("B"),
		})},
	})
	if d := cmp.Diff(want, v); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestParseEmptyish(t *testing.T) {
	for _, in := range []string{
		"",
		"\n\n",
		"# only a comment\n",
		"// another\n\n# and one more",
	} {
		doc, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if doc.Len() != 0 {
			t.Errorf("%q: got %d sections, want 0", in, doc.Len())
		}
	}
}

type parseErrTest struct {
	name string
	in   string
	e    error
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{
			name: "content before first header",
			in:   "k = 1\n[a]\n",
			e:    ErrStructural,
		},
		{
			name: "row before first header",
			in:   "| a |\n| --- |\n[a]\n",
			e:    ErrStructural,
		},
		{
			name: "duplicate field",
			in:   "[a]\nk = 1\nk = 2\n",
			e:    ErrStructural,
		},
		{
			name: "second table block",
			in:   "[a]\n| x |\n| --- |\nk = 1\n| y |\n| --- |\n",
			e:    ErrStructural,
		},
		{
			name: "second table block after blank line",
			in:   "[a]\n| x |\n| --- |\n| 1 |\n\n| y |\n| --- |\n| 2 |\n",
			e:    ErrStructural,
		},
		{
			name: "blank line inside a table",
			in:   "[a]\n| x |\n| --- |\n\n| 1 |\n",
			e:    ErrStructural,
		},
		{
			name: "comment line inside a table",
			in:   "[a]\n| x |\n| --- |\n# break\n| 1 |\n",
			e:    ErrStructural,
		},
		{
			name: "bad section path",
			in:   "[a..b]\n",
			e:    ErrSyntax,
		},
		{
			name: "bad key",
			in:   "[a]\nbad key = 1\n",
			e:    ErrSyntax,
		},
		{
			name: "missing assign",
			in:   "[a]\njust a string\n",
			e:    ErrSyntax,
		},
		{
			name: "unterminated header",
			in:   "[a\nk = 1\n",
			e:    ErrSyntax,
		},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if !errors.Is(err, pt.e) {
			t.Errorf("%s: got %v, want %v", pt.name, err, pt.e)
		}
	}
}

func TestParseDuplicateSections(t *testing.T) {
	doc, err := Parse([]byte("[a]\nk = 1\n[a]\nk = 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 2 {
		t.Fatalf("got %d sections, want 2", doc.Len())
	}
	if v := doc.Lookup("a").Get("k"); v.Int64 != 1 {
		t.Errorf("Lookup returned k = %d, want the first section", v.Int64)
	}
	all := doc.All("a")
	if len(all) != 2 || all[1].Get("k").Int64 != 2 {
		t.Errorf("All = %v", all)
	}
}

func TestParseFilter(t *testing.T) {
	in := "[a]\nk = 1\n[b]\nk = 2\n[a.sub]\nk = 3\n"
	keepB := func(p ir.Path) bool { return p.String() == "b" }
	doc, err := Parse([]byte(in), Filter(keepB))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 1 || doc.Sections[0].Path.String() != "b" {
		t.Fatalf("filtered doc = %v", doc.Sections)
	}

	// document order survives filtering
	keepA := func(p ir.Path) bool { return p[0] == "a" }
	doc, err = Parse([]byte(in), Filter(keepA))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Len() != 2 ||
		doc.Sections[0].Path.String() != "a" ||
		doc.Sections[1].Path.String() != "a.sub" {
		t.Fatalf("filtered doc = %v", doc.Sections)
	}
}

func TestParseFilterStillValidates(t *testing.T) {
	// a filtered-out section with a malformed entry still fails
	in := "[skip]\nbad key = 1\n[keep]\nk = 2\n"
	none := func(ir.Path) bool { return false }
	if _, err := Parse([]byte(in), Filter(none)); !errors.Is(err, ErrSyntax) {
		t.Errorf("got %v, want syntax error from filtered section", err)
	}
}
