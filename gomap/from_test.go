package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ion-format/go-ion/parse"
)

type server struct {
	Host    string   `ion:"host"`
	Port    int      `ion:"port"`
	Ratio   float64  `ion:"ratio"`
	Debug   bool     `ion:"debug"`
	Tags    []string `ion:"tags"`
	Limits  limits   `ion:"limits"`
	Secret  string   `ion:"-"`
	ByName  string
	Untyped any `ion:"untyped"`
}

type limits struct {
	Conns int `ion:"conns"`
}

const serverDoc = `[srv]
host = "example.com"
port = 8080
ratio = 0.5
debug = true
tags = [ a, b ]
limits = { conns = 64 }
byname = hello
untyped = [ 1, x ]
`

func TestFromSection(t *testing.T) {
	doc, err := parse.Parse([]byte(serverDoc))
	if err != nil {
		t.Fatal(err)
	}
	var s server
	if err := FromSection(doc.Sections[0], &s); err != nil {
		t.Fatal(err)
	}
	want := server{
		Host:    "example.com",
		Port:    8080,
		Ratio:   0.5,
		Debug:   true,
		Tags:    []string{"a", "b"},
		Limits:  limits{Conns: 64},
		ByName:  "hello",
		Untyped: []any{int64(1), "x"},
	}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestFromValueMap(t *testing.T) {
	doc, err := parse.Parse([]byte("[s]\nv = { a = 1, b = 2 }\n"))
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]int
	if err := FromValue(doc.Sections[0].Get("v"), &m); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(map[string]int{"a": 1, "b": 2}, m); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestFromValueTypeError(t *testing.T) {
	doc, err := parse.Parse([]byte("[s]\nv = \"not a number\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	var n int
	err = FromValue(doc.Sections[0].Get("v"), &n)
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("got %v, want TypeError", err)
	}
}

func TestFromValueFieldError(t *testing.T) {
	doc, err := parse.Parse([]byte("[s]\nv = { conns = big }\n"))
	if err != nil {
		t.Fatal(err)
	}
	var l limits
	err = FromValue(doc.Sections[0].Get("v"), &l)
	var ue *UnmarshalError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want UnmarshalError", err)
	}
	if ue.Field != "conns" {
		t.Errorf("error field = %q", ue.Field)
	}
}

type rate struct {
	Room    string  `ion:"room"`
	Price   float64 `ion:"price"`
	Comment string  `ion:"comment"`
}

func TestFromTable(t *testing.T) {
	doc, err := parse.Parse([]byte(`[rates]
| room | price | comment |
| ---- | ----- | ------- |
| single | 40.0 | cozy |
| double | 60.0 |  |
`))
	if err != nil {
		t.Fatal(err)
	}
	var rs []rate
	if err := FromTable(doc.Sections[0].Table, &rs); err != nil {
		t.Fatal(err)
	}
	want := []rate{
		{Room: "single", Price: 40, Comment: "cozy"},
		{Room: "double", Price: 60},
	}
	if d := cmp.Diff(want, rs); d != "" {
		t.Errorf("(-want +got)\n%s", d)
	}
}

func TestFromValueBadDst(t *testing.T) {
	doc, err := parse.Parse([]byte("[s]\nv = 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	var n int
	if err := FromValue(doc.Sections[0].Get("v"), n); err == nil {
		t.Error("non-pointer destination accepted")
	}
}
