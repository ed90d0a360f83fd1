package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/ion-format/go-ion/ir"
)

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	FieldColor
	ValueColor
	SepColor
)

type colorKey struct {
	Kind ir.Kind
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[colorKey]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[colorKey]func(string, ...any) string{},
	}
	for _, k := range ir.Kinds() {
		colors.Map[colorKey{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
		colors.Map[colorKey{Kind: k, Attr: HeaderColor}] = color.RGB(196, 96, 16).SprintfFunc()
		colors.Map[colorKey{Kind: k, Attr: FieldColor}] = color.RGB(128, 168, 196).SprintfFunc()
	}
	key := colorKey{Attr: ValueColor}

	key.Kind = ir.StringKind
	colors.Map[key] = color.RGB(8, 196, 16).SprintfFunc()
	key.Kind = ir.IntKind
	colors.Map[key] = color.RGB(128, 216, 236).SprintfFunc()
	key.Kind = ir.FloatKind
	colors.Map[key] = color.RGB(128, 216, 236).SprintfFunc()
	key.Kind = ir.BoolKind
	colors.Map[key] = color.CyanString
	key.Kind = ir.EmptyKind
	colors.Map[key] = color.RGB(96, 96, 96).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Get(k colorKey) func(string, ...any) string {
	f := c.Map[k]
	if f == nil {
		return c.Default
	}
	return f
}
