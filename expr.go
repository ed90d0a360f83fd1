package ion

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ion-format/go-ion/ir"
	"github.com/ion-format/go-ion/parse"
)

type filterEnv struct {
	Path     string   `expr:"path"`
	Segments []string `expr:"segments"`
}

// FilterExpr compiles src into a section filter. The expression sees
// the candidate section as `path` (the dot-joined string) and
// `segments` (its components), and must yield a boolean:
//
//	FilterExpr(`path startsWith "deploy." or "test" in segments`)
//
// Sections the expression rejects are still parsed and validated,
// but left out of the resulting document.
func FilterExpr(src string) (parse.SectionFilter, error) {
	prog, err := expr.Compile(src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling section filter: %w", err)
	}
	return func(p ir.Path) bool {
		out, err := vm.Run(prog, filterEnv{
			Path:     p.String(),
			Segments: []string(p),
		})
		if err != nil {
			return false
		}
		b, _ := out.(bool)
		return b
	}, nil
}
