package parse

import "github.com/ion-format/go-ion/ir"

// SectionFilter decides whether a section's parsed content is kept in
// the output document. Filtering is selection only: a filtered-out
// section is still parsed and validated in full.
type SectionFilter func(ir.Path) bool

// DefaultMaxDepth bounds value nesting so adversarial input fails
// with an error instead of exhausting the stack.
const DefaultMaxDepth = 128

type ParseOption func(*parseOpts)

type parseOpts struct {
	filter   SectionFilter
	maxDepth int
}

func Filter(f SectionFilter) ParseOption {
	return func(po *parseOpts) { po.filter = f }
}

func MaxDepth(n int) ParseOption {
	return func(po *parseOpts) { po.maxDepth = n }
}
