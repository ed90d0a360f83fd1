package parse

import "errors"

// The three error kinds of the format. Every parse failure wraps
// exactly one of them; all are fatal to the whole document.
var (
	ErrSyntax     = errors.New("syntax error")
	ErrStructural = errors.New("structural error")
	ErrRange      = errors.New("numeric range error")
)
