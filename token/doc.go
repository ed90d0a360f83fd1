// Package token turns raw Ion document text into a stream of logical
// lines with retained source positions.
//
// A logical line is a section header, an assignment (possibly spanning
// several physical lines while brackets are unbalanced), or a table
// row. Comments and blank lines are discarded here.
package token
