package token

import "strings"

// NeedsQuote reports whether a string, written bare, would parse back
// as something other than the same string.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, "\"\\[]{}=,#\n|") {
		return true
	}
	if strings.Contains(v, "//") {
		return true
	}
	if v[0] == ' ' || v[0] == '\t' || v[len(v)-1] == ' ' || v[len(v)-1] == '\t' {
		return true
	}
	switch v {
	case "true", "false":
		return true
	}
	return looksNumeric(v)
}

func looksNumeric(v string) bool {
	s := v
	if s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-':
		default:
			return false
		}
	}
	return s[0] >= '0' && s[0] <= '9'
}

// Quote renders v as a quoted Ion string. Only '\\' and '"' have
// escape sequences in the format.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		default:
			d = append(d, v[i])
		}
	}
	d = append(d, '"')
	return string(d)
}

// QuoteCell renders v for use inside a table cell, escaping pipes so
// they are not read as column separators.
func QuoteCell(v string) string {
	return strings.ReplaceAll(v, "|", "\\|")
}
