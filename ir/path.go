package ir

import (
	"fmt"
	"strings"
)

// Path identifies a section by its dot-separated segments, e.g.
// DEF.MEAL. Segments share a prefix only nominally; DEF and DEF.MEAL
// are unrelated sections.
type Path []string

// ParsePath splits a dot path into segments, trimming each and
// requiring every segment to be a bare identifier.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		seg := strings.TrimSpace(part)
		if !IsIdent(seg) {
			return nil, fmt.Errorf("invalid path segment %q in %q", part, s)
		}
		p = append(p, seg)
	}
	return p, nil
}

// IsIdent reports whether s is a bare identifier: one or more of
// [A-Za-z0-9_-]. Bare numerals are identifiers too.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_' || c == '-':
		default:
			return false
		}
	}
	return true
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether q is a segment-wise prefix of p.
func (p Path) HasPrefix(q Path) bool {
	if len(q) > len(p) {
		return false
	}
	for i := range q {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}
