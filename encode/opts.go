// Package encode renders Ion documents back to text, optionally in
// color, and projects them to JSON or YAML.
package encode

type EncodeOption func(*EncState)

type EncState struct {
	colors *Colors
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

func (es *EncState) paint(k colorKey, s string) string {
	if es.colors == nil {
		return s
	}
	return es.colors.Get(k)(s)
}
