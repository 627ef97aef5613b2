package qs

import "strings"

// Escaper percent-encodes a single value for safe inclusion in a query
// string. Serialization delegates every value to this capability; the model
// itself never defines an encoding table.
type Escaper interface {
	Escape(value string) string
}

// QueryEscaper is the default Escaper. It percent-encodes a value per the
// RFC 3986 query component rules: unreserved characters and the sub-delims
// legal inside a query value pass through, while characters significant to
// the query grammar itself ('&', '=', '+', '#') and everything else are
// encoded. Spaces become %20, and commas survive unescaped so sort values
// like "country,asc" keep their shape.
//
// Note url.QueryEscape is not usable here: it encodes spaces as "+" and
// escapes commas.
type QueryEscaper struct{}

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes value as a query-parameter value.
func (QueryEscaper) Escape(value string) string {
	escaped := 0
	for i := 0; i < len(value); i++ {
		if !queryParamSafe(value[i]) {
			escaped++
		}
	}
	if escaped == 0 {
		return value
	}

	var sb strings.Builder
	sb.Grow(len(value) + 2*escaped)
	for i := 0; i < len(value); i++ {
		c := value[i]
		if queryParamSafe(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&0xf])
	}
	return sb.String()
}

// queryParamSafe reports whether c may appear literally in a
// query-parameter value.
func queryParamSafe(c byte) bool {
	if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
		return true
	}
	switch c {
	case '-', '.', '_', '~': // unreserved
		return true
	case '!', '$', '\'', '(', ')', '*', ',', ';', ':', '@', '/', '?':
		// sub-delims and pchar extras; '&', '=' and '+' stay escaped since
		// they are significant to the query grammar
		return true
	}
	return false
}

// EscaperFunc adapts a plain function to the Escaper interface.
type EscaperFunc func(value string) string

// Escape calls the wrapped function.
func (f EscaperFunc) Escape(value string) string {
	return f(value)
}
