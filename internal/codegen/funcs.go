package codegen

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/jmylchreest/colourgen/internal/colour"
)

// templateFuncs returns the functions available to the artifact templates.
func templateFuncs(prefix string) template.FuncMap {
	return template.FuncMap{
		"ident": func(c colour.Colour) string {
			return c.Ident(prefix)
		},
		"cfloat":  formatFloat,
		"cstring": quoteC,
	}
}

// formatFloat renders v as the shortest decimal that round-trips, always
// with a fractional part or exponent so C reads it as a floating constant.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

// quoteC returns s as a C string literal.
func quoteC(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
