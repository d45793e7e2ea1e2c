package catalog

import (
	"strings"

	"kondate/internal/models"
)

// Render writes records back out in the exact text format Parse consumes.
// Fields containing commas, quotes or surrounding whitespace are quoted,
// with embedded quotes doubled.
func Render(records []models.MenuRecord) string {
	var b strings.Builder
	b.WriteString(strings.Join(expectedHeader, ","))
	b.WriteByte('\n')
	for _, r := range records {
		b.WriteString(quoteField(r.Name))
		b.WriteByte(',')
		b.WriteString(quoteField(string(r.MainGenre)))
		b.WriteByte(',')
		b.WriteString(quoteField(string(r.Carb)))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteField(s string) string {
	if !strings.ContainsAny(s, `",`) && strings.TrimSpace(s) == s {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
