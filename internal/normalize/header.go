package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// HeaderKey приводит заголовок колонки CSV к ключу словаря синонимов:
// без диакритики, без пробелов по краям, в нижнем регистре, пробелы → "_".
// "Categoría Trab" → "categoria_trab".
func HeaderKey(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(strings.TrimSpace(folded))
	return strings.ReplaceAll(folded, " ", "_")
}
