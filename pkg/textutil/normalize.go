package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza um termo para busca: minúsculas e sem diacríticos.
// "Dipirona Sódica" -> "dipirona sodica". Usado no filtro ?search= do catálogo,
// já que nomes comerciais em português carregam acentos de forma inconsistente.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
