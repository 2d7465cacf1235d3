package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// quita marcas diacríticas tras descomponer (NFD) y recompone (NFC).
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza un texto para búsqueda: minúsculas y sin tildes,
// de modo que "Camión" coincide con "camion".
func Fold(s string) string {
	if s == "" {
		return ""
	}
	out, _, err := transform.String(folder, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
