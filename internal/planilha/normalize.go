package planilha

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold decompõe acentos (NFKD) e descarta o que não for ASCII.
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
})))

// Normalize reduz um texto para comparação de rótulos: remove acentos,
// descarta caracteres não ASCII e converte para minúsculas. Toda comparação
// de conteúdo das planilhas passa por aqui.
func Normalize(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(folded)
}
