package tools

import (
	"strings"
	"unicode"
)

const downloadPrefixRunes = 20

// DownloadFileName builds the attachment name for a generated image from the
// first runes of its prompt.
func DownloadFileName(prompt string, ext string) string {
	r := []rune(strings.TrimSpace(prompt))
	if len(r) > downloadPrefixRunes {
		r = r[:downloadPrefixRunes]
	}
	var b strings.Builder
	for _, c := range r {
		switch {
		case unicode.IsSpace(c):
			b.WriteRune('_')
		case unicode.IsLetter(c), unicode.IsDigit(c), c == '-', c == '_':
			b.WriteRune(c)
		}
	}
	name := b.String()
	if name == "" {
		name = "image"
	}
	if ext == "" {
		ext = "png"
	}
	return "imagen_" + name + "." + strings.TrimPrefix(ext, ".")
}
