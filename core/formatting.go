package core

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/net/html"
)

// Sanitizer cleans markup before it is written back to a surface.
type Sanitizer func(markup string) string

// CountWords returns the number of whitespace-delimited tokens in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountCharacters returns the number of user-perceived characters in text,
// whitespace included.
func CountCharacters(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// StripHTML returns the text content of markup, dropping every tag.
func StripHTML(markup string) string {
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input; either way the text so far is the result.
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		}
	}
}

// SanitizeHTML is the default Sanitizer. It returns markup unchanged: content
// held in history is not safe to re-inject into an untrusted renderer unless
// a real Sanitizer is installed with WithSanitizer.
func SanitizeHTML(markup string) string {
	return markup
}
