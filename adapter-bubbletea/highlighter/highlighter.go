// Package highlighter colours block markup for the source view.
package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Rendered lines kept before the memo is dropped.
const maxCachedLines = 4096

// Highlighter renders one line of markup at a time. Every line the source
// view shows is the complete markup of one block, so lines are lexed
// independently and memoised by their text: editing a block re-lexes only
// that block.
type Highlighter struct {
	lexer  chroma.Lexer
	style  *chroma.Style
	mu     sync.Mutex
	lines  map[string]string
	styles map[chroma.TokenType]lipgloss.Style
}

// New creates a highlighter for a chroma language and style. Unknown names
// fall back to plain text and the default style.
func New(language string, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:  chroma.Coalesce(lexer),
		style:  styles.Get(theme),
		lines:  make(map[string]string),
		styles: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Reset drops every memoised line.
func (h *Highlighter) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = make(map[string]string)
}

// Tokens lexes a single line. A lexer failure yields no tokens.
func (h *Highlighter) Tokens(line string) []chroma.Token {
	if line == "" {
		return nil
	}

	iterator, err := h.lexer.Tokenise(nil, line)
	if err != nil {
		return nil
	}

	var tokens []chroma.Token
	for _, token := range iterator.Tokens() {
		// lexers may terminate the input with a newline
		token.Value = strings.TrimRight(token.Value, "\n")
		if token.Value != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Render returns line with its tokens styled, or line itself when the lexer
// produced nothing.
func (h *Highlighter) Render(line string) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rendered, ok := h.lines[line]; ok {
		return rendered
	}

	tokens := h.Tokens(line)
	rendered := line
	if len(tokens) > 0 {
		var sb strings.Builder
		for _, token := range tokens {
			sb.WriteString(h.tokenStyle(token.Type).Render(token.Value))
		}
		rendered = sb.String()
	}

	if len(h.lines) >= maxCachedLines {
		h.lines = make(map[string]string)
	}
	h.lines[line] = rendered

	return rendered
}

func (h *Highlighter) RenderLines(lines []string) []string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = h.Render(line)
	}
	return rendered
}

// tokenStyle converts a chroma style entry to lipgloss. Callers hold mu.
func (h *Highlighter) tokenStyle(tokenType chroma.TokenType) lipgloss.Style {
	if style, ok := h.styles[tokenType]; ok {
		return style
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.styles[tokenType] = style
	return style
}

// Cached reports how many lines are memoised.
func (h *Highlighter) Cached() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.lines)
}
