package highlighter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joinTokens(h *Highlighter, line string) string {
	var sb strings.Builder
	for _, token := range h.Tokens(line) {
		sb.WriteString(token.Value)
	}
	return sb.String()
}

func TestTokens_CoverLine(t *testing.T) {
	h := New("html", "dracula")

	for _, line := range []string{`<p style="text-align: center">a</p>`, "<h1>b</h1>", `<p><a href="x">y</a></p>`} {
		assert.Equal(t, line, joinTokens(h, line))
	}
	assert.Nil(t, h.Tokens(""))
}

func TestRenderLines_KeepsText(t *testing.T) {
	h := New("html", "unknown-theme-falls-back")
	lines := []string{`<p><a href="https://x.io">x</a></p>`, "", "<h2>t</h2>"}

	rendered := h.RenderLines(lines)

	require.Len(t, rendered, len(lines))
	for i := range lines {
		assert.Equal(t, lines[i], ansi.Strip(rendered[i]))
	}
}

func TestRender_Memoises(t *testing.T) {
	h := New("html", "dracula")

	first := h.Render("<p>same</p>")
	h.RenderLines([]string{"<p>same</p>", "<p>same</p>", "<p>other</p>"})

	assert.Equal(t, first, h.Render("<p>same</p>"))
	assert.Equal(t, 2, h.Cached())

	h.Reset()
	assert.Zero(t, h.Cached())
}

func TestNew_UnknownLanguage(t *testing.T) {
	h := New("no-such-language", "dracula")

	rendered := h.RenderLines([]string{"plain"})
	require.Len(t, rendered, 1)
	assert.Equal(t, "plain", ansi.Strip(rendered[0]))
}
