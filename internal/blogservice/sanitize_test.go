package blogservice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeMarkdown(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no script tag",
			input: "Hello, World!",
			want:  "Hello, World!",
		},
		{
			name:  "script tag",
			input: "<script>alert('Hello, World!');</script>",
			want:  "",
		},
		{
			name:  "multiple script tags",
			input: "Here is some text.\n<script>alert('Hello, world!');</script>\nMore text.\n<SCRIPT SRC=\"evil.js\"></SCRIPT>",
			want:  "Here is some text.\n\nMore text.\n",
		},
		{
			name:  "script spanning lines",
			input: "before<script>\nalert(1);\n</script>after",
			want:  "beforeafter",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output := sanitizeMarkdown(tc.input)
			assert.Equal(t, tc.want, output)
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := renderMarkdown("# Title\n\nSome **bold** text and https://example.com\n\n<div>raw</div>")
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, `<a href="https://example.com">https://example.com</a>`)
	assert.NotContains(t, html, "<div>raw</div>")
}

func TestEstimateReadTime(t *testing.T) {
	testCases := []struct {
		words int
		want  string
	}{
		{words: 0, want: "1 min read"},
		{words: 10, want: "1 min read"},
		{words: 200, want: "1 min read"},
		{words: 201, want: "2 min read"},
		{words: 1000, want: "5 min read"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tc.words))
			assert.Equal(t, tc.want, estimateReadTime(content))
		})
	}
}
