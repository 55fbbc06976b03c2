package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarkdown = `# Annual report 2019

Revenue **grew** during the year, see [details](https://example.com/d).

## Segments

- Hardware
- Services

1. First
2. Second

` + "```" + `
total = hw + services
` + "```" + `

Closing remarks.
`

func TestRenderPDF(t *testing.T) {
	b, err := renderPDF(testMarkdown)
	require.NoError(t, err)
	require.True(t, len(b) > 100, "suspiciously small pdf: %d bytes", len(b))
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestRenderPDF_empty(t *testing.T) {
	b, err := renderPDF("")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{line: "# Title", want: 1},
		{line: "## Sub", want: 2},
		{line: "###### Deep", want: 6},
		{line: "plain", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, headingLevel(tt.line))
		})
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bold",
			text: "Revenue **grew** fast",
			want: "Revenue grew fast",
		},
		{
			name: "underscore bold",
			text: "__strong__ words",
			want: "strong words",
		},
		{
			name: "italic",
			text: "a *quiet* word",
			want: "a quiet word",
		},
		{
			name: "inline code",
			text: "run `tenkit download` first",
			want: "run tenkit download first",
		},
		{
			name: "link keeps text",
			text: "see [the filing](https://example.com/f) here",
			want: "see the filing here",
		},
		{
			name: "asterisk inside math untouched",
			text: "2*3 and 4*5",
			want: "2*3 and 4*5",
		},
		{
			name: "plain",
			text: "nothing to strip",
			want: "nothing to strip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanInlineMarkdown(tt.text))
		})
	}
}
