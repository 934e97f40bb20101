package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFromHTML_StripsNoise(t *testing.T) {
	html := `<html><head><style>body{color:red}</style></head>
<body>
<nav>Home | About</nav>
<script>track();</script>
<h1>Jane Doe</h1>
<p>Senior Engineer at Acme.</p>
<footer>© 2026</footer>
</body></html>`

	text, err := TextFromHTML(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer at Acme.")
	assert.NotContains(t, text, "track()")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "© 2026")
}

func TestFromUpload_PlainTextPassesThrough(t *testing.T) {
	text, err := FromUpload("text/plain", []byte("  Jane Doe  \n\n\n  Engineer  "))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\n\nEngineer", text)
}

func TestFromUpload_EmptyContentTypeTreatedAsText(t *testing.T) {
	text, err := FromUpload("", []byte("raw text"))
	require.NoError(t, err)
	assert.Equal(t, "raw text", text)
}

func TestFromUpload_HTMLStripped(t *testing.T) {
	text, err := FromUpload("text/html; charset=utf-8", []byte("<body><p>Hello</p></body>"))
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)
}

func TestFromUpload_UnsupportedContentType(t *testing.T) {
	_, err := FromUpload("application/pdf", []byte{0x25, 0x50})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestCollapseWhitespace(t *testing.T) {
	in := "  a   b  \n\n\n\nc\n   \nd  "
	assert.Equal(t, "a b\n\nc\n\nd", CollapseWhitespace(in))
}
