package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	regcgoquery "github.com/tkarwowski/regcheck/goquery"
)

func TestTextScraper_ScrapeText(t *testing.T) {
	t.Parallel()

	html := `
		<html><body>
			<header>Site banner</header>
			<nav><li>Home</li><li>Rules</li></nav>
			<h1>Companies Regulations</h1>
			<p>Every company must maintain a registered office.</p>
			<script>trackPageView()</script>
			<ul><li>Rule 12.1 applies to all entities.</li></ul>
			<footer>Copyright</footer>
		</body></html>`

	s := regcgoquery.NewTextScraper()

	text, err := s.ScrapeText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Companies Regulations")
	assert.Contains(t, text, "registered office")
	assert.Contains(t, text, "Rule 12.1")
	assert.NotContains(t, text, "Site banner")
	assert.NotContains(t, text, "trackPageView")
	assert.NotContains(t, text, "Copyright")
}

func TestTextScraper_ScrapeText_NoBlockElements(t *testing.T) {
	t.Parallel()

	s := regcgoquery.NewTextScraper()

	text, err := s.ScrapeText(`<html><body>bare text</body></html>`)

	require.NoError(t, err)
	assert.Equal(t, "bare text", text)
}
