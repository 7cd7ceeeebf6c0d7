package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
)

func newTestPage(t *testing.T, rawURL, html string, profile *site.Profile) *Page {
	t.Helper()
	p, err := NewPage(rawURL, strings.NewReader(html), profile)
	require.NoError(t, err)
	return p
}

func TestExtractFromStructuredData(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">
			{"@type":"Product","name":"Blusa X","sku":"360125377",
			 "description":"Blusa em crochê. Composição: 80% POLIAMIDA 20% ELASTANO.",
			 "brand":{"@type":"Brand","name":"Colcci"},
			 "offers":{"@type":"Offer","price":"129.9"}}
		</script>
	</head><body><h1>Blusa X</h1></body></html>`

	p := newTestPage(t, "https://www.colcci.com.br/blusa-x-p2450047", html, site.Colcci)
	f := Extract(p)

	assert.Equal(t, "Blusa X", f.Name)
	assert.Equal(t, "structured-data", f.NameSource)
	assert.Equal(t, "129.90", f.Price)
	assert.Equal(t, "360125377", f.SKU)
	assert.Equal(t, "Colcci", f.Brand)
	assert.Contains(t, f.Description, "POLIAMIDA")
	assert.Equal(t, []string{SingleSize}, f.Sizes)
}

func TestExtractEmptyPageNeverEmptyNameOrSKU(t *testing.T) {
	p := newTestPage(t, "https://www.example.com/p/991122/produto-misterioso",
		`<html><body></body></html>`, site.Generic)
	f := Extract(p)

	assert.Equal(t, "produto misterioso", f.Name)
	assert.Equal(t, "991122", f.SKU)
	assert.Equal(t, "", f.Price)
	assert.Equal(t, []string{SingleSize}, f.Sizes)
	assert.Empty(t, f.Images)
}
