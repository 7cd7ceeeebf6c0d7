package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
)

func TestCollectImages(t *testing.T) {
	html := `<html><body>
		<img src="/media/123-45_frente.jpg">
		<img src="data:image/png;base64,iVBORw0KG">
		<img src="/assets/blank.jpg">
		<img data-src="/media/123-45_verso.jpg&width=200&height=200">
		<img src="/media/123-45_frente.jpg">
		<img src="/media/banner-institucional.jpg">
	</body></html>`
	p := newTestPage(t, "https://www.colcci.com.br/blusa-123-45", html, site.Colcci)

	urls := CollectImages(p, "123-45")
	assert.Equal(t, []string{
		"https://www.colcci.com.br/media/123-45_frente.jpg",
		"https://www.colcci.com.br/media/123-45_verso.jpg",
	}, urls)
}

func TestCollectImagesSKUFilter(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 4; i++ {
		fmt.Fprintf(&b, `<img src="/media/outro_%d.jpg">`, i)
	}
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&b, `<img src="/media/55001_%d.jpg">`, i)
	}
	b.WriteString("</body></html>")
	p := newTestPage(t, "https://www.example.com/produto-55001", b.String(), site.Generic)

	urls := CollectImages(p, "55001")
	assert.Len(t, urls, 3)
	for _, u := range urls {
		assert.Contains(t, u, "55001")
	}
}

func TestCollectImagesFilterFallback(t *testing.T) {
	html := `<html><body>
		<img src="/media/foto_1.jpg">
		<img src="/media/foto_2.jpg">
	</body></html>`
	p := newTestPage(t, "https://www.example.com/produto-9999", html, site.Generic)

	// No URL carries the SKU; the unfiltered list is kept.
	urls := CollectImages(p, "9999")
	assert.Equal(t, []string{
		"https://www.example.com/media/foto_1.jpg",
		"https://www.example.com/media/foto_2.jpg",
	}, urls)
}

func TestCollectImagesCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, `<img src="/media/sku77_%d.jpg">`, i)
	}
	b.WriteString("</body></html>")
	p := newTestPage(t, "https://www.example.com/produto-sku77", b.String(), site.Generic)

	assert.Len(t, CollectImages(p, "sku77"), MaxImages)
}

func TestCollectImagesSrcset(t *testing.T) {
	html := `<html><body>
		<img srcset="/media/abc_small.jpg 1x, /media/abc_large.jpg 2x">
	</body></html>`
	p := newTestPage(t, "https://www.example.com/produto-abc", html, site.Generic)

	urls := CollectImages(p, "abc")
	assert.Equal(t, []string{"https://www.example.com/media/abc_large.jpg"}, urls)
}

func TestParseSrcset(t *testing.T) {
	testCases := []struct {
		name   string
		srcset string
		want   string
	}{
		{"density", "/a.jpg 1x, /b.jpg 2x", "/b.jpg"},
		{"width", "/small.jpg 320w, /big.jpg 1280w", "/big.jpg"},
		{"unordered", "/b.jpg 3x, /a.jpg 1x", "/b.jpg"},
		{"bare url", "/only.jpg", "/only.jpg"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseSrcset(tc.srcset))
		})
	}
}
