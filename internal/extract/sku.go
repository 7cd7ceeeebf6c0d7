package extract

import (
	"regexp"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/jsontree"
)

// refPattern finds label-anchored reference codes ("Ref.: ABC-123",
// "Referência: 10045678") in page text.
var refPattern = regexp.MustCompile(`(?i)(?:Ref\.?|Refer[eê]ncia)[:\s]+([A-Z0-9\-./]+)`)

// ResolveSKU resolves the SKU from a candidate list built in priority order.
// The URL slug is the terminal fallback, so the result is non-empty for any
// non-empty product URL.
func ResolveSKU(p *Page) (value, source string) {
	c := Cascade{
		{Source: "ref-label", Run: skuFromRefLabel},
		{Source: "structured-data", Run: skuFromStructured},
		{Source: "framework-state", Run: skuFromState},
		{Source: "meta-tag", Run: skuFromMeta},
		{Source: "url-segment", Run: skuFromPenultimateSegment},
		{Source: "url-slug", Run: skuFromLastSegment},
	}
	return c.Resolve(p)
}

func skuFromRefLabel(p *Page) (string, error) {
	if m := refPattern.FindStringSubmatch(p.Text()); m != nil {
		return m[1], nil
	}
	return "", ErrNoMatch
}

func skuFromStructured(p *Page) (string, error) {
	if p.Product == nil {
		return "", ErrNoMatch
	}
	if sku := Clean(jsontree.Stringify(p.Product["sku"])); sku != "" {
		return sku, nil
	}
	return "", ErrNoMatch
}

func skuFromState(p *Page) (string, error) {
	if p.State == nil {
		return "", ErrNoMatch
	}
	sku := jsontree.FirstString(p.State, "sku", "skuId", "productId", "itemId", "productReference")
	if sku = Clean(sku); sku != "" {
		return sku, nil
	}
	return "", ErrNoMatch
}

func skuFromMeta(p *Page) (string, error) {
	content, ok := p.Doc.Find(`meta[itemprop="sku"]`).First().Attr("content")
	if ok {
		if sku := Clean(content); sku != "" {
			return sku, nil
		}
	}
	return "", ErrNoMatch
}

// skuFromPenultimateSegment covers /p/{sku}/{product-slug} URL layouts.
func skuFromPenultimateSegment(p *Page) (string, error) {
	segments := p.PathSegments()
	if len(segments) >= 2 {
		return segments[len(segments)-2], nil
	}
	return "", ErrNoMatch
}

// skuFromLastSegment is the terminal strategy. A URL with no path segments
// still yields its host, so any non-empty URL produces a non-empty SKU.
func skuFromLastSegment(p *Page) (string, error) {
	segments := p.PathSegments()
	if len(segments) >= 1 {
		return segments[len(segments)-1], nil
	}
	if host := p.URL.Host; host != "" {
		return host, nil
	}
	return "", ErrNoMatch
}
