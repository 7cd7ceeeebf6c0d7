package extract

import (
	"encoding/json"

	"github.com/PuerkitoBio/goquery"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/jsontree"
)

// ResolvePrice resolves the product price as a canonical two-decimal string.
// Data-attributes go first: some stores only render the visible price
// client-side, but ship it inline as JSON. An exhausted cascade yields the
// empty string, the canonical "no price" value throughout this codebase.
func ResolvePrice(p *Page) (value, source string) {
	c := Cascade{
		{Source: "data-attribute", Run: priceFromDataAttrs},
		{Source: "selector", Run: priceFromSelectors},
		{Source: "structured-data", Run: priceFromOffers},
		{Source: "framework-state", Run: priceFromState},
		{Source: "page-text", Run: priceFromText},
	}
	return c.Resolve(p)
}

// priceFromDataAttrs reads the profile's data-attribute carriers. Attributes
// either hold a bare number or an inline JSON object with a price field
// somewhere inside (e.g. data-sku-obj).
func priceFromDataAttrs(p *Page) (string, error) {
	for _, attr := range p.Profile.PriceAttrs {
		var found string
		p.Doc.Find("[" + attr + "]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			raw, ok := s.Attr(attr)
			if !ok || raw == "" {
				return true
			}
			if price := priceFromRawAttr(raw); price != "" {
				found = price
				return false
			}
			return true
		})
		if found != "" {
			return found, nil
		}
	}
	return "", ErrNoMatch
}

func priceFromRawAttr(raw string) string {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
		if _, isObj := decoded.(map[string]any); isObj {
			return NormalizeNumber(jsontree.FirstString(decoded, "price", "bestPrice"))
		}
	}
	return NormalizeNumber(raw)
}

func priceFromSelectors(p *Page) (string, error) {
	for _, sel := range p.Profile.PriceSelectors {
		var found string
		p.Doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if price := ParsePrice(Clean(s.Text())); price != "" {
				found = price
				return false
			}
			return true
		})
		if found != "" {
			return found, nil
		}
	}
	return "", ErrNoMatch
}

// priceFromOffers reads the JSON-LD offers block: a single offer object or
// the first priced entry of an offer array.
func priceFromOffers(p *Page) (string, error) {
	if p.Product == nil {
		return "", ErrNoMatch
	}
	switch offers := p.Product["offers"].(type) {
	case map[string]any:
		if price := NormalizeNumber(jsontree.Stringify(offers["price"])); price != "" {
			return price, nil
		}
	case []any:
		for _, o := range offers {
			obj, ok := o.(map[string]any)
			if !ok {
				continue
			}
			if price := NormalizeNumber(jsontree.Stringify(obj["price"])); price != "" {
				return price, nil
			}
		}
	}
	// Offer-typed blocks carry the price at the top level.
	if price := NormalizeNumber(jsontree.Stringify(p.Product["price"])); price != "" {
		return price, nil
	}
	return "", ErrNoMatch
}

func priceFromState(p *Page) (string, error) {
	if p.State == nil {
		return "", ErrNoMatch
	}
	raw := jsontree.FirstString(p.State, "bestPrice", "sellingPrice", "price", "Price")
	if price := NormalizeNumber(raw); price != "" {
		return price, nil
	}
	return "", ErrNoMatch
}

func priceFromText(p *Page) (string, error) {
	if price := ParsePrice(p.Text()); price != "" {
		return price, nil
	}
	return "", ErrNoMatch
}
