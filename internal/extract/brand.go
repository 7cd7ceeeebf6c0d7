package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/jsontree"
)

var (
	brandLabel     = regexp.MustCompile(`\bMarca\b`)
	brandRemainder = regexp.MustCompile(`(?i)Marca\s*[:\-]\s*(.+)`)
)

// ResolveBrand resolves the brand: structured data, a "Marca" label in the
// spec table, a known-brand match against the product name, then the
// profile's default brand.
func ResolveBrand(p *Page, name string) (value, source string) {
	c := Cascade{
		{Source: "structured-data", Run: brandFromStructured},
		{Source: "label", Run: brandFromLabel},
		{Source: "known-brands", Run: func(p *Page) (string, error) {
			return brandFromKnownList(p, name)
		}},
	}
	if v, src := c.Resolve(p); v != "" {
		return v, src
	}
	return p.Profile.DefaultBrand, "default"
}

func brandFromStructured(p *Page) (string, error) {
	if p.Product == nil {
		return "", ErrNoMatch
	}
	switch b := p.Product["brand"].(type) {
	case map[string]any:
		if name := Clean(jsontree.Stringify(b["name"])); name != "" {
			return name, nil
		}
	case string:
		if name := Clean(b); name != "" {
			return name, nil
		}
	}
	return "", ErrNoMatch
}

// brandFromLabel walks the DOM for an element whose own text carries the
// literal word "Marca", then reads either a <dd> sibling or the
// colon-delimited remainder of the element's text.
func brandFromLabel(p *Page) (string, error) {
	var brand string
	p.Doc.Find("dt, tr, li, p, span, div, td").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		own := s.Contents().Not("*").Text()
		if !brandLabel.MatchString(own) {
			return true
		}
		if dd := s.NextFiltered("dd"); dd.Length() > 0 {
			if text := Clean(dd.Text()); text != "" {
				brand = text
				return false
			}
		}
		if m := brandRemainder.FindStringSubmatch(Clean(s.Text())); m != nil {
			if text := Clean(m[1]); text != "" {
				brand = text
				return false
			}
		}
		return true
	})
	if brand != "" {
		return brand, nil
	}
	return "", ErrNoMatch
}

// brandFromKnownList matches the product name against the profile's known
// brands, case-insensitive, first match wins.
func brandFromKnownList(p *Page, name string) (string, error) {
	lower := strings.ToLower(name)
	for _, brand := range p.Profile.KnownBrands {
		if strings.Contains(lower, strings.ToLower(brand)) {
			return brand, nil
		}
	}
	return "", ErrNoMatch
}
