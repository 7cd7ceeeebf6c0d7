package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/jsontree"
)

// FallbackName is the terminal value of the name cascade; the resolver never
// returns an empty name.
const FallbackName = "Sem Nome"

const minNameLength = 3

// nameStoplist rejects navigation boilerplate that generic h1/title
// selectors sometimes pick up.
var nameStoplist = map[string]bool{
	"menu":        true,
	"home":        true,
	"início":      true,
	"inicio":      true,
	"buscar":      true,
	"carrinho":    true,
	"login":       true,
	"minha conta": true,
}

// ResolveName resolves the product name: structured data, framework state,
// DOM selectors, URL slug, then the literal fallback.
func ResolveName(p *Page) (value, source string) {
	c := Cascade{
		{Source: "structured-data", Run: nameFromStructured},
		{Source: "framework-state", Run: nameFromState},
		{Source: "selector", Run: nameFromSelectors},
		{Source: "url-slug", Run: nameFromSlug},
	}
	if v, src := c.Resolve(p); v != "" {
		return v, src
	}
	return FallbackName, "fallback"
}

func nameFromStructured(p *Page) (string, error) {
	if p.Product == nil {
		return "", ErrNoMatch
	}
	if name := Clean(jsontree.Stringify(p.Product["name"])); name != "" {
		return name, nil
	}
	return "", ErrNoMatch
}

func nameFromState(p *Page) (string, error) {
	if p.State == nil {
		return "", ErrNoMatch
	}
	name := Clean(jsontree.FirstString(p.State, "productName", "productTitle", "name"))
	if len([]rune(name)) >= minNameLength {
		return name, nil
	}
	return "", ErrNoMatch
}

func nameFromSelectors(p *Page) (string, error) {
	for _, sel := range p.Profile.NameSelectors {
		var found string
		p.Doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := Clean(s.Text())
			if len([]rune(text)) < minNameLength || nameStoplist[strings.ToLower(text)] {
				return true
			}
			found = text
			return false
		})
		if found != "" {
			return found, nil
		}
	}
	return "", ErrNoMatch
}

func nameFromSlug(p *Page) (string, error) {
	segments := p.PathSegments()
	if len(segments) == 0 {
		return "", ErrNoMatch
	}
	slug := segments[len(segments)-1]
	slug = strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	if name := Clean(slug); name != "" {
		return name, nil
	}
	return "", ErrNoMatch
}
