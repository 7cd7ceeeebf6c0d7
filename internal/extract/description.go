package extract

import (
	"strings"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/jsontree"
)

// descriptionWindow bounds how much text a label-anchored search captures.
const descriptionWindow = 500

// ResolveDescription resolves the product description, falling back to the
// already-resolved name when the page offers nothing better.
func ResolveDescription(p *Page, name string) (value, source string) {
	c := Cascade{
		{Source: "structured-data", Run: descriptionFromStructured},
		{Source: "selector", Run: descriptionFromSelectors},
		{Source: "label", Run: descriptionFromLabels},
	}
	if v, src := c.Resolve(p); v != "" {
		return v, src
	}
	return name, "name-fallback"
}

func descriptionFromStructured(p *Page) (string, error) {
	if p.Product == nil {
		return "", ErrNoMatch
	}
	if desc := Clean(jsontree.Stringify(p.Product["description"])); desc != "" {
		return desc, nil
	}
	return "", ErrNoMatch
}

func descriptionFromSelectors(p *Page) (string, error) {
	for _, sel := range p.Profile.DescriptionSelectors {
		if text := Clean(p.Doc.Find(sel).First().Text()); text != "" {
			return text, nil
		}
	}
	return "", ErrNoMatch
}

// descriptionFromLabels anchors on known label phrases ("Composição",
// "Aplicável ao(s) veículo(s)") and captures a window of the text that
// follows.
func descriptionFromLabels(p *Page) (string, error) {
	text := p.Text()
	for _, label := range p.Profile.DescriptionLabels {
		idx := strings.Index(text, label)
		if idx < 0 {
			continue
		}
		window := TruncateRunes(text[idx:], descriptionWindow)
		if desc := Clean(window); desc != "" {
			return desc, nil
		}
	}
	return "", ErrNoMatch
}

// TruncateRunes cuts s to at most n runes without splitting multi-byte
// characters.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
