package extract

import (
	"io"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
	"github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

// Page bundles a parsed product page with its pre-located structured data so
// resolvers stay pure functions over it.
type Page struct {
	Doc     *goquery.Document
	URL     *url.URL
	RawURL  string
	Profile *site.Profile

	// Product is the JSON-LD product block, nil when absent.
	Product map[string]any
	// State is the framework-injected state blob, nil when absent.
	State map[string]any
}

// NewPage parses HTML and runs the structured-data locators once up front.
func NewPage(rawURL string, body io.Reader, profile *site.Profile) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errors.NewParsing(profile.Name, "parsing product page", err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewParsing(profile.Name, "parsing product URL", err)
	}

	return &Page{
		Doc:     doc,
		URL:     u,
		RawURL:  rawURL,
		Profile: profile,
		Product: StructuredProduct(doc),
		State:   FrameworkState(doc, profile.StateContainer),
	}, nil
}

// Text returns the page's full visible text, whitespace-normalized.
func (p *Page) Text() string {
	return Clean(p.Doc.Find("body").Text())
}

// AbsoluteURL resolves a possibly relative reference against the page URL.
func (p *Page) AbsoluteURL(ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return p.URL.ResolveReference(r).String()
}

// PathSegments returns the URL path split on "/", empty segments dropped.
func (p *Page) PathSegments() []string {
	var out []string
	path := p.URL.Path
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == '/' {
			if i > start {
				out = append(out, path[start:i])
			}
			start = i + 1
		}
	}
	return out
}
