package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SingleSize marks products with no size variation: one record, one SKU.
const SingleSize = "ÚNICO"

// defaultSizeSelectors cover the common size widgets when a profile has no
// dedicated list.
var defaultSizeSelectors = []string{
	"select[name*='tamanho'] option",
	"select[id*='tamanho'] option",
	"select[name*='size'] option",
	"input[type='radio'][name*='tamanho']",
}

// sizePlaceholders are control entries that are not sizes.
var sizePlaceholders = map[string]bool{
	"":          true,
	"selecione": true,
	"tamanho":   true,
	"escolha":   true,
}

var (
	// letterSizeRun matches a run of at least two garment size tokens
	// ("P M G", "PP/P/M/G/GG").
	letterSizeRun = regexp.MustCompile(`\b(?:PP|P|M|G|GG|XG|XGG|EXG|U)(?:\s*[/|,\-\s]\s*(?:PP|P|M|G|GG|XG|XGG|EXG|U)\b)+`)
	sizeToken     = regexp.MustCompile(`\b(?:PP|P|M|G|GG|XG|XGG|EXG|U)\b`)
	// numericSizeRun matches runs of two-digit numeric sizing (34 36 38...).
	numericSizeRun = regexp.MustCompile(`\b(?:3[4-9]|4[0-8])(?:\s*[/|,\-\s]\s*(?:3[4-9]|4[0-8])\b)+`)
	numericToken   = regexp.MustCompile(`\b(?:3[4-9]|4[0-8])\b`)
)

// ResolveSizes enumerates the product's size variants: size controls first,
// then a size-token scan of the page text, then the single-SKU sentinel.
// One output record is produced per entry.
func ResolveSizes(p *Page) []string {
	if sizes := sizesFromControls(p); len(sizes) > 0 {
		return sizes
	}
	if sizes := sizesFromText(p); len(sizes) > 0 {
		return sizes
	}
	return []string{SingleSize}
}

func sizesFromControls(p *Page) []string {
	selectors := p.Profile.SizeSelectors
	if len(selectors) == 0 {
		selectors = defaultSizeSelectors
	}
	var sizes []string
	seen := map[string]bool{}
	for _, sel := range selectors {
		p.Doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			label := Clean(s.Text())
			if label == "" {
				label, _ = s.Attr("value")
				label = Clean(label)
			}
			if sizePlaceholders[strings.ToLower(label)] {
				return
			}
			if !seen[label] {
				seen[label] = true
				sizes = append(sizes, label)
			}
		})
		if len(sizes) > 0 {
			break
		}
	}
	return sizes
}

// sizesFromText falls back to scanning the rendered text for a recognized
// size-token sequence. A lone token is ignored; sizes come in runs.
func sizesFromText(p *Page) []string {
	text := p.Text()
	if run := letterSizeRun.FindString(text); run != "" {
		return dedupe(sizeToken.FindAllString(run, -1))
	}
	if run := numericSizeRun.FindString(text); run != "" {
		return dedupe(numericToken.FindAllString(run, -1))
	}
	return nil
}

func dedupe(tokens []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, t := range tokens {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out
}
