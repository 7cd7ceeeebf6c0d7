package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// productTypes are the JSON-LD @type values that identify a product block.
var productTypes = map[string]bool{
	"Product":        true,
	"Offer":          true,
	"AggregateOffer": true,
}

// StructuredProduct scans every JSON-LD script block and returns the first
// object (or first element of a list) whose @type is a product type.
// Malformed blocks are skipped: a corrupt script must never abort extraction.
func StructuredProduct(doc *goquery.Document) map[string]any {
	var found map[string]any
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var decoded any
		if err := json.Unmarshal([]byte(s.Text()), &decoded); err != nil {
			return true
		}
		seq, ok := decoded.([]any)
		if !ok {
			seq = []any{decoded}
		}
		for _, item := range seq {
			obj, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if typ, _ := obj["@type"].(string); productTypes[typ] {
				found = obj
				return false
			}
		}
		return true
	})
	return found
}

// defaultStateContainer is where Next.js storefronts inject their state.
const defaultStateContainer = "script#__NEXT_DATA__"

// FrameworkState locates the framework-injected JSON state blob and returns
// it whole, or nil when the container is absent or holds broken JSON.
func FrameworkState(doc *goquery.Document, container string) map[string]any {
	if container == "" {
		container = defaultStateContainer
	}
	raw := strings.TrimSpace(doc.Find(container).First().Text())
	if raw == "" {
		return nil
	}
	var state map[string]any
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil
	}
	return state
}
