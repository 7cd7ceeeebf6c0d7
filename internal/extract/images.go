package extract

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MaxImages caps the representative image set per product.
const MaxImages = 5

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// CollectImages gathers candidate product image URLs from img tags and
// responsive source sets, resolves them to absolute form, deduplicates
// preserving first-seen order, filters by SKU relevance and caps the result.
func CollectImages(p *Page, sku string) []string {
	var raw []string

	p.Doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := firstAttr(s, "src", "data-src", "data-lazy-src")
		if src == "" {
			if srcset, ok := s.Attr("srcset"); ok {
				src = ParseSrcset(srcset)
			}
		}
		if !usableImageSource(src) || !hasImageExtension(src) {
			return
		}
		// Resize params ride after "&" on CDN URLs; drop them to get the
		// original asset.
		if i := strings.Index(src, "&"); i >= 0 {
			src = src[:i]
		}
		raw = append(raw, src)
	})

	p.Doc.Find("source").Each(func(_ int, s *goquery.Selection) {
		srcset, ok := s.Attr("srcset")
		if !ok {
			return
		}
		if src := ParseSrcset(srcset); usableImageSource(src) {
			raw = append(raw, src)
		}
	})

	ordered := dedupeAbsolute(p, raw)
	return capImages(filterBySKU(ordered, sku))
}

func firstAttr(s *goquery.Selection, attrs ...string) string {
	for _, a := range attrs {
		if v, ok := s.Attr(a); ok && v != "" {
			return v
		}
	}
	return ""
}

func usableImageSource(src string) bool {
	if src == "" {
		return false
	}
	if strings.Contains(src, "data:image") {
		return false
	}
	if strings.Contains(strings.ToLower(src), "blank") {
		return false
	}
	return true
}

func hasImageExtension(src string) bool {
	lower := strings.ToLower(src)
	for _, ext := range imageExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	return false
}

func dedupeAbsolute(p *Page, raw []string) []string {
	var ordered []string
	seen := map[string]bool{}
	for _, src := range raw {
		abs := p.AbsoluteURL(src)
		if abs == "" || seen[abs] {
			continue
		}
		seen[abs] = true
		ordered = append(ordered, abs)
	}
	return ordered
}

// filterBySKU keeps URLs containing the SKU or one of its leading fragments.
// When the filter leaves nothing, the unfiltered head of the list is better
// than no images at all.
func filterBySKU(ordered []string, sku string) []string {
	if sku == "" {
		return ordered
	}
	fragments := []string{sku}
	parts := strings.Split(sku, "-")
	if len(parts) > 1 {
		fragments = append(fragments, parts[:2]...)
	}

	var filtered []string
	for _, u := range ordered {
		for _, frag := range fragments {
			if frag != "" && strings.Contains(u, frag) {
				filtered = append(filtered, u)
				break
			}
		}
	}
	if len(filtered) == 0 {
		return ordered
	}
	return filtered
}

func capImages(urls []string) []string {
	if len(urls) > MaxImages {
		return urls[:MaxImages]
	}
	return urls
}

// ParseSrcset returns the highest-resolution URL from a srcset attribute.
// Entries are "url descriptor" pairs where the descriptor is a density
// ("2x") or width ("640w") hint; the maximum wins.
func ParseSrcset(srcset string) string {
	if srcset == "" {
		return ""
	}
	parts := strings.Split(srcset, ",")

	var bestURL string
	var bestDensity float64
	for _, part := range parts {
		part = strings.TrimSpace(part)
		i := strings.LastIndex(part, " ")
		if i < 0 {
			continue
		}
		urlPart := strings.TrimSpace(part[:i])
		descriptor := strings.TrimSpace(part[i+1:])
		descriptor = strings.TrimRight(descriptor, "xw")
		density, err := strconv.ParseFloat(descriptor, 64)
		if err != nil {
			if bestURL == "" {
				bestURL = urlPart
			}
			continue
		}
		if density > bestDensity {
			bestDensity = density
			bestURL = urlPart
		}
	}

	if bestURL != "" {
		return bestURL
	}
	// No descriptors at all: first entry's URL token.
	first := strings.TrimSpace(parts[0])
	if i := strings.Index(first, " "); i >= 0 {
		first = first[:i]
	}
	return first
}
