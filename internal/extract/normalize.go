// Package extract implements the field-extraction engine: text/price
// normalization, structured-data locators and the per-field strategy
// cascades that pull product data out of heterogeneous storefront pages.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean collapses whitespace runs to single spaces and trims. Idempotent.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// pricePatterns are tried in priority order: currency symbol with a full
// Brazilian number first, then bare comma-decimal, then bare dot-decimal.
// Page text carries plenty of numeric noise (ratings, dates, stock counts),
// so the first structurally valid match wins, not the first number seen.
var pricePatterns = []*regexp.Regexp{
	regexp.MustCompile(`R\$\s*([\d.\s]+,\d{2})`),
	regexp.MustCompile(`R\$\s*(\d+\.\d{2})`),
	regexp.MustCompile(`([\d.\s]+,\d{2})`),
	regexp.MustCompile(`(\d+\.\d{2})`),
}

var priceNoise = regexp.MustCompile(`[^\d,.]`)

// ParsePrice searches text for a currency-like substring and returns it as a
// canonical two-decimal string ("1234.56"), or "" when nothing parses.
func ParsePrice(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range pricePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if price := NormalizeNumber(m[1]); price != "" {
			return price
		}
		// Matched but failed conversion: fall through to the next pattern.
	}
	return ""
}

// NormalizeNumber converts a raw Brazilian or plain decimal token to a
// two-decimal canonical string. Disambiguation rule: with both "," and ".",
// the dot is a thousands separator; a lone comma is the decimal mark; a lone
// dot already is.
func NormalizeNumber(raw string) string {
	cleaned := priceNoise.ReplaceAllString(raw, "")
	if cleaned == "" {
		return ""
	}
	switch {
	case strings.Contains(cleaned, ",") && strings.Contains(cleaned, "."):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	case strings.Contains(cleaned, ","):
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return ""
	}
	return d.StringFixed(2)
}

var (
	accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	slugUnsafe     = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	slugSpaces     = regexp.MustCompile(`\s+`)
)

// Slugify turns a product name into a URL-safe lowercase slug, folding
// Portuguese accents away.
func Slugify(name string) string {
	folded, _, err := transform.String(accentStripper, name)
	if err != nil {
		folded = name
	}
	folded = slugUnsafe.ReplaceAllString(folded, "")
	folded = strings.TrimSpace(folded)
	folded = slugSpaces.ReplaceAllString(folded, "-")
	return strings.ToLower(folded)
}
