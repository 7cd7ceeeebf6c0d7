// Package site holds the per-storefront extraction profiles. Each supported
// store is a configuration value consumed by the generic resolver set in
// internal/extract; adding a store means adding a Profile here, not new code.
package site

import (
	"net/url"
	"strings"
)

// KeywordRule maps product-name keywords to a department or category name.
type KeywordRule struct {
	Words []string
	Value string
}

// Profile configures extraction for one storefront.
type Profile struct {
	Name    string
	Domain  string // substring matched against the URL host
	BaseURL string

	// Rendering
	UseRender     bool
	WaitSelectors []string

	// Framework state blob, e.g. "script#__NEXT_DATA__"
	StateContainer string

	// Field selectors, in cascade priority order
	NameSelectors        []string
	PriceAttrs           []string // data-attributes carrying inline price JSON
	PriceSelectors       []string
	DescriptionSelectors []string
	DescriptionLabels    []string // label phrases anchoring free-text description search
	BreadcrumbItems      string   // site-specific breadcrumb list items
	SizeSelectors        []string

	// Brand resolution
	KnownBrands  []string
	DefaultBrand string

	// Taxonomy fallbacks and static ID maps
	DepartmentKeywords []KeywordRule
	CategoryKeywords   []KeywordRule
	DefaultDepartment  string
	DefaultCategory    string
	DepartmentIDs      map[string]string
	CategoryIDs        map[string]string
}

// DepartmentID returns the static ID for a department name, or "" if the
// name is unmapped.
func (p *Profile) DepartmentID(name string) string {
	return p.DepartmentIDs[name]
}

// CategoryID returns the static ID for a category name, or "" if the name is
// unmapped.
func (p *Profile) CategoryID(name string) string {
	return p.CategoryIDs[name]
}

// MatchKeywords returns the first rule value whose word list has a match in
// name (case-insensitive), or "" when no rule applies.
func MatchKeywords(rules []KeywordRule, name string) string {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, w := range rule.Words {
			if strings.Contains(lower, w) {
				return rule.Value
			}
		}
	}
	return ""
}

// FindProfile selects the profile whose domain substring matches the URL
// host. Unknown hosts get the generic profile.
func FindProfile(rawURL string) *Profile {
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	for _, p := range Profiles {
		if p.Domain != "" && strings.Contains(host, p.Domain) {
			return p
		}
	}
	return Generic
}
