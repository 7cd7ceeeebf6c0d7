package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
)

// Taxonomy carries the resolved department/category pair with their static
// IDs. IDs are empty strings when the name has no mapping.
type Taxonomy struct {
	Department   string
	DepartmentID string
	Category     string
	CategoryID   string
	Source       string
}

// homeSentinels are breadcrumb labels that mean "store front page" and never
// name a department.
var homeSentinels = map[string]bool{
	"início":         true,
	"inicio":         true,
	"home":           true,
	"página inicial": true,
	"você está em:":  true,
	"you are in:":    true,
}

// genericBreadcrumbLinks is the catch-all breadcrumb pattern used when a
// profile has no dedicated trail selector.
const genericBreadcrumbLinks = ".breadcrumb a, nav.breadcrumb a, .breadcrumbs a, [class*='breadcrumb'] a"

// ResolveTaxonomy resolves department and category: the profile's breadcrumb
// trail first, the generic breadcrumb pattern second (with the product name
// stripped off the tail when it leaks into the trail), keyword matching on
// the product name last.
func ResolveTaxonomy(p *Page, name string) Taxonomy {
	tax := Taxonomy{}

	if labels := siteBreadcrumb(p); len(labels) > 0 {
		tax = assignTrail(labels)
		tax.Source = "breadcrumb"
	} else if labels := genericBreadcrumb(p, name); len(labels) > 0 {
		tax = assignTrail(labels)
		tax.Source = "breadcrumb-generic"
	}

	if tax.Department == "" || tax.Category == "" {
		fillFromKeywords(&tax, p.Profile, name)
		if tax.Source == "" {
			tax.Source = "keywords"
		}
	}

	tax.DepartmentID = p.Profile.DepartmentID(tax.Department)
	tax.CategoryID = p.Profile.CategoryID(tax.Category)
	return tax
}

// siteBreadcrumb walks the profile's dedicated trail list. Each item prefers
// a bold sub-element (marking the current page), then a link, then its own
// text.
func siteBreadcrumb(p *Page) []string {
	if p.Profile.BreadcrumbItems == "" {
		return nil
	}
	var labels []string
	p.Doc.Find(p.Profile.BreadcrumbItems).Each(func(_ int, s *goquery.Selection) {
		label := Clean(s.Find("b, strong").First().Text())
		if label == "" {
			label = Clean(s.Find("a").First().Text())
		}
		if label == "" {
			label = Clean(s.Text())
		}
		if label != "" && !homeSentinels[strings.ToLower(label)] {
			labels = append(labels, label)
		}
	})
	return labels
}

// genericBreadcrumb collects link texts under any breadcrumb-ish container.
// A trailing label that textually overlaps the product name is the product
// itself masquerading as a category and gets dropped.
func genericBreadcrumb(p *Page, name string) []string {
	var labels []string
	p.Doc.Find(genericBreadcrumbLinks).Each(func(_ int, s *goquery.Selection) {
		label := Clean(s.Text())
		if label != "" && !homeSentinels[strings.ToLower(label)] {
			labels = append(labels, label)
		}
	})
	if len(labels) > 0 && overlapsName(labels[len(labels)-1], name) {
		labels = labels[:len(labels)-1]
	}
	return labels
}

// overlapsName compares the first 20 runes of both strings,
// case-insensitive.
func overlapsName(label, name string) bool {
	if label == "" || name == "" {
		return false
	}
	labelPrefix := strings.ToLower(TruncateRunes(label, 20))
	namePrefix := strings.ToLower(TruncateRunes(name, 20))
	return strings.Contains(namePrefix, labelPrefix)
}

// assignTrail maps a filtered breadcrumb trail onto department/category:
// with two or more labels, the last two; with exactly one, category only.
func assignTrail(labels []string) Taxonomy {
	tax := Taxonomy{}
	switch {
	case len(labels) >= 2:
		tax.Department = labels[len(labels)-2]
		tax.Category = labels[len(labels)-1]
	case len(labels) == 1:
		tax.Category = labels[0]
	}
	return tax
}

func fillFromKeywords(tax *Taxonomy, profile *site.Profile, name string) {
	if tax.Department == "" {
		if dept := site.MatchKeywords(profile.DepartmentKeywords, name); dept != "" {
			tax.Department = dept
		} else {
			tax.Department = profile.DefaultDepartment
		}
	}
	if tax.Category == "" {
		if cat := site.MatchKeywords(profile.CategoryKeywords, name); cat != "" {
			tax.Category = cat
		} else {
			tax.Category = profile.DefaultCategory
		}
	}
}
