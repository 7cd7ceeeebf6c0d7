package extract

// Fields holds every resolved field for one product page, with the source
// strategy recorded for the fields whose provenance matters in logs.
type Fields struct {
	Name       string
	NameSource string

	SKU       string
	SKUSource string

	Price       string
	PriceSource string

	Description string

	Brand string

	Taxonomy Taxonomy

	Sizes  []string
	Images []string
}

// Extract runs every field resolver against the page. Resolvers are
// independent except that the name informs description/brand/taxonomy
// fallbacks and the SKU drives image relevance filtering.
func Extract(p *Page) *Fields {
	f := &Fields{}
	f.Name, f.NameSource = ResolveName(p)
	f.SKU, f.SKUSource = ResolveSKU(p)
	f.Price, f.PriceSource = ResolvePrice(p)
	f.Description, _ = ResolveDescription(p, f.Name)
	f.Brand, _ = ResolveBrand(p, f.Name)
	f.Taxonomy = ResolveTaxonomy(p, f.Name)
	f.Sizes = ResolveSizes(p)
	f.Images = CollectImages(p, f.SKU)
	return f
}
