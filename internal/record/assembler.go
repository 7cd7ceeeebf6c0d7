package record

import (
	"net/url"
	"strings"
	"time"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/extract"
)

const (
	shortDescriptionLimit = 200
	metaDescriptionLimit  = 160

	// imageBasePrefix seeds _BaseUrlImagens, which the import pipeline uses
	// to relocate downloaded assets.
	imageBasePrefix = "images-leadPOC"
)

// Assembler turns resolved fields into output records, one per size variant.
// It owns the brand ID registry for the run.
type Assembler struct {
	Brands *BrandRegistry

	// Now is swappable so the launch date column is testable.
	Now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{Brands: NewBrandRegistry(), Now: time.Now}
}

// Assemble builds one ProductRecord per size entry. The single-SKU sentinel
// keeps the base SKU untouched; real variants get the "_{size}" suffix on the
// SKU and a qualified SKU name, while product-level fields stay identical
// across variants.
func (a *Assembler) Assemble(f *extract.Fields, pageURL string, saved []string) []ProductRecord {
	launch := a.Now().Format("02/01/2006")
	brandID := a.Brands.ID(f.Brand)
	baseImages := ImageBaseURL(f.SKU, f.Name)

	sizes := f.Sizes
	if len(sizes) == 0 {
		sizes = []string{extract.SingleSize}
	}
	single := len(sizes) == 1 && sizes[0] == extract.SingleSize

	records := make([]ProductRecord, 0, len(sizes))
	for _, size := range sizes {
		sku, skuName := f.SKU, f.Name
		if !single {
			sku = f.SKU + "_" + size
			skuName = f.Name + " - " + size
		}
		records = append(records, ProductRecord{
			IDSKU:               sku,
			NomeSKU:             skuName,
			AtivarSKUSePossivel: "SIM",
			SKUAtivo:            "SIM",

			UnidadeMedida:        "un",
			MultiplicadorUnidade: "1,000000",
			CodigoReferenciaSKU:  sku,

			IDProduto:               f.SKU,
			NomeProduto:             f.Name,
			BreveDescricao:          extract.TruncateRunes(f.Description, shortDescriptionLimit),
			ProdutoAtivo:            "SIM",
			CodigoReferenciaProduto: f.SKU,
			MostrarNoSite:           "SIM",
			LinkTexto:               linkText(pageURL),
			Descricao:               f.Description,
			DataLancamento:          launch,
			TituloSite:              f.Name,
			DescricaoMetaTag:        extract.TruncateRunes(f.Description, metaDescriptionLimit),
			MostrarSemEstoque:       "SIM",

			IDDepartamento:   f.Taxonomy.DepartmentID,
			NomeDepartamento: f.Taxonomy.Department,
			IDCategoria:      f.Taxonomy.CategoryID,
			NomeCategoria:    f.Taxonomy.Category,
			IDMarca:          brandID,
			Marca:            f.Brand,

			Preco:          f.Price,
			BaseURLImagens: baseImages,
			ImagensSalvas:  strings.Join(saved, ";"),
			ImagensURLs:    strings.Join(f.Images, ";"),
		})
	}
	return records
}

// ImageBaseURL builds the per-product asset base from the SKU and the
// slugified product name.
func ImageBaseURL(sku, name string) string {
	return imageBasePrefix + "-" + sku + "-" + extract.Slugify(name)
}

// linkText is the URL's last path segment, the sheet's human-readable link
// slug.
func linkText(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.TrimRight(u.Path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
