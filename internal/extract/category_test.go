package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/site"
)

func TestResolveTaxonomyBreadcrumbTrail(t *testing.T) {
	html := `<html><body><div class="category">
		<ul id="breadcrumbTrail">
			<li><a href="/">Início</a></li>
			<li><a href="/feminino">Feminino</a></li>
			<li><b>Vestidos</b></li>
		</ul>
	</div></body></html>`
	p := newTestPage(t, "https://www.koerich.com.br/vestido", html, site.Koerich)

	tax := ResolveTaxonomy(p, "Vestido Midi Azul")
	assert.Equal(t, "Feminino", tax.Department)
	assert.Equal(t, "Vestidos", tax.Category)
	assert.Equal(t, "breadcrumb", tax.Source)
}

func TestResolveTaxonomySingleLabel(t *testing.T) {
	html := `<html><body><ul id="breadcrumbTrail">
		<li><a href="/">Home</a></li>
		<li><a href="/frigobar">Frigobar</a></li>
	</ul></body></html>`
	p := newTestPage(t, "https://www.koerich.com.br/frigobar-x", html, site.Koerich)

	tax := ResolveTaxonomy(p, "Frigobar Midea 45L")
	// One usable label: it names the category; the department comes from
	// name keywords.
	assert.Equal(t, "Frigobar", tax.Category)
	assert.Equal(t, "Refrigeração", tax.Department)
}

func TestResolveTaxonomyGenericBreadcrumbStripsProductName(t *testing.T) {
	html := `<html><body><nav class="breadcrumb">
		<a href="/">Início</a>
		<a href="/ferramentas">Ferramentas Elétricas</a>
		<a href="/furadeiras">Furadeira</a>
		<a href="/p/1">Furadeira de Impacto GSB 550 RE</a>
	</nav></body></html>`
	p := newTestPage(t, "https://www.leomadeiras.com.br/p/1/furadeira", html, site.LeoMadeiras)

	tax := ResolveTaxonomy(p, "Furadeira de Impacto GSB 550 RE")
	assert.Equal(t, "Ferramentas Elétricas", tax.Department)
	assert.Equal(t, "Furadeira", tax.Category)
	assert.Equal(t, "breadcrumb-generic", tax.Source)
	assert.Equal(t, "3", tax.DepartmentID)
	assert.Equal(t, "3", tax.CategoryID)
}

func TestResolveTaxonomyKeywordFallback(t *testing.T) {
	p := newTestPage(t, "https://www.leomadeiras.com.br/p/2/painel",
		`<html><body></body></html>`, site.LeoMadeiras)

	tax := ResolveTaxonomy(p, "Painel MDF Branco 15mm")
	assert.Equal(t, "Madeiras", tax.Department)
	assert.Equal(t, "MDF", tax.Category)
	assert.Equal(t, "keywords", tax.Source)
	assert.Equal(t, "2", tax.DepartmentID)
	assert.Equal(t, "1", tax.CategoryID)
}

func TestResolveTaxonomyUnmappedIDsAreEmpty(t *testing.T) {
	html := `<html><body><nav class="breadcrumb">
		<a href="/">Home</a>
		<a href="/a">Departamento Novo</a>
		<a href="/b">Categoria Nova</a>
	</nav></body></html>`
	p := newTestPage(t, "https://www.leomadeiras.com.br/p/3/x", html, site.LeoMadeiras)

	tax := ResolveTaxonomy(p, "Produto Qualquer")
	assert.Equal(t, "Departamento Novo", tax.Department)
	assert.Equal(t, "Categoria Nova", tax.Category)
	assert.Equal(t, "", tax.DepartmentID)
	assert.Equal(t, "", tax.CategoryID)
}
