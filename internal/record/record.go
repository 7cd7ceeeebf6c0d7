package record

// ProductRecord is one output row in the catalog import sheet. Column names
// carry the sheet's leading-underscore convention; field order here mirrors
// the column order exactly.
type ProductRecord struct {
	IDSKU               string
	NomeSKU             string
	AtivarSKUSePossivel string
	SKUAtivo            string
	EANSKU              string

	Altura          string
	AlturaReal      string
	Largura         string
	LarguraReal     string
	Comprimento     string
	ComprimentoReal string
	Peso            string
	PesoReal        string

	UnidadeMedida        string
	MultiplicadorUnidade string
	CodigoReferenciaSKU  string
	ValorFidelidade      string
	DataPrevisaoChegada  string
	CodigoFabricante     string

	IDProduto               string
	NomeProduto             string
	BreveDescricao          string
	ProdutoAtivo            string
	CodigoReferenciaProduto string
	MostrarNoSite           string
	LinkTexto               string
	Descricao               string
	DataLancamento          string
	PalavrasChave           string
	TituloSite              string
	DescricaoMetaTag        string
	IDFornecedor            string
	MostrarSemEstoque       string
	Kit                     string

	IDDepartamento   string
	NomeDepartamento string
	IDCategoria      string
	NomeCategoria    string
	IDMarca          string
	Marca            string

	PesoCubico     string
	Preco          string
	BaseURLImagens string
	ImagensSalvas  string
	ImagensURLs    string
}

// Headers returns the output column names in sheet order.
func Headers() []string {
	return []string{
		"_IDSKU", "_NomeSKU", "_AtivarSKUSePossível", "_SKUAtivo", "_EANSKU",
		"_Altura", "_AlturaReal", "_Largura", "_LarguraReal",
		"_Comprimento", "_ComprimentoReal", "_Peso", "_PesoReal",
		"_UnidadeMedida", "_MultiplicadorUnidade", "_CodigoReferenciaSKU",
		"_ValorFidelidade", "_DataPrevisaoChegada", "_CodigoFabricante",
		"_IDProduto", "_NomeProduto", "_BreveDescricaoProduto", "_ProdutoAtivo",
		"_CodigoReferenciaProduto", "_MostrarNoSite", "_LinkTexto",
		"_DescricaoProduto", "_DataLancamentoProduto", "_PalavrasChave",
		"_TituloSite", "_DescricaoMetaTag", "_IDFornecedor",
		"_MostrarSemEstoque", "_Kit",
		"_IDDepartamento", "_NomeDepartamento", "_IDCategoria", "_NomeCategoria",
		"_IDMarca", "_Marca",
		"_PesoCubico", "_Preço", "_BaseUrlImagens", "_ImagensSalvas", "_ImagensURLs",
	}
}

// Row returns the record's values in the same order as Headers.
func (r ProductRecord) Row() []string {
	return []string{
		r.IDSKU, r.NomeSKU, r.AtivarSKUSePossivel, r.SKUAtivo, r.EANSKU,
		r.Altura, r.AlturaReal, r.Largura, r.LarguraReal,
		r.Comprimento, r.ComprimentoReal, r.Peso, r.PesoReal,
		r.UnidadeMedida, r.MultiplicadorUnidade, r.CodigoReferenciaSKU,
		r.ValorFidelidade, r.DataPrevisaoChegada, r.CodigoFabricante,
		r.IDProduto, r.NomeProduto, r.BreveDescricao, r.ProdutoAtivo,
		r.CodigoReferenciaProduto, r.MostrarNoSite, r.LinkTexto,
		r.Descricao, r.DataLancamento, r.PalavrasChave,
		r.TituloSite, r.DescricaoMetaTag, r.IDFornecedor,
		r.MostrarSemEstoque, r.Kit,
		r.IDDepartamento, r.NomeDepartamento, r.IDCategoria, r.NomeCategoria,
		r.IDMarca, r.Marca,
		r.PesoCubico, r.Preco, r.BaseURLImagens, r.ImagensSalvas, r.ImagensURLs,
	}
}
