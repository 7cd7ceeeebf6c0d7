package site

// Profiles lists every supported storefront, checked in order by FindProfile.
var Profiles = []*Profile{
	LeoMadeiras,
	Koerich,
	Colcci,
	MercadoCar,
}

// genericNameSelectors work on most product pages and terminate the DOM
// stage of the name cascade.
var genericNameSelectors = []string{
	".product-name h1",
	"h1.product-name",
	"h1",
	".product-title",
}

// LeoMadeiras sells wood panels and power tools. Prices are rendered
// client-side from data-sku-obj attributes, so pages go through the headless
// renderer first.
var LeoMadeiras = &Profile{
	Name:    "leomadeiras",
	Domain:  "leomadeiras.com.br",
	BaseURL: "https://www.leomadeiras.com.br",

	UseRender: true,
	WaitSelectors: []string{
		"h1",
		".product-name",
		".product-price",
		".price",
		"[data-price]",
		"[data-sku-obj]",
		".product-images",
	},

	NameSelectors: genericNameSelectors,
	PriceAttrs:    []string{"data-sku-obj", "data-price", "data-originprice"},
	PriceSelectors: []string{
		".price", ".product-price", ".current-price", "[class*='price']",
	},
	DescriptionSelectors: []string{
		".product-description", ".description", ".product-details",
		".product-info", ".about-product",
	},
	DescriptionLabels: []string{"Descrição do Produto"},
	SizeSelectors:     nil,

	KnownBrands: []string{
		"Kress", "Bosch", "Makita", "DeWalt", "Milwaukee", "Black+Decker",
		"Stanley", "Metabo", "Hitachi", "Panasonic", "Ryobi",
	},
	DefaultBrand: "Leo Madeiras",

	DepartmentKeywords: []KeywordRule{
		{Words: []string{"furadeira", "parafusadeira", "martelete", "serra", "plaina", "esmerilhadeira"}, Value: "Ferramentas Elétricas"},
		{Words: []string{"mdf", "madeira", "compensado", "painel"}, Value: "Madeiras"},
		{Words: []string{"ferragem", "dobradiça", "puxador"}, Value: "Ferragens"},
	},
	CategoryKeywords: []KeywordRule{
		{Words: []string{"furadeira de impacto"}, Value: "Furadeira de Impacto"},
		{Words: []string{"furadeira"}, Value: "Furadeira"},
		{Words: []string{"parafusadeira"}, Value: "Parafusadeira"},
		{Words: []string{"martelete"}, Value: "Martelete"},
		{Words: []string{"serra circular"}, Value: "Serra Circular"},
		{Words: []string{"serra"}, Value: "Serra Circular"},
		{Words: []string{"mdf"}, Value: "MDF"},
	},
	DefaultDepartment: "Ferramentas Elétricas",
	DefaultCategory:   "Ferramentas Elétricas",

	DepartmentIDs: map[string]string{
		"MDF":                    "1",
		"Madeiras":               "2",
		"Ferramentas Elétricas":  "3",
		"Ferramentas Manuais":    "4",
		"Máquinas Estacionárias": "5",
		"Acessórios para Ferramentas e Máquinas": "6",
		"Ferragens":               "7",
		"Ferramentas Pneumáticas": "8",
		"Fitas e Tapa Furos":      "9",
		"Químicos":                "10",
		"Perfis de Alumínio":      "11",
		"Iluminação e Elétrica":   "12",
		"Revestimentos":           "13",
		"Divisórias":              "14",
		"EPI":                     "15",
		"Embalagens":              "16",
		"Utilidades Domésticas":   "17",
		"Construção":              "18",
		"Catálogos e Expositores": "19",
	},
	CategoryIDs: map[string]string{
		"MDF":                  "1",
		"Madeiras":             "2",
		"Furadeira":            "3",
		"Parafusadeira":        "4",
		"Furadeira de Impacto": "5",
		"Martelete":            "6",
		"Serra Circular":       "7",
		"Serra Meia-Esquadria": "8",
		"Serra de Bancada":     "9",
		"Serra Tico Tico":      "10",
		"Serra Mármore":        "11",
		"Plaina":               "12",
		"Pinador":              "13",
		"Esmerilhadeira":       "14",
		"Linha Laser":          "15",
		"Soprador Térmico":     "16",
		"Chave de Impacto":     "17",
		"Tupia":                "18",
		"Tico Tico de Bancada": "19",
	},
}

// Koerich sells home appliances. Content arrives via JavaScript; the
// breadcrumb lives in a dedicated trail list.
var Koerich = &Profile{
	Name:    "koerich",
	Domain:  "koerich.com.br",
	BaseURL: "https://www.koerich.com.br",

	UseRender: true,
	WaitSelectors: []string{
		"h1",
		".product-name",
		".product-price",
		".about-product",
		".specifications",
	},

	NameSelectors: append([]string{"h1.product-name"}, genericNameSelectors...),
	PriceSelectors: []string{
		".product-price", ".price", ".product-price-value", ".current-price",
		"[class*='price']",
	},
	DescriptionSelectors: []string{
		".about-product", ".specifications", ".product-description", ".description",
	},
	BreadcrumbItems: "ul#breadcrumbTrail li",

	KnownBrands: []string{
		"Midea", "Electrolux", "Brastemp", "Consul", "Panasonic", "Samsung",
		"LG", "Philco", "GE", "Whirlpool", "Bosch", "Siemens", "Fischer",
		"Continental", "Mueller", "Gazin",
	},
	DefaultBrand: "MIDEA",

	DepartmentKeywords: []KeywordRule{
		{Words: []string{"frigobar", "freezer", "refrigerador", "geladeira"}, Value: "Refrigeração"},
		{Words: []string{"ar condicionado", "ar-condicionado", "climatizador"}, Value: "Ar Condicionado"},
		{Words: []string{"ventilador", "ventilação", "ventilacao"}, Value: "Ventilação"},
		{Words: []string{"aquecedor"}, Value: "Aquecimento"},
		{Words: []string{"máquina de lavar", "maquina de lavar", "lavadora"}, Value: "Lavagem"},
		{Words: []string{"fogão", "fogao", "cooktop", "forno"}, Value: "Cozinha"},
		{Words: []string{"aspirador"}, Value: "Limpeza"},
	},
	CategoryKeywords: []KeywordRule{
		{Words: []string{"frigobar"}, Value: "Frigobar"},
		{Words: []string{"freezer"}, Value: "Freezer"},
		{Words: []string{"refrigerador", "geladeira"}, Value: "Refrigerador"},
		{Words: []string{"ar condicionado", "ar-condicionado"}, Value: "Ar Condicionado"},
		{Words: []string{"ventilador"}, Value: "Ventilador"},
		{Words: []string{"aquecedor"}, Value: "Aquecedor"},
		{Words: []string{"máquina de lavar", "maquina de lavar"}, Value: "Máquina de Lavar"},
		{Words: []string{"fogão", "fogao"}, Value: "Fogão"},
		{Words: []string{"microondas"}, Value: "Microondas"},
		{Words: []string{"liquidificador"}, Value: "Liquidificador"},
		{Words: []string{"aspirador"}, Value: "Aspirador"},
	},
	DefaultDepartment: "Eletrodomésticos",
	DefaultCategory:   "Eletrodomésticos",

	DepartmentIDs: map[string]string{
		"Eletrodomésticos":          "1",
		"Eletroportáteis":           "2",
		"Ar Condicionado":           "3",
		"Aquecimento":               "4",
		"Ventilação":                "5",
		"Refrigeração":              "6",
		"Lavagem":                   "7",
		"Cozinha":                   "8",
		"Limpeza":                   "9",
		"Pequenos Eletrodomésticos": "10",
	},
	CategoryIDs: map[string]string{
		"Frigobar":         "1",
		"Freezer":          "2",
		"Refrigerador":     "3",
		"Ar Condicionado":  "4",
		"Ventilador":       "5",
		"Aquecedor":        "6",
		"Máquina de Lavar": "7",
		"Secadora":         "8",
		"Fogão":            "9",
		"Microondas":       "10",
		"Liquidificador":   "11",
		"Mixer":            "12",
		"Processador":      "13",
		"Aspirador":        "14",
		"Ferro de Passar":  "15",
	},
}

// Colcci is a fashion store: one output record per garment size.
var Colcci = &Profile{
	Name:    "colcci",
	Domain:  "colcci.com.br",
	BaseURL: "https://www.colcci.com.br",

	StateContainer: "script#__NEXT_DATA__",

	NameSelectors: genericNameSelectors,
	PriceSelectors: []string{
		".product-price", ".price", "[class*='price']",
	},
	DescriptionSelectors: []string{
		".product-description", ".description", ".product-composition",
	},
	DescriptionLabels: []string{"Composição"},
	SizeSelectors: []string{
		"select[name*='tamanho'] option",
		"select[id*='tamanho'] option",
		"select[name*='size'] option",
		"input[type='radio'][name*='tamanho']",
		"ul.sizes li",
	},

	KnownBrands:  []string{"Colcci"},
	DefaultBrand: "Colcci",

	DepartmentKeywords: []KeywordRule{
		{Words: []string{"masculina", "masculino"}, Value: "Masculino"},
		{Words: []string{"blusa", "vestido", "saia", "feminina"}, Value: "Feminino"},
	},
	CategoryKeywords: []KeywordRule{
		{Words: []string{"blusa"}, Value: "Blusas"},
		{Words: []string{"vestido"}, Value: "Vestidos"},
		{Words: []string{"calça", "calca"}, Value: "Calças"},
		{Words: []string{"saia"}, Value: "Saias"},
		{Words: []string{"camiseta"}, Value: "Camisetas"},
		{Words: []string{"jaqueta"}, Value: "Jaquetas"},
	},
	DefaultDepartment: "Feminino",
	DefaultCategory:   "Blusas",

	DepartmentIDs: map[string]string{
		"Feminino":   "1",
		"Masculino":  "2",
		"Acessórios": "3",
	},
	CategoryIDs: map[string]string{
		"Blusas":    "1",
		"Vestidos":  "2",
		"Calças":    "3",
		"Saias":     "4",
		"Camisetas": "5",
		"Jaquetas":  "6",
	},
}

// MercadoCar sells auto parts. Brand usually comes from a "Marca" label in
// the product details table rather than structured data.
var MercadoCar = &Profile{
	Name:    "mercadocar",
	Domain:  "mercadocar.com.br",
	BaseURL: "https://www.mercadocar.com.br",

	StateContainer: "script#__NEXT_DATA__",

	NameSelectors: append([]string{"div.product-name h1"}, genericNameSelectors...),
	PriceSelectors: []string{
		".product-price", ".price", "[class*='price']",
	},
	DescriptionSelectors: []string{
		".product-description", ".description", ".specifications",
	},
	DescriptionLabels: []string{"Aplicável ao(s) veículo(s)", "Aplicação"},

	KnownBrands: []string{
		"Pirelli", "Goodyear", "Michelin", "Bridgestone", "Firestone",
		"Bosch", "NGK", "Fram", "Tecfil", "Mobil", "Shell",
	},
	DefaultBrand: "MercadoCar",

	DepartmentKeywords: []KeywordRule{
		{Words: []string{"pneu"}, Value: "Pneus e Rodas"},
		{Words: []string{"óleo", "oleo", "lubrificante"}, Value: "Óleos e Fluidos"},
		{Words: []string{"filtro"}, Value: "Filtros"},
		{Words: []string{"bateria"}, Value: "Elétrica"},
	},
	CategoryKeywords: []KeywordRule{
		{Words: []string{"pneu"}, Value: "Pneus"},
		{Words: []string{"óleo", "oleo"}, Value: "Óleos"},
		{Words: []string{"filtro de ar"}, Value: "Filtros de Ar"},
		{Words: []string{"filtro"}, Value: "Filtros de Óleo"},
		{Words: []string{"bateria"}, Value: "Baterias"},
	},
	DefaultDepartment: "Acessórios",
	DefaultCategory:   "Acessórios",

	DepartmentIDs: map[string]string{
		"Pneus e Rodas":   "1",
		"Óleos e Fluidos": "2",
		"Filtros":         "3",
		"Elétrica":        "4",
		"Acessórios":      "5",
	},
	CategoryIDs: map[string]string{
		"Pneus":           "1",
		"Óleos":           "2",
		"Filtros de Ar":   "3",
		"Filtros de Óleo": "4",
		"Baterias":        "5",
		"Acessórios":      "6",
	},
}

// Generic handles URLs from unrecognized hosts with best-effort selectors
// and no taxonomy maps.
var Generic = &Profile{
	Name: "generic",

	NameSelectors: genericNameSelectors,
	PriceSelectors: []string{
		".product-price", ".price", "[class*='price']",
	},
	DescriptionSelectors: []string{
		".product-description", ".description", ".product-details",
	},
}
