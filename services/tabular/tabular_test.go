package tabular

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-ramirez/scraper-leomadeiras/internal/record"
	scraperErrors "github.com/thomas-ramirez/scraper-leomadeiras/pkg/errors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "links.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadURLList(t *testing.T) {
	path := writeTempCSV(t, "nome,url\nPainel,https://www.leomadeiras.com.br/p/1/painel\n,\nBlusa,https://www.colcci.com.br/blusa\n")

	urls, err := ReadURLList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.leomadeiras.com.br/p/1/painel",
		"https://www.colcci.com.br/blusa",
	}, urls)
}

func TestReadURLListWithBOM(t *testing.T) {
	path := writeTempCSV(t, "\uFEFFurl\nhttps://www.example.com/p\n")

	urls, err := ReadURLList(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://www.example.com/p"}, urls)
}

func TestReadURLListMissingColumn(t *testing.T) {
	path := writeTempCSV(t, "nome,link\nPainel,https://www.example.com\n")

	_, err := ReadURLList(path)
	require.Error(t, err)

	var scrapeErr *scraperErrors.ScrapeError
	require.ErrorAs(t, err, &scrapeErr)
	assert.True(t, scrapeErr.IsFatal())
}

func TestWriteProducts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "produtos.csv")
	records := []record.ProductRecord{
		{IDSKU: "123", NomeProduto: "Painel Ipê", Preco: "189.90"},
	}

	require.NoError(t, WriteProducts(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "\xEF\xBB\xBF"), "missing UTF-8 BOM")
	assert.Contains(t, content, "_IDSKU")
	assert.Contains(t, content, "_Preço")
	assert.Contains(t, content, "Painel Ipê")

	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imagens.csv")
	entries := []ManifestEntry{
		{SKU: "123", Filename: "123_1.jpg"},
		{SKU: "123", Filename: "123_2.jpg"},
		{SKU: "456", Filename: "456_1.jpg"},
	}

	require.NoError(t, WriteManifest(path, "https://cdn.example.com/", entries))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "_IDSKU,IsMain,Label,Name,url", lines[0])
	assert.Equal(t, "123,True,primeira,primeira,https://cdn.example.com/123_1.jpg", lines[1])
	assert.Equal(t, "123,False,segunda,segunda,https://cdn.example.com/123_2.jpg", lines[2])
	assert.Equal(t, "456,True,primeira,primeira,https://cdn.example.com/456_1.jpg", lines[3])
}

func TestOrdinalLabel(t *testing.T) {
	assert.Equal(t, "primeira", OrdinalLabel(0))
	assert.Equal(t, "quinta", OrdinalLabel(4))
	assert.Equal(t, "6ª", OrdinalLabel(5))
}
