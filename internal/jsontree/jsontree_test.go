package jsontree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestFind(t *testing.T) {
	v := decode(t, `{
		"props": {
			"pageProps": {
				"product": {
					"imageUrl": "https://cdn.example.com/1.jpg",
					"items": [
						{"imageUrl": "https://cdn.example.com/2.jpg"},
						{"imageUrl": "https://cdn.example.com/3.jpg"}
					]
				}
			}
		}
	}`)

	got := Find(v, func(k string) bool { return k == "imageUrl" })
	assert.Len(t, got, 3)
}

func TestFindHandlesOddShapes(t *testing.T) {
	cases := []string{`null`, `42`, `"text"`, `[]`, `{}`, `[1, "a", null]`}
	for _, c := range cases {
		v := decode(t, c)
		assert.Empty(t, Find(v, func(k string) bool { return true }))
	}
	assert.Empty(t, Find(nil, func(k string) bool { return true }))
}

func TestFindDepthBound(t *testing.T) {
	// Build nesting deeper than MaxDepth; the walk must stop, not recurse
	// without bound.
	deep := map[string]any{"sku": "bottom"}
	for i := 0; i < MaxDepth+10; i++ {
		deep = map[string]any{"wrap": deep}
	}
	got := Find(deep, func(k string) bool { return k == "sku" })
	assert.Empty(t, got)
}

func TestFirstString(t *testing.T) {
	v := decode(t, `{
		"product": {
			"productName": "Furadeira de Impacto",
			"name": "should lose to productName"
		}
	}`)

	assert.Equal(t, "Furadeira de Impacto", FirstString(v, "productName", "name"))
	assert.Equal(t, "Furadeira de Impacto", FirstString(v, "missing", "productName"))
	assert.Equal(t, "", FirstString(v, "missing"))
}

func TestFirstStringNumbers(t *testing.T) {
	v := decode(t, `{"sku": {"price": 129.9, "id": 2450048}}`)

	assert.Equal(t, "129.9", FirstString(v, "price"))
	assert.Equal(t, "2450048", FirstString(v, "id"))
}

func TestFindIsDeterministic(t *testing.T) {
	// Two branches carry the same key; the walk visits map keys in sorted
	// order, so "first" must not vary between runs.
	v := decode(t, `{
		"bundle": {"price": 99.9},
		"current": {"price": 129.9}
	}`)

	for i := 0; i < 50; i++ {
		assert.Equal(t, "99.9", FirstString(v, "price"))
		assert.Equal(t, []string{"99.9", "129.9"}, Strings(v, "price"))
	}
}

func TestStrings(t *testing.T) {
	v := decode(t, `{"images": [{"imageUrl": "a.jpg"}, {"imageUrl": "b.jpg"}]}`)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, Strings(v, "imageUrl"))
}

func TestStringify(t *testing.T) {
	assert.Equal(t, "abc", Stringify("abc"))
	assert.Equal(t, "10", Stringify(float64(10)))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "", Stringify(map[string]any{}))
	assert.Equal(t, "", Stringify(nil))
}
