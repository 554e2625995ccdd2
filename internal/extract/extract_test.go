package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductFromStructuredData(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">
		{
			"@type": "Product",
			"name": "Bamboo Cutting Board",
			"category": "Furniture",
			"material": "Composite",
			"countryOfOrigin": "VN",
			"weight": {"value": 1.8},
			"offers": {"price": 24.99}
		}
		</script>
	</head><body></body></html>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Bamboo Cutting Board", rec.Name)
	assert.Equal(t, 1.8, rec.WeightKg)
	assert.Equal(t, "furniture", rec.Category)
	assert.Equal(t, "composite", rec.Material)
	assert.Equal(t, "VN", rec.Origin)
	assert.Equal(t, 24.99, rec.Price)
}

func TestProductStructuredDataStringNumbers(t *testing.T) {
	html := `<script type="application/ld+json">
		{"@type": "Product", "name": "Mug", "weight": {"value": "0.35"}, "offers": {"price": "9.50"}}
	</script>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, 0.35, rec.WeightKg)
	assert.Equal(t, 9.5, rec.Price)
}

func TestProductStructuredDataEscapes(t *testing.T) {
	// Escaped sequences inside ld+json strings must survive parsing.
	html := `<script type="application/ld+json">
		{"@type": "Product", "name": "12\" Vinyl — \"Best Of\"", "category": "general"}
	</script>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "12\" Vinyl — \"Best Of\"", rec.Name)
}

func TestProductSkipsNonProductSchemas(t *testing.T) {
	html := `
		<script type="application/ld+json">{"@type": "Organization", "name": "Acme"}</script>
		<script type="application/ld+json">{"@type": "Product", "name": "Widget", "category": "electronics"}</script>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Widget", rec.Name)
	assert.Equal(t, "electronics", rec.Category)
}

func TestProductMalformedStructuredDataFallsBack(t *testing.T) {
	html := `<html><head>
		<script type="application/ld+json">{"@type": "Product", "name": broken}</script>
		<meta property="og:title" content="Fallback Lamp">
		<meta property="product:category" content="Furniture">
	</head></html>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Fallback Lamp", rec.Name)
	assert.Equal(t, "furniture", rec.Category)
}

func TestProductFromMetaTags(t *testing.T) {
	html := `<html><head>
		<meta property="og:title" content="Steel Bottle">
		<meta property="product:price:amount" content="19.90">
		<meta property="product:weight:value" content="0.4">
		<meta property="product:category" content="General">
		<meta property="product:material" content="Metal">
		<meta property="product:origin" content="DE">
	</head><body></body></html>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Steel Bottle", rec.Name)
	assert.Equal(t, 19.9, rec.Price)
	assert.Equal(t, 0.4, rec.WeightKg)
	assert.Equal(t, "general", rec.Category)
	assert.Equal(t, "metal", rec.Material)
	assert.Equal(t, "DE", rec.Origin)
}

func TestProductDefaults(t *testing.T) {
	html := `<html><head><title>  Bare Page  </title></head><body></body></html>`

	rec, err := Product([]byte(html))
	require.NoError(t, err)

	assert.Equal(t, "Bare Page", rec.Name, "title text is the last-resort name")
	assert.Equal(t, 1.0, rec.WeightKg)
	assert.Equal(t, "general", rec.Category)
	assert.Equal(t, "composite", rec.Material)
	assert.Equal(t, "CN", rec.Origin)
	assert.Equal(t, 0.0, rec.Price)
}
