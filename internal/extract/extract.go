package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ecofootprint/ecofootprint/internal/footprint"
)

// Per-field defaults applied when neither structured data nor meta tags
// provide a value.
const (
	defaultWeightKg = 1.0
	defaultCategory = "general"
	defaultMaterial = "composite"
	defaultOrigin   = "CN"
)

// productSchema is the subset of a schema.org Product node we consume.
type productSchema struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Material string `json:"material"`
	Origin   string `json:"countryOfOrigin"`
	Weight   struct {
		Value interface{} `json:"value"`
	} `json:"weight"`
	Offers struct {
		Price interface{} `json:"price"`
	} `json:"offers"`
}

// Product derives a normalized product record from a fetched HTML page.
// Structured ld+json product metadata wins when present and parseable;
// otherwise extraction falls back to Open Graph style meta tags, and
// absent fields resolve to per-field defaults. It only fails when the
// document itself cannot be tokenized.
func Product(html []byte) (footprint.ProductRecord, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return footprint.ProductRecord{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	if rec, ok := fromStructuredData(doc); ok {
		return rec, nil
	}
	return fromMetaTags(doc), nil
}

func fromStructuredData(doc *goquery.Document) (footprint.ProductRecord, bool) {
	var rec footprint.ProductRecord
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var schema productSchema
		if err := json.Unmarshal([]byte(s.Text()), &schema); err != nil {
			return true
		}
		if schema.Type != "Product" {
			return true
		}

		rec = footprint.ProductRecord{
			Name:     schema.Name,
			Price:    numberOr(schema.Offers.Price, 0),
			WeightKg: numberOr(schema.Weight.Value, defaultWeightKg),
			Category: stringOr(strings.ToLower(schema.Category), defaultCategory),
			Material: stringOr(strings.ToLower(schema.Material), defaultMaterial),
			Origin:   stringOr(schema.Origin, defaultOrigin),
		}
		found = true
		return false
	})

	return rec, found
}

func fromMetaTags(doc *goquery.Document) footprint.ProductRecord {
	name := metaContent(doc, "og:title")
	if name == "" {
		name = strings.TrimSpace(doc.Find("title").First().Text())
	}

	return footprint.ProductRecord{
		Name:     name,
		Price:    floatOr(metaContent(doc, "product:price:amount"), 0),
		WeightKg: floatOr(metaContent(doc, "product:weight:value"), defaultWeightKg),
		Category: stringOr(strings.ToLower(metaContent(doc, "product:category")), defaultCategory),
		Material: stringOr(strings.ToLower(metaContent(doc, "product:material")), defaultMaterial),
		Origin:   stringOr(metaContent(doc, "product:origin"), defaultOrigin),
	}
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}

func stringOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func floatOr(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

// numberOr tolerates the loose typing of real-world ld+json, where
// numeric fields show up as numbers or as strings.
func numberOr(raw interface{}, fallback float64) float64 {
	switch v := raw.(type) {
	case float64:
		return v
	case string:
		return floatOr(v, fallback)
	default:
		return fallback
	}
}
