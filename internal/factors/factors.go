package factors

// Emission factor tables for both calculation paths. The tables are
// package-level and read-only; lookups are total over all string inputs
// and resolve unknown keys to documented defaults instead of failing.

// Scrape-derived path, grams CO2e per kilogram of product.
var categoryFactors = map[string]float64{
	"electronics": 85,
	"clothing":    15,
	"furniture":   30,
	"appliances":  120,
	"general":     50,
}

var materialFactors = map[string]float64{
	"plastic":   6,
	"cotton":    4,
	"metal":     8,
	"glass":     10,
	"composite": 15,
}

// ShippingMode identifies how a product travels from its origin.
type ShippingMode string

const (
	ModeAir  ShippingMode = "air"
	ModeSea  ShippingMode = "sea"
	ModeRoad ShippingMode = "road"
)

// Grams CO2e per kilogram per kilometre.
var shippingFactors = map[ShippingMode]float64{
	ModeAir:  0.5,
	ModeSea:  0.01,
	ModeRoad: 0.2,
}

// Typical shipping distances in km from common manufacturing countries
// to US/EU markets.
var shippingDistances = map[string]float64{
	"CN": 8000,
	"IN": 7000,
	"DE": 500,
	"US": 1500,
	"VN": 9000,
}

var seaRouteOrigins = map[string]bool{
	"CN": true,
	"IN": true,
	"VN": true,
	"ID": true,
	"MY": true,
}

const (
	defaultCategory         = "general"
	defaultMaterial         = "composite"
	defaultShippingDistance = 5000.0
)

// Category resolves a product category to its manufacturing emission
// factor in grams CO2e per kg. Unrecognized categories resolve to
// "general"; the resolved key is returned alongside the factor.
func Category(name string) (string, float64) {
	if f, ok := categoryFactors[name]; ok {
		return name, f
	}
	return defaultCategory, categoryFactors[defaultCategory]
}

// Material resolves a product material to its emission factor in grams
// CO2e per kg, falling back to "composite" for unrecognized materials.
func Material(name string) (string, float64) {
	if f, ok := materialFactors[name]; ok {
		return name, f
	}
	return defaultMaterial, materialFactors[defaultMaterial]
}

// ModeForOrigin picks the shipping mode for an origin country code.
// Common far-east manufacturing origins ship by sea, everything else
// by air.
func ModeForOrigin(code string) ShippingMode {
	if seaRouteOrigins[code] {
		return ModeSea
	}
	return ModeAir
}

// ShippingFactor returns the emission factor for a shipping mode in
// grams CO2e per kg per km.
func ShippingFactor(mode ShippingMode) float64 {
	if f, ok := shippingFactors[mode]; ok {
		return f
	}
	return shippingFactors[ModeAir]
}

// ShippingDistance estimates the shipping distance in km for an origin
// country code, defaulting to 5000 km for unknown origins.
func ShippingDistance(code string) float64 {
	if d, ok := shippingDistances[code]; ok {
		return d
	}
	return defaultShippingDistance
}
