package factors

// Structured-input path, kg CO2e per kilogram of product. Factors are
// coarser than the scrape-derived tables and carry regional multipliers
// plus an energy-mix component.

var productTypeFactors = map[string]float64{
	"electronics": 12.5,
	"clothing":    3.2,
	"furniture":   7.8,
	"packaging":   2.1,
	"general":     5.0,
}

var manufacturingRegionMultipliers = map[string]float64{
	"north-america": 1.1,
	"europe":        0.9,
	"asia":          1.3,
	"global":        1.0,
}

// kg CO2e per kg of product.
var transportRegionFactors = map[string]float64{
	"north-america": 0.8,
	"europe":        0.6,
	"asia":          1.2,
	"global":        1.0,
}

// kg CO2e per kg of material.
var structuredMaterialFactors = map[string]float64{
	"plastic":  3.5,
	"aluminum": 8.2,
	"steel":    2.9,
	"cotton":   2.1,
	"wood":     0.8,
	"glass":    0.7,
	"rubber":   2.3,
}

// kg CO2e per kWh.
var energyMixFactors = map[string]float64{
	"north-america": 0.45,
	"europe":        0.35,
	"asia":          0.55,
	"global":        0.42,
}

const (
	defaultProductTypeFactor = 5.0
	defaultRegionMultiplier  = 1.0
	defaultEnergyMixFactor   = 0.42
)

// ProductType returns the base manufacturing factor for a product type,
// defaulting to 5.0 kg CO2e/kg for unrecognized types.
func ProductType(name string) float64 {
	if f, ok := productTypeFactors[name]; ok {
		return f
	}
	return defaultProductTypeFactor
}

// ManufacturingRegion returns the regional manufacturing multiplier,
// defaulting to 1.0.
func ManufacturingRegion(region string) float64 {
	if f, ok := manufacturingRegionMultipliers[region]; ok {
		return f
	}
	return defaultRegionMultiplier
}

// TransportRegion returns the regional transport factor in kg CO2e/kg,
// defaulting to 1.0.
func TransportRegion(region string) float64 {
	if f, ok := transportRegionFactors[region]; ok {
		return f
	}
	return defaultRegionMultiplier
}

// StructuredMaterial returns the per-material factor in kg CO2e/kg.
// Unknown materials contribute zero.
func StructuredMaterial(name string) float64 {
	return structuredMaterialFactors[name]
}

// EnergyMix returns the grid emission factor for a region in kg
// CO2e/kWh, defaulting to the global average 0.42.
func EnergyMix(region string) float64 {
	if f, ok := energyMixFactors[region]; ok {
		return f
	}
	return defaultEnergyMixFactor
}
