package footprint

// ProductRecord is a normalized product as derived from a scraped page.
// Fields hold raw scraped values; the calculator applies enum fallbacks
// itself, so any string content is acceptable here.
type ProductRecord struct {
	Name     string
	Price    float64
	WeightKg float64
	Category string
	Material string
	Origin   string
}

// ProductInput is an explicitly provided product description from the
// structured calculation form.
type ProductInput struct {
	Weight             float64
	Unit               string
	ProductType        string
	ManufacturerRegion string
	Materials          []string
}

// Footprint is the scrape-derived estimate in grams CO2e.
type Footprint struct {
	ProductName     string    `json:"productName"`
	CarbonFootprint int       `json:"carbonFootprint"`
	Breakdown       Breakdown `json:"breakdown"`
	Assumptions     []string  `json:"assumptions"`
}

// Breakdown components are rounded independently of the total, so their
// sum may drift from CarbonFootprint by a gram or two.
type Breakdown struct {
	Manufacturing  int `json:"manufacturing"`
	Materials      int `json:"materials"`
	Transportation int `json:"transportation"`
}

// Estimate is the structured-input result in kg CO2e.
type Estimate struct {
	CarbonFootprint Amount            `json:"carbonFootprint"`
	Breakdown       EstimateBreakdown `json:"breakdown"`
	Factors         AppliedFactors    `json:"factors"`
	Score           Score             `json:"score"`
}

// Amount pairs the unrounded numeric value with its display form.
type Amount struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
}

// EstimateBreakdown components are rounded to two decimals for output;
// the total is computed from the unrounded components.
type EstimateBreakdown struct {
	Manufacturing  float64 `json:"manufacturing"`
	Materials      float64 `json:"materials"`
	Transportation float64 `json:"transportation"`
	Energy         float64 `json:"energy"`
}

// AppliedFactors echoes the inputs the estimate was resolved from.
type AppliedFactors struct {
	ProductType        string   `json:"productType"`
	ManufacturerRegion string   `json:"manufacturerRegion"`
	Materials          []string `json:"materials"`
	EnergyMix          float64  `json:"energyMix"`
}
