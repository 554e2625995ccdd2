package footprint

import (
	"fmt"
	"math"

	"github.com/ecofootprint/ecofootprint/internal/factors"
)

// Calculate estimates the footprint of a scraped product in grams CO2e.
// It never fails: unrecognized categories, materials and origins resolve
// to their table defaults, and each resolution is recorded as a
// human-readable assumption in computation order.
func Calculate(rec ProductRecord) Footprint {
	assumptions := make([]string, 0, 3)

	category, categoryFactor := factors.Category(rec.Category)
	manufacturing := rec.WeightKg * categoryFactor
	assumptions = append(assumptions,
		fmt.Sprintf("Manufacturing: %gg/kg for %s", categoryFactor, category))

	material, materialFactor := factors.Material(rec.Material)
	materials := rec.WeightKg * materialFactor
	assumptions = append(assumptions,
		fmt.Sprintf("Material: %gg/kg for %s", materialFactor, material))

	mode := factors.ModeForOrigin(rec.Origin)
	distance := factors.ShippingDistance(rec.Origin)
	transportation := rec.WeightKg * factors.ShippingFactor(mode) * distance
	assumptions = append(assumptions,
		fmt.Sprintf("%s shipping from %s (%gkm)", mode, rec.Origin, distance))

	// The total is rounded from the unrounded sum while the breakdown
	// values are rounded independently; the small drift between them is
	// observable behavior and kept as is.
	total := int(math.Round(manufacturing + materials + transportation))

	return Footprint{
		ProductName:     rec.Name,
		CarbonFootprint: total,
		Breakdown: Breakdown{
			Manufacturing:  int(math.Round(manufacturing)),
			Materials:      int(math.Round(materials)),
			Transportation: int(math.Round(transportation)),
		},
		Assumptions: assumptions,
	}
}
