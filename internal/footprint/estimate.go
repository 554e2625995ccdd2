package footprint

import (
	"errors"
	"fmt"
	"math"

	"github.com/ecofootprint/ecofootprint/internal/factors"
	"github.com/ecofootprint/ecofootprint/internal/units"
)

// ErrMissingField is returned when a required structured-input field is
// absent from the request.
var ErrMissingField = errors.New("missing required fields")

// NewEstimate computes the footprint for an explicitly described
// product in kg CO2e. Weight normalization failures from the units
// package propagate unchanged.
func NewEstimate(in ProductInput) (Estimate, error) {
	if in.Unit == "" || in.ProductType == "" || in.ManufacturerRegion == "" {
		return Estimate{}, ErrMissingField
	}

	weightKg, err := units.ToKilograms(in.Weight, in.Unit)
	if err != nil {
		return Estimate{}, err
	}

	var materialImpact float64
	for _, m := range in.Materials {
		materialImpact += factors.StructuredMaterial(m)
	}

	energyFactor := factors.EnergyMix(in.ManufacturerRegion)

	manufacturing := weightKg * factors.ProductType(in.ProductType) *
		factors.ManufacturingRegion(in.ManufacturerRegion)
	materials := weightKg * materialImpact
	transportation := weightKg * factors.TransportRegion(in.ManufacturerRegion)
	energy := manufacturing * energyFactor

	total := manufacturing + materials + transportation + energy

	materialsEcho := in.Materials
	if materialsEcho == nil {
		materialsEcho = []string{}
	}

	return Estimate{
		CarbonFootprint: Amount{
			Value:   total,
			Display: fmt.Sprintf("%.2f kg CO₂e", total),
		},
		Breakdown: EstimateBreakdown{
			Manufacturing:  round2(manufacturing),
			Materials:      round2(materials),
			Transportation: round2(transportation),
			Energy:         round2(energy),
		},
		Factors: AppliedFactors{
			ProductType:        in.ProductType,
			ManufacturerRegion: in.ManufacturerRegion,
			Materials:          materialsEcho,
			EnergyMix:          energyFactor,
		},
		Score: ScoreOf(total),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
