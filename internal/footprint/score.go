package footprint

import "math"

// Score buckets a total footprint into a qualitative rating, with a
// position within the matched tier and the full scale for rendering a
// gauge.
type Score struct {
	Rating     string      `json:"rating"`
	Color      string      `json:"color"`
	Percentage int         `json:"percentage"`
	Scale      []ScoreBand `json:"scale"`
}

// ScoreBand is one tier of the scale. Threshold is nil for the open-ended
// top tier so it serializes as null rather than an unrepresentable
// infinity.
type ScoreBand struct {
	Rating    string   `json:"rating"`
	Threshold *float64 `json:"threshold"`
	Color     string   `json:"color"`
}

type tier struct {
	rating string
	max    float64
	color  string
}

// Tiers are ordered by ascending upper bound; the last is unbounded.
var scoreTiers = []tier{
	{"EXCELLENT", 5, "#4CAF50"},
	{"GOOD", 10, "#8BC34A"},
	{"FAIR", 15, "#FFC107"},
	{"POOR", math.Inf(1), "#F44336"},
}

// ScoreOf maps a total in kg CO2e to its tier: the first whose upper
// bound is at least the total. Percentage is the position within the
// tier, clamped to [0,100]; for the unbounded top tier it is zero.
func ScoreOf(total float64) Score {
	idx := 0
	for i, t := range scoreTiers {
		if total <= t.max {
			idx = i
			break
		}
	}
	current := scoreTiers[idx]

	prevMax := 0.0
	if idx > 0 {
		prevMax = scoreTiers[idx-1].max
	}

	percentage := int(math.Round((total - prevMax) / (current.max - prevMax) * 100))
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	scale := make([]ScoreBand, len(scoreTiers))
	for i, t := range scoreTiers {
		band := ScoreBand{Rating: t.rating, Color: t.color}
		if !math.IsInf(t.max, 1) {
			max := t.max
			band.Threshold = &max
		}
		scale[i] = band
	}

	return Score{
		Rating:     current.rating,
		Color:      current.color,
		Percentage: percentage,
		Scale:      scale,
	}
}
