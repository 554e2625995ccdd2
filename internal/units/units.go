package units

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidUnit   = errors.New("invalid unit")
	ErrInvalidWeight = errors.New("invalid weight value")
)

// Conversion factors to kilograms.
const (
	gramsPerKilogram = 1000.0
	kilogramsPerPound = 0.453592
	kilogramsPerOunce = 0.0283495
)

// ToKilograms converts a weight in the given unit (kg, g, lb, oz) to
// kilograms. Unrecognized units fail with ErrInvalidUnit; non-finite
// values fail with ErrInvalidWeight.
func ToKilograms(value float64, unit string) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidWeight
	}

	switch unit {
	case "kg":
		return value, nil
	case "g":
		return value / gramsPerKilogram, nil
	case "lb":
		return value * kilogramsPerPound, nil
	case "oz":
		return value * kilogramsPerOunce, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
}

// ParseWeight interprets a weight field as decoded from a JSON body,
// which may arrive as a number or a numeric string.
func ParseWeight(raw interface{}) (float64, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, ErrInvalidWeight
		}
		return v, nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, v.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, v)
		}
		return f, nil
	default:
		return 0, ErrInvalidWeight
	}
}
