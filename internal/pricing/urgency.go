package pricing

import (
	"math"
	"strconv"
	"strings"

	"github.com/polkiloo/gpsolutions/internal/domain/model"
)

// urgencyTenths returns the multiplier for the turnaround request in tenths.
func urgencyTenths(unit model.UrgencyType, value float64) int64 {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		value = 1
	}

	if unit == model.UrgencyHours {
		switch {
		case value <= 1:
			return 30
		case value <= 3:
			return 20
		case value <= 6:
			return 15
		default:
			return 12
		}
	}

	switch {
	case value <= 1:
		return 20
	case value <= 2:
		return 15
	case value <= 3:
		return 12
	default:
		return 10
	}
}

// UrgencyMultiplier maps a turnaround request to its fixed price multiplier.
// Non-finite or non-positive values are priced as one unit; unknown units use the day tiers.
func UrgencyMultiplier(unit model.UrgencyType, value float64) float64 {
	return float64(urgencyTenths(unit, value)) / 10
}

// ResolveUrgency parses a stored urgency value, falling back to one unit when it is unusable.
func ResolveUrgency(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1
	}
	return v
}
