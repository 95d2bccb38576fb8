package pricing

import "github.com/polkiloo/gpsolutions/internal/domain/model"

// BaseRateCentsPerWord is the per-word base rate (0.01 currency units).
const BaseRateCentsPerWord = 1

// AssignmentWords sums normalized word counts across the assignment's tasks.
func AssignmentWords(a model.SingleAssignment) int64 {
	var total int64
	for _, t := range a.Tasks {
		total = addCapped(total, NormalizedWords(t))
	}
	return total
}

// PriceCents returns the assignment price in cents, rounded half-up.
func PriceCents(a model.SingleAssignment) int64 {
	words := AssignmentWords(a)
	if words == 0 {
		return 0
	}
	tenths := urgencyTenths(a.UrgencyType, ResolveUrgency(a.UrgencyValue))
	return (words*BaseRateCentsPerWord*tenths + 5) / 10
}

// CalculateAssignmentPrice returns the assignment price in currency units with two decimals.
func CalculateAssignmentPrice(a model.SingleAssignment) float64 {
	return CentsToAmount(PriceCents(a))
}

// Quote returns the priced breakdown of one assignment.
func Quote(a model.SingleAssignment) model.AssignmentQuote {
	cents := PriceCents(a)
	return model.AssignmentQuote{
		Assignment: a,
		Words:      AssignmentWords(a),
		Multiplier: UrgencyMultiplier(a.UrgencyType, ResolveUrgency(a.UrgencyValue)),
		PriceCents: cents,
		Price:      CentsToAmount(cents),
	}
}

// CentsToAmount converts cents into currency units.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}
