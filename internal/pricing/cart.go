package pricing

import "github.com/polkiloo/gpsolutions/internal/domain/model"

// Aggregate combines staged tasks and finalized assignments into order-level totals.
//
// StagedWordCount and TotalAssignedWords count explicit word counts only, so documents still
// billed at the default estimate are left out of them. BillableWords is the normalized total
// the price is actually based on.
func Aggregate(staged []model.AssignmentTask, assignments []model.SingleAssignment) model.CartSummary {
	summary := model.CartSummary{Quotes: make([]model.AssignmentQuote, 0, len(assignments))}

	for _, t := range staged {
		summary.StagedWordCount = addCapped(summary.StagedWordCount, ExplicitWords(t))
	}

	for _, a := range assignments {
		q := Quote(a)
		summary.Quotes = append(summary.Quotes, q)
		summary.TotalCents = addCapped(summary.TotalCents, q.PriceCents)
		summary.BillableWords = addCapped(summary.BillableWords, q.Words)
		for _, t := range a.Tasks {
			summary.TotalAssignedWords = addCapped(summary.TotalAssignedWords, ExplicitWords(t))
		}
	}
	summary.TotalPrice = CentsToAmount(summary.TotalCents)

	return summary
}

// TotalPrice sums assignment prices in currency units.
func TotalPrice(assignments []model.SingleAssignment) float64 {
	var cents int64
	for _, a := range assignments {
		cents = addCapped(cents, PriceCents(a))
	}
	return CentsToAmount(cents)
}
