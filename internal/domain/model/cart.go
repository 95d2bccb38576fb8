package model

// AssignmentQuote is the priced view of a single assignment.
type AssignmentQuote struct {
	Assignment SingleAssignment
	Words      int64
	Multiplier float64
	PriceCents int64
	Price      float64
}

// CartSummary aggregates order-level totals for display and checkout.
type CartSummary struct {
	Quotes             []AssignmentQuote
	TotalPrice         float64
	TotalCents         int64
	StagedWordCount    int64
	TotalAssignedWords int64
	BillableWords      int64
}
