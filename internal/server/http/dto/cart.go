package dto

// QuotedAssignment is an assignment with its price breakdown.
type QuotedAssignment struct {
	Assignment
	Words      int64   `json:"words"`
	Multiplier float64 `json:"multiplier"`
	Price      float64 `json:"price"`
}

// CartResponse summarizes the session's order.
type CartResponse struct {
	Assignments        []QuotedAssignment `json:"assignments"`
	TotalPrice         float64            `json:"totalPrice"`
	StagedWordCount    int64              `json:"stagedWordCount"`
	TotalAssignedWords int64              `json:"totalAssignedWords"`
	BillableWords      int64              `json:"billableWords"`
}
