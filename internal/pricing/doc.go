// Package pricing turns staged tasks and finalized assignments into word totals and prices.
//
// All money is computed in integer cents. The per-word base rate is one cent and urgency
// multipliers are tracked in tenths, so a price is exact until the final half-up rounding
// to whole cents.
package pricing
