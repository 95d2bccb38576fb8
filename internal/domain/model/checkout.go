package model

import "time"

// CheckoutStatus describes lifecycle of a payment session.
type CheckoutStatus string

const (
	CheckoutStatusOpen     CheckoutStatus = "OPEN"
	CheckoutStatusComplete CheckoutStatus = "COMPLETE"
	CheckoutStatusExpired  CheckoutStatus = "EXPIRED"
)

// LineItem is one priced entry sent to the payment provider.
type LineItem struct {
	Name            string
	Description     string
	Currency        string
	UnitAmountCents int64
	Quantity        int64
}

// CheckoutSession records a payment session created for a browser session.
type CheckoutSession struct {
	ID          int64
	SessionID   string
	ProviderID  string
	URL         string
	Status      CheckoutStatus
	AmountCents int64
	Currency    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PaymentSession is the provider-side view of a checkout session.
type PaymentSession struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	AmountTotal   *int64
}

// Provider-reported session states.
const (
	PaymentSessionOpen     = "open"
	PaymentSessionComplete = "complete"
	PaymentSessionExpired  = "expired"
	PaymentStatusPaid      = "paid"
)
