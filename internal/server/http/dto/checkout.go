package dto

// ProductData names a line item.
type ProductData struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PriceData prices a line item in the smallest currency unit.
type PriceData struct {
	Currency    string      `json:"currency"`
	ProductData ProductData `json:"product_data"`
	UnitAmount  int64       `json:"unit_amount"`
}

// LineItem follows the payment provider's line item shape.
type LineItem struct {
	PriceData PriceData `json:"price_data"`
	Quantity  int64     `json:"quantity"`
}

// CheckoutRequest optionally carries explicit line items.
type CheckoutRequest struct {
	LineItems []LineItem `json:"lineItems"`
}

// CheckoutResponse returns the hosted payment page.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
