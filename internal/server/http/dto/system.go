package dto

// SalesBucket is one day or month of sales.
type SalesBucket struct {
	Date         string  `json:"date"`
	Amount       int64   `json:"amount"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CatalogResponse lists selectable project types and topics.
type CatalogResponse struct {
	ProjectTypes []string `json:"projectTypes"`
	Topics       []string `json:"topics"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}
