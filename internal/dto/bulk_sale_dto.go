package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaveBulkSaleRequest is shared by POST and PUT. Quantity, price and paid
// amount arrive as raw strings; the engine coerces bad input to 0 and
// derives total and remaining — clients never send derived fields.
type SaveBulkSaleRequest struct {
	CustomerID string `json:"customer_id"  validate:"required,uuid"`
	ProductID  string `json:"product_id"   validate:"required,uuid"`
	Quantity   string `json:"quantity"`
	PricePerKg string `json:"price_per_kg"`
	Date       string `json:"date"         validate:"required,datetime=2006-01-02"`
	PaidAmount string `json:"paid_amount"`
}

// RecordPaymentRequest updates only the paid side of a transaction;
// remaining is re-derived from the stored total.
type RecordPaymentRequest struct {
	PaidAmount string `json:"paid_amount" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BulkSaleResponse struct {
	ID              string            `json:"id"`
	Customer        *CustomerResponse `json:"customer,omitempty"`
	Product         *ProductResponse  `json:"product,omitempty"`
	Quantity        string            `json:"quantity"`
	PricePerKg      string            `json:"price_per_kg"`
	TotalAmount     string            `json:"total_amount"`
	Date            string            `json:"date"`
	PaidAmount      string            `json:"paid_amount"`
	RemainingAmount string            `json:"remaining_amount"`
	CreatedAt       string            `json:"created_at"`
}
