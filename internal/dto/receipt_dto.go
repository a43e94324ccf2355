package dto

// CreateReceiptRequest asks for an async PDF render of one record.
// kind=worker_report renders the monthly payroll summary for the worker.
type CreateReceiptRequest struct {
	Kind  string `json:"kind"   validate:"required,oneof=daily_sale purchase bulk_sale worker_report"`
	RefID string `json:"ref_id" validate:"required,uuid"`
}

type ReceiptResponse struct {
	ID         string  `json:"id"`
	Kind       string  `json:"kind"`
	RefID      string  `json:"ref_id"`
	Status     string  `json:"status"`
	RetryCount int     `json:"retry_count"`
	LastError  *string `json:"last_error,omitempty"`
	CreatedAt  string  `json:"created_at"`
}
