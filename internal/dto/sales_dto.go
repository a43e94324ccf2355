package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SaveDailySaleRequest is shared by POST and PUT. Amount arrives as a raw
// string and is coerced permissively (bad input → 0) by the ledger engine.
type SaveDailySaleRequest struct {
	Date        string `json:"date"         validate:"required,datetime=2006-01-02"`
	TotalAmount string `json:"total_amount" validate:"required"`
}

type DailySaleFilter struct {
	Limit int `form:"limit,default=30" validate:"min=1,max=365"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DailySaleResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}
