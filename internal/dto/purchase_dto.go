package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// SavePurchaseRequest is shared by POST and PUT. Quantity is free text
// ("2 bag"); monetary fields are permissive strings.
type SavePurchaseRequest struct {
	ShopID       string `json:"shop_id"       validate:"required,uuid"`
	ItemID       string `json:"item_id"       validate:"required,uuid"`
	Quantity     string `json:"quantity"      validate:"required"`
	Amount       string `json:"amount"`
	Date         string `json:"date"          validate:"required,datetime=2006-01-02"`
	PurchaseTime string `json:"purchase_time" validate:"required,datetime=15:04"`
	TotalBill    string `json:"total_bill"`
	PaidAmount   string `json:"paid_amount"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PurchaseResponse struct {
	ID              string        `json:"id"`
	Shop            *ShopResponse `json:"shop,omitempty"`
	Item            *ItemResponse `json:"item,omitempty"`
	Quantity        string        `json:"quantity"`
	Amount          string        `json:"amount"`
	Date            string        `json:"date"`
	PurchaseTime    string        `json:"purchase_time"`
	TotalBill       string        `json:"total_bill"`
	PaidAmount      string        `json:"paid_amount"`
	RemainingAmount string        `json:"remaining_amount"`
	CreatedAt       string        `json:"created_at"`
}
