package dto

// Request/response shapes for the five reference collections. Each list is
// manually orderable: ReorderRequest carries the full new ordering and the
// server rewrites display_order 1..N in one transaction.

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaveCustomerRequest struct {
	ShopName      string  `json:"shop_name" validate:"required,min=1"`
	OwnerName     *string `json:"owner_name"`
	ContactNumber *string `json:"contact_number"`
}

type SaveProductRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type SaveShopRequest struct {
	Name          string  `json:"name" validate:"required,min=1"`
	ContactNumber *string `json:"contact_number"`
}

type SaveItemRequest struct {
	Name string `json:"name" validate:"required,min=1"`
	Unit string `json:"unit" validate:"required,min=1"`
}

type SaveWorkerRequest struct {
	Name          string  `json:"name" validate:"required,min=1"`
	ContactNumber *string `json:"contact_number"`
	PerDaySalary  string  `json:"per_day_salary" validate:"required"`
}

// ReorderRequest lists every id of the collection in its new order.
type ReorderRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// MoveRequest re-inserts one record at a 1-based display position; the
// server rewrites the rest of the ordering around it.
type MoveRequest struct {
	To int `json:"to" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CustomerResponse struct {
	ID            string  `json:"id"`
	ShopName      string  `json:"shop_name"`
	OwnerName     *string `json:"owner_name,omitempty"`
	ContactNumber *string `json:"contact_number,omitempty"`
	DisplayOrder  int     `json:"display_order"`
}

type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

type ShopResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactNumber *string `json:"contact_number,omitempty"`
	DisplayOrder  int     `json:"display_order"`
}

type ItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Unit         string `json:"unit"`
	DisplayOrder int    `json:"display_order"`
}

type WorkerResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContactNumber *string `json:"contact_number,omitempty"`
	PerDaySalary  string  `json:"per_day_salary"`
	DisplayOrder  int     `json:"display_order"`
}
