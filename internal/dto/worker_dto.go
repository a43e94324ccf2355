package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ToggleAttendanceRequest flips the attendance mark of one day.
type ToggleAttendanceRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// SaveWorkerEntryRequest records an advance or a salary payment.
type SaveWorkerEntryRequest struct {
	Amount      string  `json:"amount" validate:"required"`
	Date        string  `json:"date"   validate:"required,datetime=2006-01-02"`
	Description *string `json:"description"`
}

// WorkerRangeFilter bounds a worker query to an inclusive date range.
// Empty from/to default to the current calendar month.
type WorkerRangeFilter struct {
	From string `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `form:"to"   validate:"omitempty,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AttendanceResponse struct {
	ID        string `json:"id"`
	WorkerID  string `json:"worker_id"`
	Date      string `json:"date"`
	IsPresent bool   `json:"is_present"`
}

type WorkerEntryResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	Amount      string  `json:"amount"`
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
}

// WorkerSummaryResponse is the engine's payroll reconciliation for one
// worker over the requested range.
type WorkerSummaryResponse struct {
	WorkerID      string `json:"worker_id"`
	WorkerName    string `json:"worker_name"`
	From          string `json:"from"`
	To            string `json:"to"`
	PresentDays   int    `json:"present_days"`
	PerDaySalary  string `json:"per_day_salary"`
	TotalSalary   string `json:"total_salary"`
	TotalAdvances string `json:"total_advances"`
	TotalPayments string `json:"total_payments"`
	Remaining     string `json:"remaining"`
}
