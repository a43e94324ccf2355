package dto

// DashboardFilter selects one of the three fixed period presets.
type DashboardFilter struct {
	Period string `form:"period,default=today" validate:"omitempty,oneof=today month year"`
}

// DashboardResponse carries the four stream totals plus the signed net
// profit, all derived by the ledger engine.
type DashboardResponse struct {
	Period      string `json:"period"`
	From        string `json:"from"`
	To          string `json:"to"`
	Sales       string `json:"sales"`
	BulkSales   string `json:"bulk_sales"`
	Purchases   string `json:"purchases"`
	WorkerCosts string `json:"worker_costs"`
	NetProfit   string `json:"net_profit"`
}
