package entities

type ProfitReportItem struct {
	EstimateID     int64   `json:"estimate_id"`
	EstimateNumber string  `json:"estimate_number"`
	ClientName     string  `json:"client_name"`
	CompletedAt    string  `json:"completed_at"`
	TotalRetail    float64 `json:"total_retail"`
	TotalPurchase  float64 `json:"total_purchase"`
	Profit         float64 `json:"profit"`
	Margin         float64 `json:"margin"`
}

type ProfitReport struct {
	Items              []ProfitReportItem `json:"items"`
	GrandTotalRetail   float64            `json:"grand_total_retail"`
	GrandTotalPurchase float64            `json:"grand_total_purchase"`
	GrandTotalProfit   float64            `json:"grand_total_profit"`
	AverageMargin      float64            `json:"average_margin"`
}

type ProfitDetailItem struct {
	ProductID     int64    `json:"product_id"`
	ProductName   string   `json:"product_name"`
	Unit          *string  `json:"unit"`
	Quantity      float64  `json:"quantity"`
	UnitPrice     float64  `json:"unit_price"`
	PurchasePrice *float64 `json:"purchase_price"`
	TotalRetail   *float64 `json:"total_retail"`
	TotalPurchase *float64 `json:"total_purchase"`
	Difference    *float64 `json:"difference"`
}

type ProfitDetail struct {
	EstimateID    int64              `json:"estimate_id"`
	Items         []ProfitDetailItem `json:"items"`
	TotalRetail   float64            `json:"total_retail"`
	TotalPurchase float64            `json:"total_purchase"`
	TotalProfit   float64            `json:"total_profit"`
}

type DrillingProfitItem struct {
	ContractID       int64   `json:"contract_id"`
	ContractNumber   string  `json:"contract_number"`
	ClientName       string  `json:"client_name"`
	CompletedAt      string  `json:"completed_at"`
	DrillingRetail   float64 `json:"drilling_retail"`
	DrillingPurchase float64 `json:"drilling_purchase"`
	PipePurchase     float64 `json:"pipe_purchase"`
	PipeRetail       float64 `json:"pipe_retail"`
	Profit           float64 `json:"profit"`
}

type DrillingProfitReport struct {
	Items            []DrillingProfitItem `json:"items"`
	GrandTotalProfit float64              `json:"grand_total_profit"`
}

type DashboardSummary struct {
	ProductsToOrderCount     int     `json:"products_to_order_count"`
	EstimatesInProgressCount int     `json:"estimates_in_progress_count"`
	ContractsInProgressCount int     `json:"contracts_in_progress_count"`
	ProfitLast30Days         float64 `json:"profit_last_30_days"`
	DrillingProfitLast30Days float64 `json:"drilling_profit_last_30_days"`
}
