package domain

type SalesSummary struct {
	TotalOrders  int            `json:"totalOrders"`
	TotalRevenue float64        `json:"totalRevenue"`
	ProductSales map[string]int `json:"productSales"`
}
