package domain

// DashboardResult compõe todas as visões agregadas de uma requisição
type DashboardResult struct {
	Overview           *KPIOverview
	SalesTrends        []SalesTrendPoint
	TopProducts        []TopProduct
	ChannelPerformance []ChannelPerformance
	HourlySales        []HourlySales
}
