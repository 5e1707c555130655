package domain

import "github.com/shopspring/decimal"

// KPIOverview resume os indicadores principais do período.
// RevenueChange e OrdersChange só são preenchidos pelo serviço de analytics.
type KPIOverview struct {
	TotalRevenue    decimal.Decimal
	TotalOrders     int64
	AvgTicket       decimal.Decimal
	UniqueCustomers int64
	RevenueChange   *decimal.Decimal
	OrdersChange    *decimal.Decimal
}

// SalesTrendPoint é um ponto da série temporal, indexado pela chave interna Period
type SalesTrendPoint struct {
	Period    string
	Revenue   decimal.Decimal
	Orders    int64
	AvgTicket decimal.Decimal
}

type TopProduct struct {
	ProductID    int64
	ProductName  string
	Category     *string
	QuantitySold decimal.Decimal
	Revenue      decimal.Decimal
}

type ChannelPerformance struct {
	ChannelID   int64
	ChannelName string
	Revenue     decimal.Decimal
	Orders      int64
	AvgTicket   decimal.Decimal
}

type HourlySales struct {
	Hour      int
	Revenue   decimal.Decimal
	Orders    int64
	AvgTicket decimal.Decimal
}

// AverageTicket calcula receita / pedidos, retornando zero quando não há pedidos
func AverageTicket(revenue decimal.Decimal, orders int64) decimal.Decimal {
	if orders <= 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(orders))
}
