package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/sales-analytics-api/pkg/log"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type kpiOverviewResponse struct {
	TotalRevenue    float64  `json:"total_revenue"`
	TotalOrders     int64    `json:"total_orders"`
	AvgTicket       float64  `json:"avg_ticket"`
	UniqueCustomers int64    `json:"unique_customers"`
	RevenueChange   *float64 `json:"revenue_change,omitempty"`
	OrdersChange    *float64 `json:"orders_change,omitempty"`
}

// salesTrendResponse expõe o bucket da série como "date"
type salesTrendResponse struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Orders    int64   `json:"orders"`
	AvgTicket float64 `json:"avg_ticket"`
}

type topProductResponse struct {
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	Category     *string `json:"category"`
	QuantitySold float64 `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type channelPerformanceResponse struct {
	ChannelID   int64   `json:"channel_id"`
	ChannelName string  `json:"channel_name"`
	Revenue     float64 `json:"revenue"`
	Orders      int64   `json:"orders"`
	AvgTicket   float64 `json:"avg_ticket"`
}

type hourlySalesResponse struct {
	Hour      int     `json:"hour"`
	Revenue   float64 `json:"revenue"`
	Orders    int64   `json:"orders"`
	AvgTicket float64 `json:"avg_ticket"`
}

type dashboardResponse struct {
	Overview           *kpiOverviewResponse         `json:"overview"`
	SalesTrends        []salesTrendResponse         `json:"sales_trends"`
	TopProducts        []topProductResponse         `json:"top_products"`
	ChannelPerformance []channelPerformanceResponse `json:"channel_performance"`
	HourlySales        []hourlySalesResponse        `json:"hourly_sales"`
}

func newDashboardResponse(result *domain.DashboardResult) dashboardResponse {
	return dashboardResponse{
		Overview:           newKPIOverviewResponse(result.Overview),
		SalesTrends:        newSalesTrendsResponse(result.SalesTrends),
		TopProducts:        newTopProductsResponse(result.TopProducts),
		ChannelPerformance: newChannelPerformanceResponse(result.ChannelPerformance),
		HourlySales:        newHourlySalesResponse(result.HourlySales),
	}
}

func newKPIOverviewResponse(overview *domain.KPIOverview) *kpiOverviewResponse {
	if overview == nil {
		return nil
	}

	return &kpiOverviewResponse{
		TotalRevenue:    utils.RoundWithTwoDecimalPlace(overview.TotalRevenue),
		TotalOrders:     overview.TotalOrders,
		AvgTicket:       utils.RoundWithTwoDecimalPlace(overview.AvgTicket),
		UniqueCustomers: overview.UniqueCustomers,
		RevenueChange:   percentage(overview.RevenueChange),
		OrdersChange:    percentage(overview.OrdersChange),
	}
}

// newSalesTrendsResponse é o único ponto que traduz a chave interna "period" para "date";
// todo handler que devolve tendências passa por aqui.
func newSalesTrendsResponse(points []domain.SalesTrendPoint) []salesTrendResponse {
	trends := make([]salesTrendResponse, 0, len(points))
	for _, point := range points {
		trends = append(trends, salesTrendResponse{
			Date:      point.Period,
			Revenue:   utils.RoundWithTwoDecimalPlace(point.Revenue),
			Orders:    point.Orders,
			AvgTicket: utils.RoundWithTwoDecimalPlace(point.AvgTicket),
		})
	}
	return trends
}

func newTopProductsResponse(products []domain.TopProduct) []topProductResponse {
	response := make([]topProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, topProductResponse{
			ProductID:    product.ProductID,
			ProductName:  product.ProductName,
			Category:     product.Category,
			QuantitySold: product.QuantitySold.InexactFloat64(),
			Revenue:      utils.RoundWithTwoDecimalPlace(product.Revenue),
		})
	}
	return response
}

func newChannelPerformanceResponse(channels []domain.ChannelPerformance) []channelPerformanceResponse {
	response := make([]channelPerformanceResponse, 0, len(channels))
	for _, channel := range channels {
		response = append(response, channelPerformanceResponse{
			ChannelID:   channel.ChannelID,
			ChannelName: channel.ChannelName,
			Revenue:     utils.RoundWithTwoDecimalPlace(channel.Revenue),
			Orders:      channel.Orders,
			AvgTicket:   utils.RoundWithTwoDecimalPlace(channel.AvgTicket),
		})
	}
	return response
}

func newHourlySalesResponse(hourly []domain.HourlySales) []hourlySalesResponse {
	response := make([]hourlySalesResponse, 0, len(hourly))
	for _, h := range hourly {
		response = append(response, hourlySalesResponse{
			Hour:      h.Hour,
			Revenue:   utils.RoundWithTwoDecimalPlace(h.Revenue),
			Orders:    h.Orders,
			AvgTicket: utils.RoundWithTwoDecimalPlace(h.AvgTicket),
		})
	}
	return response
}

func percentage(value *decimal.Decimal) *float64 {
	if value == nil {
		return nil
	}
	f := utils.RoundWithTwoDecimalPlace(*value)
	return &f
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithField("error", err.Error()).Error("analytics: failed to encode response")
	}
}

// writeError registra o erro completo no log e responde apenas com código e mensagem segura
func writeError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	apiErr := apiErrors.Write(w, err)
	logger := log.ForContext(r.Context()).WithFields(log.Fields{
		"endpoint":   endpoint,
		"error":      err.Error(),
		"error_code": apiErr.Code,
	})

	if apiErrors.Status(apiErr.Code) >= http.StatusInternalServerError {
		logger.Error("analytics: request failed")
		return
	}
	logger.Warn("analytics: invalid request")
}
