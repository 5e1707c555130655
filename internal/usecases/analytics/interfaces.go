package analytics

import (
	"context"

	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/analyzer.go -package=mocks

// FilterInput carrega os parâmetros de filtro como chegaram na requisição
type FilterInput struct {
	StartDate string
	EndDate   string
	StoreIDs  []int
}

// Analyzer expõe o dashboard composto e as métricas individuais
type Analyzer interface {
	// BuildDashboard monta o dashboard completo, incluindo a variação contra o período anterior
	BuildDashboard(ctx context.Context, input FilterInput) (*domain.DashboardResult, error)

	// GetOverview retorna os KPIs do período com as variações preenchidas
	GetOverview(ctx context.Context, input FilterInput) (*domain.KPIOverview, error)

	GetSalesTrends(ctx context.Context, input FilterInput, granularity domain.Granularity) ([]domain.SalesTrendPoint, error)

	// GetTopProducts aceita limit 0 para usar o limite padrão
	GetTopProducts(ctx context.Context, input FilterInput, limit int) ([]domain.TopProduct, error)

	GetChannelPerformance(ctx context.Context, input FilterInput) ([]domain.ChannelPerformance, error)

	GetHourlySales(ctx context.Context, input FilterInput) ([]domain.HourlySales, error)
}
