package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const (
	salesTable        = "sales s"
	productSalesTable = "product_sales ps ON ps.sale_id = s.id"
	productsTable     = "products p ON p.id = ps.product_id"
	categoriesTable   = "categories c ON c.id = p.category_id"
	channelsTable     = "channels ch ON ch.id = s.channel_id"

	saleStatusColumn = "s.sale_status_desc"
	saleCreatedAt    = "s.created_at"
	saleStoreID      = "s.store_id"
)

//go:generate mockgen -source=sales_analytics.go -destination=mocks/sales_analytics.go -package=mocks

// SalesAnalyticsRepository executa as agregações sobre as vendas concluídas
type SalesAnalyticsRepository interface {
	GetOverview(ctx context.Context, filters domain.FilterSet) (*domain.KPIOverview, error)
	GetSalesTrends(ctx context.Context, filters domain.FilterSet, granularity domain.Granularity) ([]domain.SalesTrendPoint, error)
	GetTopProducts(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.TopProduct, error)
	GetChannelPerformance(ctx context.Context, filters domain.FilterSet) ([]domain.ChannelPerformance, error)
	GetHourlySales(ctx context.Context, filters domain.FilterSet) ([]domain.HourlySales, error)
}

type salesAnalyticsRepository struct {
	conn            postgres.Queryer
	completedStatus string
}

func NewSalesAnalyticsRepository(conn postgres.Queryer, completedStatus string) SalesAnalyticsRepository {
	return &salesAnalyticsRepository{
		conn:            conn,
		completedStatus: completedStatus,
	}
}

type overviewRow struct {
	TotalRevenue    decimal.Decimal `db:"total_revenue"`
	TotalOrders     int64           `db:"total_orders"`
	UniqueCustomers int64           `db:"unique_customers"`
}

type trendRow struct {
	Period  string          `db:"period"`
	Revenue decimal.Decimal `db:"revenue"`
	Orders  int64           `db:"orders"`
}

type topProductRow struct {
	ProductID    int64           `db:"product_id"`
	ProductName  string          `db:"product_name"`
	Category     *string         `db:"category"`
	QuantitySold decimal.Decimal `db:"quantity_sold"`
	Revenue      decimal.Decimal `db:"revenue"`
}

type channelRow struct {
	ChannelID   int64           `db:"channel_id"`
	ChannelName string          `db:"channel_name"`
	Revenue     decimal.Decimal `db:"revenue"`
	Orders      int64           `db:"orders"`
}

type hourlyRow struct {
	Hour    int             `db:"hour"`
	Revenue decimal.Decimal `db:"revenue"`
	Orders  int64           `db:"orders"`
}

func (r *salesAnalyticsRepository) GetOverview(ctx context.Context, filters domain.FilterSet) (*domain.KPIOverview, error) {
	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(s.total_amount), 0) AS total_revenue",
			"COUNT(*) AS total_orders",
			"COUNT(DISTINCT s.customer_id) AS unique_customers",
		).
		From(salesTable).
		Where(r.salesConditions(filters)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, dataAccessError("erro ao construir a query de overview", err)
	}

	var row overviewRow
	if err := r.conn.GetContext(ctx, &row, query, args...); err != nil {
		return nil, dataAccessError("erro ao executar a query de overview", err)
	}

	return &domain.KPIOverview{
		TotalRevenue:    row.TotalRevenue,
		TotalOrders:     row.TotalOrders,
		AvgTicket:       domain.AverageTicket(row.TotalRevenue, row.TotalOrders),
		UniqueCustomers: row.UniqueCustomers,
	}, nil
}

func (r *salesAnalyticsRepository) GetSalesTrends(ctx context.Context, filters domain.FilterSet, granularity domain.Granularity) ([]domain.SalesTrendPoint, error) {
	bucket, err := periodExpression(granularity)
	if err != nil {
		return nil, err
	}

	query, args, err := squirrel.
		Select(
			bucket+" AS period",
			"COALESCE(SUM(s.total_amount), 0) AS revenue",
			"COUNT(*) AS orders",
		).
		From(salesTable).
		Where(r.salesConditions(filters)).
		GroupBy("period").
		OrderBy("period ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, dataAccessError("erro ao construir a query de tendências", err)
	}

	var rows []trendRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dataAccessError("erro ao executar a query de tendências", err)
	}

	trends := make([]domain.SalesTrendPoint, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, domain.SalesTrendPoint{
			Period:    row.Period,
			Revenue:   row.Revenue,
			Orders:    row.Orders,
			AvgTicket: domain.AverageTicket(row.Revenue, row.Orders),
		})
	}

	return trends, nil
}

func (r *salesAnalyticsRepository) GetTopProducts(ctx context.Context, filters domain.FilterSet, limit int) ([]domain.TopProduct, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limite de produtos deve ser positivo, recebido %d", domain.ErrInvalidInput, limit)
	}

	query, args, err := squirrel.
		Select(
			"p.id AS product_id",
			"p.name AS product_name",
			"c.name AS category",
			"COALESCE(SUM(ps.quantity), 0) AS quantity_sold",
			"COALESCE(SUM(ps.total_price), 0) AS revenue",
		).
		From(salesTable).
		Join(productSalesTable).
		Join(productsTable).
		LeftJoin(categoriesTable).
		Where(r.salesConditions(filters)).
		Where("ps.product_id IS NOT NULL").
		GroupBy("p.id", "p.name", "c.name").
		OrderBy("quantity_sold DESC", "p.id ASC").
		Suffix("LIMIT ?", limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, dataAccessError("erro ao construir a query de produtos", err)
	}

	var rows []topProductRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dataAccessError("erro ao executar a query de produtos", err)
	}

	products := make([]domain.TopProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, domain.TopProduct{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Category:     row.Category,
			QuantitySold: row.QuantitySold,
			Revenue:      row.Revenue,
		})
	}

	return products, nil
}

func (r *salesAnalyticsRepository) GetChannelPerformance(ctx context.Context, filters domain.FilterSet) ([]domain.ChannelPerformance, error) {
	query, args, err := squirrel.
		Select(
			"ch.id AS channel_id",
			"ch.name AS channel_name",
			"COALESCE(SUM(s.total_amount), 0) AS revenue",
			"COUNT(*) AS orders",
		).
		From(salesTable).
		Join(channelsTable).
		Where(r.salesConditions(filters)).
		GroupBy("ch.id", "ch.name").
		OrderBy("revenue DESC", "ch.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, dataAccessError("erro ao construir a query de canais", err)
	}

	var rows []channelRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dataAccessError("erro ao executar a query de canais", err)
	}

	channels := make([]domain.ChannelPerformance, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, domain.ChannelPerformance{
			ChannelID:   row.ChannelID,
			ChannelName: row.ChannelName,
			Revenue:     row.Revenue,
			Orders:      row.Orders,
			AvgTicket:   domain.AverageTicket(row.Revenue, row.Orders),
		})
	}

	return channels, nil
}

func (r *salesAnalyticsRepository) GetHourlySales(ctx context.Context, filters domain.FilterSet) ([]domain.HourlySales, error) {
	query, args, err := squirrel.
		Select(
			"EXTRACT(HOUR FROM s.created_at)::int AS hour",
			"COALESCE(SUM(s.total_amount), 0) AS revenue",
			"COUNT(*) AS orders",
		).
		From(salesTable).
		Where(r.salesConditions(filters)).
		GroupBy("hour").
		OrderBy("hour ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, dataAccessError("erro ao construir a query de vendas por hora", err)
	}

	var rows []hourlyRow
	if err := r.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, dataAccessError("erro ao executar a query de vendas por hora", err)
	}

	hourly := make([]domain.HourlySales, 0, len(rows))
	for _, row := range rows {
		hourly = append(hourly, domain.HourlySales{
			Hour:      row.Hour,
			Revenue:   row.Revenue,
			Orders:    row.Orders,
			AvgTicket: domain.AverageTicket(row.Revenue, row.Orders),
		})
	}

	return hourly, nil
}

// salesConditions monta o WHERE compartilhado: o status é sempre aplicado,
// datas e lojas apenas quando presentes no filtro.
func (r *salesAnalyticsRepository) salesConditions(filters domain.FilterSet) squirrel.And {
	conditions := squirrel.And{
		squirrel.Eq{saleStatusColumn: r.completedStatus},
	}

	if filters.StartDate != nil {
		conditions = append(conditions, squirrel.GtOrEq{saleCreatedAt: filters.StartDate.Format(time.DateOnly)})
	}

	// Fim inclusivo: tudo antes do início do dia seguinte
	if filters.EndDate != nil {
		conditions = append(conditions, squirrel.Lt{saleCreatedAt: filters.EndDate.AddDate(0, 0, 1).Format(time.DateOnly)})
	}

	if filters.HasStores() {
		conditions = append(conditions, squirrel.Eq{saleStoreID: filters.StoreIDs})
	}

	return conditions
}

func periodExpression(granularity domain.Granularity) (string, error) {
	switch granularity {
	case domain.GranularityDay:
		return "TO_CHAR(s.created_at, 'YYYY-MM-DD')", nil
	case domain.GranularityWeek:
		return `TO_CHAR(s.created_at, 'IYYY-"W"IW')`, nil
	case domain.GranularityMonth:
		return "TO_CHAR(s.created_at, 'YYYY-MM')", nil
	default:
		return "", fmt.Errorf("%w: granularidade desconhecida %q", domain.ErrInvalidInput, granularity)
	}
}

func dataAccessError(message string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDataAccess, message, err)
}
