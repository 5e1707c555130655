package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
	"github.com/vfg2006/sales-analytics-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

var hundred = decimal.NewFromInt(100)

type Service struct {
	cfg        config.Analytics
	repository repository.SalesAnalyticsRepository
	location   *time.Location
	now        func() time.Time
}

func NewService(cfg *config.Config, salesAnalyticsRepository repository.SalesAnalyticsRepository) *Service {
	location, err := cfg.Location()
	if err != nil {
		logrus.Warnf("Fuso horário %q inválido, usando o fuso local: %v", cfg.App.Timezone, err)
		location = time.Local
	}

	return &Service{
		cfg:        cfg.Analytics,
		repository: salesAnalyticsRepository,
		location:   location,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado para calcular "hoje"
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// NormalizeFilters converte a entrada crua em um FilterSet canônico.
// Sem data inicial usa hoje menos a janela padrão; sem data final usa hoje.
func (s *Service) NormalizeFilters(input FilterInput) (domain.FilterSet, error) {
	today := domain.CalendarDate(s.now().In(s.location))

	startDate := today.AddDate(0, 0, -s.cfg.DefaultWindowDays)
	if parsed, err := parseDate("start_date", input.StartDate); err != nil {
		return domain.FilterSet{}, err
	} else if parsed != nil {
		startDate = *parsed
	}

	endDate := today
	if parsed, err := parseDate("end_date", input.EndDate); err != nil {
		return domain.FilterSet{}, err
	} else if parsed != nil {
		endDate = *parsed
	}

	if startDate.After(endDate) {
		return domain.FilterSet{}, fmt.Errorf("%w: start_date %s é posterior a end_date %s",
			domain.ErrInvalidInput, startDate.Format(time.DateOnly), endDate.Format(time.DateOnly))
	}

	for _, id := range input.StoreIDs {
		if id <= 0 {
			return domain.FilterSet{}, fmt.Errorf("%w: store_id deve ser positivo, recebido %d", domain.ErrInvalidInput, id)
		}
	}

	return domain.NewFilterSet(&startDate, &endDate, input.StoreIDs), nil
}

// DerivePreviousPeriod retorna a janela de mesmo tamanho imediatamente anterior à atual
func DerivePreviousPeriod(filters domain.FilterSet) (domain.FilterSet, error) {
	if filters.StartDate == nil || filters.EndDate == nil {
		return domain.FilterSet{}, fmt.Errorf("%w: período anterior exige data inicial e final", domain.ErrInvalidInput)
	}

	days := filters.Days()
	previousEnd := filters.StartDate.AddDate(0, 0, -1)
	previousStart := filters.StartDate.AddDate(0, 0, -days)

	return domain.NewFilterSet(&previousStart, &previousEnd, filters.StoreIDs), nil
}

// PercentageChange retorna a variação percentual; anterior zero é reportado como sem variação
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(hundred).Round(2)
}

func (s *Service) BuildDashboard(ctx context.Context, input FilterInput) (*domain.DashboardResult, error) {
	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}

	previousFilters, err := DerivePreviousPeriod(filters)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"filters":  filters.String(),
		"previous": previousFilters.String(),
		"parallel": s.cfg.ParallelQueries,
	}).Debug("analytics: montando dashboard")

	var (
		result   domain.DashboardResult
		previous *domain.KPIOverview
	)

	queries := []func(ctx context.Context) error{
		func(ctx context.Context) (err error) {
			result.Overview, err = s.repository.GetOverview(ctx, filters)
			return err
		},
		func(ctx context.Context) (err error) {
			result.SalesTrends, err = s.repository.GetSalesTrends(ctx, filters, domain.GranularityDay)
			return err
		},
		func(ctx context.Context) (err error) {
			result.TopProducts, err = s.repository.GetTopProducts(ctx, filters, s.cfg.DefaultTopProductsLimit)
			return err
		},
		func(ctx context.Context) (err error) {
			result.ChannelPerformance, err = s.repository.GetChannelPerformance(ctx, filters)
			return err
		},
		func(ctx context.Context) (err error) {
			result.HourlySales, err = s.repository.GetHourlySales(ctx, filters)
			return err
		},
		func(ctx context.Context) (err error) {
			previous, err = s.repository.GetOverview(ctx, previousFilters)
			return err
		},
	}

	if err := s.run(ctx, queries); err != nil {
		return nil, err
	}

	applyChanges(result.Overview, previous)

	return &result, nil
}

func (s *Service) GetOverview(ctx context.Context, input FilterInput) (*domain.KPIOverview, error) {
	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}

	previousFilters, err := DerivePreviousPeriod(filters)
	if err != nil {
		return nil, err
	}

	var current, previous *domain.KPIOverview
	err = s.run(ctx, []func(ctx context.Context) error{
		func(ctx context.Context) (err error) {
			current, err = s.repository.GetOverview(ctx, filters)
			return err
		},
		func(ctx context.Context) (err error) {
			previous, err = s.repository.GetOverview(ctx, previousFilters)
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	applyChanges(current, previous)

	return current, nil
}

func (s *Service) GetSalesTrends(ctx context.Context, input FilterInput, granularity domain.Granularity) ([]domain.SalesTrendPoint, error) {
	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}
	return s.repository.GetSalesTrends(ctx, filters, granularity)
}

func (s *Service) GetTopProducts(ctx context.Context, input FilterInput, limit int) ([]domain.TopProduct, error) {
	if limit == 0 {
		limit = s.cfg.DefaultTopProductsLimit
	}
	if limit < 1 || limit > s.cfg.MaxTopProductsLimit {
		return nil, fmt.Errorf("%w: limit deve estar entre 1 e %d, recebido %d", domain.ErrInvalidInput, s.cfg.MaxTopProductsLimit, limit)
	}

	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}
	return s.repository.GetTopProducts(ctx, filters, limit)
}

func (s *Service) GetChannelPerformance(ctx context.Context, input FilterInput) ([]domain.ChannelPerformance, error) {
	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}
	return s.repository.GetChannelPerformance(ctx, filters)
}

func (s *Service) GetHourlySales(ctx context.Context, input FilterInput) ([]domain.HourlySales, error) {
	filters, err := s.NormalizeFilters(input)
	if err != nil {
		return nil, err
	}
	return s.repository.GetHourlySales(ctx, filters)
}

// run executa as consultas em paralelo ou em sequência conforme a configuração.
// Cada consulta escreve no seu próprio destino, então a montagem não depende da ordem de término.
func (s *Service) run(ctx context.Context, queries []func(ctx context.Context) error) error {
	if !s.cfg.ParallelQueries {
		for _, query := range queries {
			if err := query(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, query := range queries {
		group.Go(func() error {
			return query(groupCtx)
		})
	}
	return group.Wait()
}

func applyChanges(current, previous *domain.KPIOverview) {
	if current == nil || previous == nil {
		return
	}

	revenueChange := PercentageChange(current.TotalRevenue, previous.TotalRevenue)
	ordersChange := PercentageChange(decimal.NewFromInt(current.TotalOrders), decimal.NewFromInt(previous.TotalOrders))

	current.RevenueChange = &revenueChange
	current.OrdersChange = &ordersChange
}

func parseDate(field, value string) (*time.Time, error) {
	parsed, err := utils.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s deve estar no formato YYYY-MM-DD, recebido %q", domain.ErrInvalidInput, field, value)
	}
	return parsed, nil
}
