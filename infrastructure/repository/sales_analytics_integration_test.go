package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

// Executado apenas com TEST_DATABASE_DSN apontando para um banco descartável:
// as tabelas de vendas são truncadas antes do teste.
func openTestDatabase(t *testing.T) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN não definido")
	}

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = migration.Up(db.DB)
	require.NoError(t, err)

	db.MustExec(`TRUNCATE product_sales, sales, customers, products, categories, channels, stores RESTART IDENTITY CASCADE`)
	db.MustExec(`INSERT INTO stores (id, name) VALUES (1, 'Loja 1'), (2, 'Loja 2')`)
	db.MustExec(`INSERT INTO channels (id, name) VALUES (1, 'Presencial'), (2, 'iFood')`)
	db.MustExec(`INSERT INTO categories (id, name) VALUES (1, 'Lanches')`)
	db.MustExec(`INSERT INTO products (id, category_id, name) VALUES (1, 1, 'X-Burger'), (2, NULL, 'Avulso')`)
	db.MustExec(`INSERT INTO customers (id, customer_name) VALUES (1, 'Ana'), (2, 'Bruno')`)

	db.MustExec(`INSERT INTO sales (id, store_id, channel_id, customer_id, created_at, sale_status_desc, total_amount) VALUES
		(1, 1, 1, 1,    '2025-01-01 12:00:00', 'COMPLETED', 100.00),
		(2, 1, 2, 2,    '2025-01-01 19:30:00', 'COMPLETED',  50.25),
		(3, 1, 1, NULL, '2025-01-03 23:15:00', 'COMPLETED',  49.75),
		(4, 1, 1, 1,    '2025-01-02 12:00:00', 'CANCELLED', 999.00),
		(5, 2, 1, 2,    '2025-01-02 13:00:00', 'COMPLETED', 500.00)`)

	db.MustExec(`INSERT INTO product_sales (sale_id, product_id, quantity, base_price, total_price) VALUES
		(1, 1, 2, 30.00, 60.00),
		(1, 2, 1, 40.00, 40.00),
		(2, 1, 1, 50.25, 50.25),
		(3, 2, 1, 49.75, 49.75),
		(4, 1, 9, 111.00, 999.00)`)

	return db
}

func TestSalesAnalyticsRepository_Integration(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewSalesAnalyticsRepository(db, "COMPLETED")
	ctx := context.Background()

	start := domain.Date(2025, time.January, 1)
	end := domain.Date(2025, time.January, 3)
	storeOne := domain.NewFilterSet(&start, &end, []int{1})

	t.Run("Overview conta apenas vendas concluídas da loja", func(t *testing.T) {
		overview, err := repo.GetOverview(ctx, storeOne)
		require.NoError(t, err)
		assert.Equal(t, int64(3), overview.TotalOrders)
		assert.True(t, overview.TotalRevenue.Equal(decimal.RequireFromString("200.00")), overview.TotalRevenue.String())
		assert.True(t, overview.AvgTicket.Equal(decimal.RequireFromString("66.6666666666666667")), overview.AvgTicket.String())
		assert.Equal(t, int64(2), overview.UniqueCustomers)
	})

	t.Run("Filtro de loja exclui as demais", func(t *testing.T) {
		allStores := domain.NewFilterSet(&start, &end, nil)
		overview, err := repo.GetOverview(ctx, allStores)
		require.NoError(t, err)
		assert.Equal(t, int64(4), overview.TotalOrders)
	})

	t.Run("Dia final inteiro é incluído", func(t *testing.T) {
		trends, err := repo.GetSalesTrends(ctx, storeOne, domain.GranularityDay)
		require.NoError(t, err)
		require.Len(t, trends, 2)
		assert.Equal(t, "2025-01-01", trends[0].Period)
		assert.Equal(t, int64(2), trends[0].Orders)
		assert.Equal(t, "2025-01-03", trends[1].Period)
		assert.Equal(t, int64(1), trends[1].Orders)
	})

	t.Run("Semana ISO e mês", func(t *testing.T) {
		weeks, err := repo.GetSalesTrends(ctx, storeOne, domain.GranularityWeek)
		require.NoError(t, err)
		require.Len(t, weeks, 1)
		assert.Equal(t, "2025-W01", weeks[0].Period)

		months, err := repo.GetSalesTrends(ctx, storeOne, domain.GranularityMonth)
		require.NoError(t, err)
		require.Len(t, months, 1)
		assert.Equal(t, "2025-01", months[0].Period)
	})

	t.Run("Top produtos ignora vendas canceladas", func(t *testing.T) {
		products, err := repo.GetTopProducts(ctx, storeOne, 10)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(1), products[0].ProductID)
		assert.True(t, products[0].QuantitySold.Equal(decimal.NewFromInt(3)))
		require.NotNil(t, products[0].Category)
		assert.Equal(t, "Lanches", *products[0].Category)
		assert.Nil(t, products[1].Category)

		limited, err := repo.GetTopProducts(ctx, storeOne, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("Canais e horas", func(t *testing.T) {
		channels, err := repo.GetChannelPerformance(ctx, storeOne)
		require.NoError(t, err)
		require.Len(t, channels, 2)
		assert.Equal(t, "Presencial", channels[0].ChannelName)
		assert.True(t, channels[0].Revenue.Equal(decimal.RequireFromString("149.75")))

		hourly, err := repo.GetHourlySales(ctx, storeOne)
		require.NoError(t, err)
		require.Len(t, hourly, 3)
		assert.Equal(t, []int{12, 19, 23}, []int{hourly[0].Hour, hourly[1].Hour, hourly[2].Hour})
	})

	t.Run("Período sem vendas retorna zeros e listas vazias", func(t *testing.T) {
		emptyStart := domain.Date(2030, time.January, 1)
		emptyEnd := domain.Date(2030, time.January, 31)
		empty := domain.NewFilterSet(&emptyStart, &emptyEnd, nil)

		overview, err := repo.GetOverview(ctx, empty)
		require.NoError(t, err)
		assert.True(t, overview.TotalRevenue.IsZero())
		assert.Equal(t, int64(0), overview.TotalOrders)
		assert.True(t, overview.AvgTicket.IsZero())

		trends, err := repo.GetSalesTrends(ctx, empty, domain.GranularityDay)
		require.NoError(t, err)
		assert.NotNil(t, trends)
		assert.Empty(t, trends)
	})
}
