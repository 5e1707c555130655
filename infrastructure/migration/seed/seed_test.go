package seed

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
)

func TestSeedRejectsEmptyOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "sem dias", opts: Options{SalesPerDay: 10}},
		{name: "sem vendas por dia", opts: Options{Days: 10}},
		{name: "negativos", opts: Options{Days: -1, SalesPerDay: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Seed(context.Background(), nil, tt.opts)

			assert.Error(t, err)
			assert.Nil(t, summary)
		})
	}
}

func TestSeed_Integration(t *testing.T) {
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

	until := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	summary, err := Seed(context.Background(), db.DB, Options{Until: until, Days: 3, SalesPerDay: 4, Seed: 7})
	require.NoError(t, err)

	assert.Equal(t, 12, summary.Sales)
	assert.GreaterOrEqual(t, summary.Items, summary.Sales)
	assert.Equal(t, len(stores), summary.Stores)

	var bounds struct {
		First string `db:"first_day"`
		Last  string `db:"last_day"`
	}
	require.NoError(t, db.Get(&bounds, `SELECT TO_CHAR(MIN(created_at), 'YYYY-MM-DD') AS first_day, TO_CHAR(MAX(created_at), 'YYYY-MM-DD') AS last_day FROM sales`))
	assert.Equal(t, "2025-01-29", bounds.First)
	assert.Equal(t, "2025-01-31", bounds.Last)

	var mismatched int
	require.NoError(t, db.Get(&mismatched, `
		SELECT COUNT(*) FROM sales s
		WHERE s.total_amount <> (SELECT COALESCE(SUM(ps.total_price), 0) FROM product_sales ps WHERE ps.sale_id = s.id)`))
	assert.Zero(t, mismatched)
}
