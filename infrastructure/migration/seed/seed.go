package seed

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Until       time.Time
	Days        int
	SalesPerDay int
	Seed        uint64
}

type Summary struct {
	Stores   int
	Channels int
	Products int
	Sales    int
	Items    int
	Elapsed  time.Duration
}

type store struct {
	Name  string
	City  string
	State string
}

type channel struct {
	Name        string
	Description string
	Type        string
}

type product struct {
	Name     string
	Category string
	Price    decimal.Decimal
}

var (
	stores = []store{
		{"Loja Centro", "São Paulo", "SP"},
		{"Loja Paulista", "São Paulo", "SP"},
		{"Loja Savassi", "Belo Horizonte", "MG"},
		{"Loja Batel", "Curitiba", "PR"},
	}

	channels = []channel{
		{"Presencial", "Balcão e salão", "P"},
		{"iFood", "Marketplace de delivery", "D"},
		{"Rappi", "Marketplace de delivery", "D"},
		{"App Próprio", "Aplicativo da rede", "D"},
	}

	products = []product{
		{"X-Burger", "Lanches", decimal.RequireFromString("28.90")},
		{"X-Salada", "Lanches", decimal.RequireFromString("31.50")},
		{"Batata Frita", "Acompanhamentos", decimal.RequireFromString("14.00")},
		{"Onion Rings", "Acompanhamentos", decimal.RequireFromString("16.50")},
		{"Refrigerante Lata", "Bebidas", decimal.RequireFromString("6.50")},
		{"Suco Natural", "Bebidas", decimal.RequireFromString("9.90")},
		{"Milk Shake", "Sobremesas", decimal.RequireFromString("18.00")},
		{"Brownie", "Sobremesas", decimal.RequireFromString("12.00")},
	}

	statuses = []string{"COMPLETED", "COMPLETED", "COMPLETED", "COMPLETED", "COMPLETED", "COMPLETED", "COMPLETED", "COMPLETED", "CANCELLED", "PENDING"}
)

// Seed popula o banco com um histórico sintético e reprodutível de vendas.
// A mesma Options gera sempre os mesmos dados.
func Seed(ctx context.Context, db *sql.DB, opts Options) (*Summary, error) {
	if opts.Days <= 0 || opts.SalesPerDay <= 0 {
		return nil, fmt.Errorf("seed: days e sales-per-day devem ser positivos")
	}
	if opts.Until.IsZero() {
		opts.Until = time.Now()
	}

	startTime := time.Now()
	random := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5eed))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("seed: erro ao iniciar transação: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	storeIDs, err := insertStores(ctx, tx)
	if err != nil {
		return nil, err
	}

	channelIDs, err := insertChannels(ctx, tx)
	if err != nil {
		return nil, err
	}

	productIDs, err := insertProducts(ctx, tx)
	if err != nil {
		return nil, err
	}

	customerIDs, err := insertCustomers(ctx, tx, 50)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Stores:   len(storeIDs),
		Channels: len(channelIDs),
		Products: len(productIDs),
	}

	saleStmt, err := tx.PrepareContext(ctx, `INSERT INTO sales (store_id, channel_id, customer_id, created_at, sale_status_desc, total_amount) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`)
	if err != nil {
		return nil, fmt.Errorf("seed: erro ao preparar statement de vendas: %w", err)
	}
	defer saleStmt.Close()

	itemStmt, err := tx.PrepareContext(ctx, `INSERT INTO product_sales (sale_id, product_id, quantity, base_price, total_price) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return nil, fmt.Errorf("seed: erro ao preparar statement de itens: %w", err)
	}
	defer itemStmt.Close()

	firstDay := opts.Until.AddDate(0, 0, -(opts.Days - 1))
	firstDay = time.Date(firstDay.Year(), firstDay.Month(), firstDay.Day(), 0, 0, 0, 0, time.UTC)

	for day := 0; day < opts.Days; day++ {
		date := firstDay.AddDate(0, 0, day)

		for i := 0; i < opts.SalesPerDay; i++ {
			createdAt := date.Add(time.Duration(10+random.IntN(13))*time.Hour + time.Duration(random.IntN(60))*time.Minute)

			itemCount := 1 + random.IntN(4)
			total := decimal.Zero
			type item struct {
				productID int64
				quantity  decimal.Decimal
				price     decimal.Decimal
				total     decimal.Decimal
			}
			items := make([]item, 0, itemCount)
			for j := 0; j < itemCount; j++ {
				idx := random.IntN(len(products))
				quantity := decimal.NewFromInt(int64(1 + random.IntN(3)))
				lineTotal := products[idx].Price.Mul(quantity)
				total = total.Add(lineTotal)
				items = append(items, item{productIDs[idx], quantity, products[idx].Price, lineTotal})
			}

			var customerID *int64
			if random.IntN(5) > 0 {
				customerID = &customerIDs[random.IntN(len(customerIDs))]
			}

			var saleID int64
			err := saleStmt.QueryRowContext(ctx,
				storeIDs[random.IntN(len(storeIDs))],
				channelIDs[random.IntN(len(channelIDs))],
				customerID,
				createdAt,
				statuses[random.IntN(len(statuses))],
				total.StringFixed(2),
			).Scan(&saleID)
			if err != nil {
				return nil, fmt.Errorf("seed: erro ao inserir venda de %s: %w", date.Format(time.DateOnly), err)
			}
			summary.Sales++

			for _, it := range items {
				if _, err := itemStmt.ExecContext(ctx, saleID, it.productID, it.quantity.String(), it.price.StringFixed(2), it.total.StringFixed(2)); err != nil {
					return nil, fmt.Errorf("seed: erro ao inserir item da venda %d: %w", saleID, err)
				}
				summary.Items++
			}
		}

		if day > 0 && day%10 == 0 {
			logrus.Infof("Progresso: %d/%d dias gerados", day, opts.Days)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("seed: erro ao confirmar transação: %w", err)
	}

	summary.Elapsed = time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"stores":   summary.Stores,
		"channels": summary.Channels,
		"products": summary.Products,
		"sales":    summary.Sales,
		"items":    summary.Items,
		"elapsed":  summary.Elapsed.String(),
	}).Info("Carga de dados de desenvolvimento concluída")

	return summary, nil
}

func insertStores(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(stores))
	for _, s := range stores {
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO stores (name, city, state) VALUES ($1, $2, $3) RETURNING id`, s.Name, s.City, s.State).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed: erro ao inserir loja %s: %w", s.Name, err)
		}
		ids = append(ids, id)
	}
	logrus.Debugf("Inseridas %d lojas", len(ids))
	return ids, nil
}

func insertChannels(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	ids := make([]int64, 0, len(channels))
	for _, c := range channels {
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO channels (name, description, type) VALUES ($1, $2, $3) RETURNING id`, c.Name, c.Description, c.Type).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed: erro ao inserir canal %s: %w", c.Name, err)
		}
		ids = append(ids, id)
	}
	logrus.Debugf("Inseridos %d canais", len(ids))
	return ids, nil
}

func insertProducts(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	categoryIDs := make(map[string]int64)
	ids := make([]int64, 0, len(products))

	for _, p := range products {
		categoryID, ok := categoryIDs[p.Category]
		if !ok {
			err := tx.QueryRowContext(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, p.Category).Scan(&categoryID)
			if err != nil {
				return nil, fmt.Errorf("seed: erro ao inserir categoria %s: %w", p.Category, err)
			}
			categoryIDs[p.Category] = categoryID
		}

		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO products (category_id, name) VALUES ($1, $2) RETURNING id`, categoryID, p.Name).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed: erro ao inserir produto %s: %w", p.Name, err)
		}
		ids = append(ids, id)
	}
	logrus.Debugf("Inseridos %d produtos em %d categorias", len(ids), len(categoryIDs))
	return ids, nil
}

func insertCustomers(ctx context.Context, tx *sql.Tx, count int) ([]int64, error) {
	ids := make([]int64, 0, count)
	for i := 1; i <= count; i++ {
		var id int64
		err := tx.QueryRowContext(ctx, `INSERT INTO customers (customer_name, email) VALUES ($1, $2) RETURNING id`,
			fmt.Sprintf("Cliente %03d", i), fmt.Sprintf("cliente%03d@example.com", i)).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("seed: erro ao inserir cliente %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
