package postgres

import (
	"context"
)

//go:generate mockgen -source=queryer.go -destination=mocks/queryer.go -package=mocks

// Queryer executa consultas somente leitura e escaneia o resultado em structs com tags `db`
type Queryer interface {
	// SelectContext escaneia todas as linhas em dest (ponteiro para slice)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	// GetContext escaneia exatamente uma linha em dest
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}
