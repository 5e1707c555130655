package domain

import "errors"

var (
	// ErrInvalidInput indica parâmetros de entrada inválidos (datas, período, limite)
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrDataAccess indica falha ao consultar o banco de dados
	ErrDataAccess = errors.New("falha de acesso aos dados")
)
