package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método HTTP não suportado

	// Erros do servidor (5000-5999)
	ErrInternalServer      = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation   = "SRV_002" // Erro de operação de banco de dados
	ErrServiceUnavailable  = "SRV_004" // Banco de dados indisponível
	GenericInternalMessage = "Erro interno ao processar a requisição"
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrServiceUnavailable:  http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status retorna o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError classifica um erro do domínio. Erros de entrada expõem a mensagem;
// qualquer outro recebe uma mensagem genérica para não vazar detalhes do banco.
func FromError(err error) APIError {
	switch {
	case err == nil:
		return APIError{Code: ErrInternalServer, Message: GenericInternalMessage}
	case errors.Is(err, domain.ErrInvalidInput):
		return APIError{Code: ErrInvalidFormat, Message: err.Error()}
	case errors.Is(err, domain.ErrDataAccess):
		return APIError{Code: ErrDatabaseOperation, Message: GenericInternalMessage}
	default:
		return APIError{Code: ErrInternalServer, Message: GenericInternalMessage}
	}
}

// Write escreve a resposta de erro correspondente a err
func Write(w http.ResponseWriter, err error) APIError {
	apiErr := FromError(err)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
	return apiErr
}
