package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedCode   string
		expectedStatus int
		exposesMessage bool
	}{
		{
			name:           "entrada inválida",
			err:            fmt.Errorf("%w: start_date", domain.ErrInvalidInput),
			expectedCode:   ErrInvalidFormat,
			expectedStatus: http.StatusBadRequest,
			exposesMessage: true,
		},
		{
			name:           "acesso a dados",
			err:            fmt.Errorf("%w: top products: %w", domain.ErrDataAccess, errors.New("pq: syntax error")),
			expectedCode:   ErrDatabaseOperation,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "erro desconhecido",
			err:            errors.New("boom"),
			expectedCode:   ErrInternalServer,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)

			assert.Equal(t, tt.expectedCode, apiErr.Code)
			assert.Equal(t, tt.expectedStatus, Status(apiErr.Code))
			if tt.exposesMessage {
				assert.Equal(t, tt.err.Error(), apiErr.Message)
			} else {
				assert.Equal(t, GenericInternalMessage, apiErr.Message)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	rec := httptest.NewRecorder()

	apiErr := Write(rec, fmt.Errorf("%w: pq: relation missing", domain.ErrDataAccess))

	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"SRV_002","message":"`+GenericInternalMessage+`"}`, rec.Body.String())
}

func TestStatusUnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, Status("XYZ_999"))
}
