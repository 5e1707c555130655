package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
)

// DatastoreChecker informa a situação da conexão com o banco
type DatastoreChecker interface {
	Status(ctx context.Context) scheduler.DatastoreStatus
}

type healthResponse struct {
	Status     string                     `json:"status"`
	APIVersion string                     `json:"api_version,omitempty"`
	Timestamp  string                     `json:"timestamp"`
	Datastore  *scheduler.DatastoreStatus `json:"datastore,omitempty"`
}

// HealthcheckHandler responde 200 com o banco saudável e 503 caso contrário
func HealthcheckHandler(checker DatastoreChecker, apiVersion string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := healthResponse{
			Status:     "healthy",
			APIVersion: apiVersion,
			Timestamp:  time.Now().Format(time.RFC3339),
		}
		status := http.StatusOK

		if checker != nil {
			datastore := checker.Status(r.Context())
			response.Datastore = &datastore
			if !datastore.Healthy {
				response.Status = "unhealthy"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, r, status, response)
	})
}

// RootHandler identifica o serviço e a versão
func RootHandler(app config.App) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{
			"message": app.Name,
			"version": app.Version,
		})
	})
}
