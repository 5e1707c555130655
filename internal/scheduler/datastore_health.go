package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

const pingTimeout = 5 * time.Second

//go:generate mockgen -source=datastore_health.go -destination=mocks/pinger.go -package=mocks

// Pinger verifica se o banco responde
type Pinger interface {
	Ping(ctx context.Context) error
}

// DatastoreStatus é o resultado da última verificação do banco
type DatastoreStatus struct {
	Healthy             bool      `json:"healthy"`
	CheckedAt           time.Time `json:"checked_at"`
	LastHealthyAt       time.Time `json:"last_healthy_at,omitempty"`
	LastError           string    `json:"last_error,omitempty"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
}

// DatastoreHealthService verifica periodicamente a conexão com o banco
type DatastoreHealthService struct {
	scheduler *gocron.Scheduler
	config    config.StoreHealthCheck
	pinger    Pinger
	now       func() time.Time

	mu     sync.RWMutex
	status DatastoreStatus
}

func NewDatastoreHealthService(pinger Pinger, appConfig *config.Config) *DatastoreHealthService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.StoreHealthCheck.CronSchedule,
		"enabled":       appConfig.StoreHealthCheck.Enabled,
	}).Info("Configuração da verificação de saúde do banco carregada")

	return &DatastoreHealthService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.StoreHealthCheck,
		pinger:    pinger,
		now:       time.Now,
	}
}

// Start agenda a verificação periódica; desabilitada, o status é calculado sob demanda
func (s *DatastoreHealthService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação periódica do banco desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando verificação periódica do banco")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Check(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do banco: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando verificação periódica do banco")
		s.scheduler.Stop()
	}()

	return nil
}

// Check executa um ping agora e atualiza o status
func (s *DatastoreHealthService) Check(ctx context.Context) DatastoreStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := s.pinger.Ping(pingCtx)
	checkedAt := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.CheckedAt = checkedAt
	if err != nil {
		s.status.Healthy = false
		s.status.LastError = err.Error()
		s.status.ConsecutiveFailures++

		logrus.WithFields(logrus.Fields{
			"datastore_failures": s.status.ConsecutiveFailures,
			"error":              err.Error(),
		}).Warn("Banco de dados não respondeu ao ping")

		return s.status
	}

	if s.status.ConsecutiveFailures > 0 {
		logrus.WithField("datastore_failures", s.status.ConsecutiveFailures).Info("Banco de dados voltou a responder")
	}

	s.status.Healthy = true
	s.status.LastError = ""
	s.status.ConsecutiveFailures = 0
	s.status.LastHealthyAt = checkedAt

	return s.status
}

// Status retorna o último resultado; sem agendamento ativo, verifica na hora
func (s *DatastoreHealthService) Status(ctx context.Context) DatastoreStatus {
	if !s.config.Enabled {
		return s.Check(ctx)
	}

	s.mu.RLock()
	status := s.status
	s.mu.RUnlock()

	if status.CheckedAt.IsZero() {
		return s.Check(ctx)
	}
	return status
}
