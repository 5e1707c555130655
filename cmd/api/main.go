package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/repository"
	"github.com/vfg2006/sales-analytics-api/internal/api"
	"github.com/vfg2006/sales-analytics-api/internal/config"
	"github.com/vfg2006/sales-analytics-api/internal/scheduler"
	"github.com/vfg2006/sales-analytics-api/internal/usecases/analytics"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.AutoMigrate {
		if _, err := migration.Up(pgConn.SQL()); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	salesAnalyticsRepo := repository.NewSalesAnalyticsRepository(pgConn, cfg.Analytics.CompletedStatus)
	analyticsService := analytics.NewService(cfg, salesAnalyticsRepo)

	datastoreHealthService := scheduler.NewDatastoreHealthService(pgConn, cfg)
	if err := datastoreHealthService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação periódica do banco")
	}

	logrus.WithFields(logrus.Fields{
		"app":              cfg.App.Name,
		"version":          cfg.App.Version,
		"completed_status": cfg.Analytics.CompletedStatus,
		"parallel_queries": cfg.Analytics.ParallelQueries,
	}).Info("Serviço de analytics configurado")

	server, err := api.New(cfg, analyticsService, datastoreHealthService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.WithFields(logrus.Fields{
		"max_open_conns": dbConfig.MaxOpenConns,
		"max_idle_conns": dbConfig.MaxIdleConns,
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
