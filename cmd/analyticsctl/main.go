package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

var (
	rootCmd = &cobra.Command{
		Use:           "analyticsctl",
		Short:         "Ferramentas de manutenção do banco de vendas (migrações e dados sintéticos)",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("nível de log inválido %q: %w", logLevel, err)
			}
			logrus.SetLevel(level)
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão configurada da API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.App.Name, cfg.App.Version)
			return nil
		},
	}

	logLevel string
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "nível de log (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd, newMigrateCmd(), newSeedCmd())

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("analyticsctl: falha ao executar comando")
		os.Exit(1)
	}
}
