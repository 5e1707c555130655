package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/internal/config"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica ou reverte as migrações do esquema de vendas",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Aplica todas as migrações pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			applied, err := migration.Up(conn.SQL())
			if err != nil {
				return err
			}
			logrus.WithField("applied", applied).Info("migrate up concluído")
			return nil
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Reverte migrações (todas quando --steps=0)",
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			reverted, err := migration.Down(conn.SQL(), steps)
			if err != nil {
				return err
			}
			logrus.WithField("reverted", reverted).Info("migrate down concluído")
			return nil
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a reverter, 0 reverte todas")

	migrateCmd.AddCommand(upCmd, downCmd)
	return migrateCmd
}

func connect(cmd *cobra.Command) (*postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	return postgres.NewConnection(cmd.Context(), cfg.Database)
}
