package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration"
	"github.com/vfg2006/sales-analytics-api/infrastructure/migration/seed"
)

func newSeedCmd() *cobra.Command {
	var (
		opts    seed.Options
		until   string
		migrate bool
	)

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Gera um histórico sintético e reprodutível de vendas",
		RunE: func(cmd *cobra.Command, args []string) error {
			if until != "" {
				parsed, err := time.Parse(time.DateOnly, until)
				if err != nil {
					return fmt.Errorf("--until deve estar no formato YYYY-MM-DD: %w", err)
				}
				opts.Until = parsed
			}

			conn, err := connect(cmd)
			if err != nil {
				return err
			}
			defer conn.Close()

			if migrate {
				if _, err := migration.Up(conn.SQL()); err != nil {
					return err
				}
			}

			summary, err := seed.Seed(cmd.Context(), conn.SQL(), opts)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"stores":   summary.Stores,
				"channels": summary.Channels,
				"products": summary.Products,
				"sales":    summary.Sales,
				"items":    summary.Items,
				"elapsed":  summary.Elapsed.String(),
			}).Info("seed concluído")
			return nil
		},
	}

	seedCmd.Flags().IntVar(&opts.Days, "days", 90, "quantidade de dias de histórico")
	seedCmd.Flags().IntVar(&opts.SalesPerDay, "sales-per-day", 50, "vendas geradas por dia")
	seedCmd.Flags().Uint64Var(&opts.Seed, "seed", 42, "semente do gerador pseudoaleatório")
	seedCmd.Flags().StringVar(&until, "until", "", "último dia do histórico (YYYY-MM-DD), padrão hoje")
	seedCmd.Flags().BoolVar(&migrate, "migrate", false, "aplica as migrações antes de gerar os dados")

	return seedCmd
}
