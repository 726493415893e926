package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/startnet-api/internal/infrastructure/postgres"
	"github.com/jhoicas/startnet-api/pkg/config"
)

func newMigrateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema PostgreSQL",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withMigrator(cmd, func(m *postgres.Migrator) error { return m.Up() })
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revierte migraciones (todas si --steps es 0)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withMigrator(cmd, func(m *postgres.Migrator) error { return m.Down(steps) })
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "cantidad de migraciones a revertir")

	version := &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión aplicada",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withMigrator(cmd, func(m *postgres.Migrator) error {
				v, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", v, dirty)
				return nil
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

// withMigrator abre el pool, ejecuta fn y registra la versión resultante.
func (a *app) withMigrator(cmd *cobra.Command, fn func(*postgres.Migrator) error) error {
	if a.cfg.Storage.Driver != config.DriverPostgres {
		return fmt.Errorf("migrate: STORAGE_DRIVER=%s no usa migraciones SQL", a.cfg.Storage.Driver)
	}
	pool, err := postgres.NewPool(cmd.Context(), a.cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	if err := fn(m); err != nil {
		return err
	}
	v, dirty, err := m.Version()
	if err != nil {
		return err
	}
	a.log.Info().Uint("version", v).Bool("dirty", dirty).Str("command", cmd.Name()).Msg("migraciones")
	return nil
}
