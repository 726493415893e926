// Comando startnetctl: tareas de operación sobre la API (migraciones, tokens de prueba, datos demo).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jhoicas/startnet-api/pkg/config"
	"github.com/jhoicas/startnet-api/pkg/logger"
)

// app estado compartido por los subcomandos, cargado en PersistentPreRunE.
type app struct {
	envFile string
	cfg     *config.Config
	log     *logger.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "startnetctl",
		Short:         "Herramientas de operación de startnet-api",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "archivo de variables de entorno (opcional)")

	root.AddCommand(newMigrateCmd(a), newTokenCmd(a), newSeedCmd(a))
	return root
}

// load lee el archivo de entorno si existe y luego la configuración con Viper.
func (a *app) load() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("leer %s: %w", a.envFile, err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	a.cfg = cfg
	a.log = logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: "startnetctl",
		Out:     os.Stderr,
	})
	return nil
}
