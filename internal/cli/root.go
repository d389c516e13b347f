// Package cli содержит команды утилиты estore.
package cli

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/estore/internal/app"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "estore",
	Short: "Retail inventory: order fulfillment and store exports",
	Long: `estore builds a store from a TOML seed (or the built-in demo data),
fulfils pending orders against warehouse stock and writes the store
as a JSON record document and an XML markup document.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	defaults := app.DefaultConfig()
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaults.LogLevel,
		fmt.Sprintf("log level: debug|info|warn|error (env %s)", app.EnvLogLevel))
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", defaults.LogFormat,
		fmt.Sprintf("log format: text|json (env %s)", app.EnvLogFormat))
}

// Execute запускает корневую команду с контекстом ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// baseConfig собирает конфигурацию: значения по умолчанию, затем окружение, затем явно заданные флаги.
func baseConfig(cmd *cobra.Command) app.Config {
	cfg := app.DefaultConfig().ApplyEnv()
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	return cfg
}

func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg := baseConfig(cmd)
	logger := log.StandardLogger()
	logger.SetOutput(cmd.ErrOrStderr())
	return app.ConfigureLogger(logger, cfg)
}
