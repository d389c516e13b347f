package app

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Форматы логов.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Переменные окружения, переопределяющие конфигурацию.
const (
	EnvSeedPath    = "ESTORE_SEED"
	EnvJSONPath    = "ESTORE_JSON_PATH"
	EnvXMLPath     = "ESTORE_XML_PATH"
	EnvMetricsPath = "ESTORE_METRICS_PATH"
	EnvLogLevel    = "ESTORE_LOG_LEVEL"
	EnvLogFormat   = "ESTORE_LOG_FORMAT"
)

// Config описывает настройки запуска: источник данных, пути выгрузок и логирование.
type Config struct {
	// SeedPath — путь к TOML с наполнением магазина; пустой означает демонстрационный набор.
	SeedPath    string
	JSONPath    string
	XMLPath     string
	// MetricsPath — файл для метрик в текстовом формате Prometheus; пустой отключает запись.
	MetricsPath string
	LogLevel    string
	LogFormat   string
}

// DefaultConfig возвращает пути выгрузок и уровень логирования по умолчанию.
func DefaultConfig() Config {
	return Config{
		JSONPath:  "estore_data.json",
		XMLPath:   "estore_data.xml",
		LogLevel:  "info",
		LogFormat: LogFormatText,
	}
}

// ApplyEnv переопределяет поля значениями из переменных окружения, если они заданы.
func (c Config) ApplyEnv() Config {
	if v := strings.TrimSpace(os.Getenv(EnvSeedPath)); v != "" {
		c.SeedPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvJSONPath)); v != "" {
		c.JSONPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvXMLPath)); v != "" {
		c.XMLPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvMetricsPath)); v != "" {
		c.MetricsPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.LogFormat = v
	}
	return c
}

// Validate проверяет конфигурацию перед запуском.
func (c Config) Validate() error {
	if c.JSONPath == "" && c.XMLPath == "" {
		return fmt.Errorf("at least one of json or xml output path is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unsupported log format %q (use text|json)", c.LogFormat)
	}
	return nil
}

// ConfigureLogger применяет формат и уровень логирования к logger.
func ConfigureLogger(logger *log.Logger, cfg Config) error {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger.SetLevel(level)

	switch cfg.LogFormat {
	case LogFormatJSON:
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
