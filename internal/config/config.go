package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

// Config хранит конфигурацию приложения.
type Config struct {
	ServerAddress   string `env:"SERVER_ADDRESS"`    // Адрес для запуска HTTP-сервера
	UpstreamBaseURL string `env:"UPSTREAM_BASE_URL"` // Базовый адрес API коллекции
	UpstreamAPIKey  string `env:"UPSTREAM_API_KEY"`  // Ключ доступа к API коллекции
	DefaultPageSize int    `env:"DEFAULT_PAGE_SIZE"` // Размер страницы, если size не передан
	DatabaseDSN     string `env:"DATABASE_DSN"`      // DSN PostgreSQL для истории поиска
	FileStoragePath string `env:"FILE_STORAGE_PATH"` // Путь к файлу истории поиска
	EnableHTTPS     bool   `env:"ENABLE_HTTPS"`      // Включить HTTPS сервер
	TLSCertFile     string `env:"TLS_CERT_FILE"`     // Путь к TLS сертификату
	TLSKeyFile      string `env:"TLS_KEY_FILE"`      // Путь к TLS ключу
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
func NewConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   ":8080",                             // Значение по умолчанию
		UpstreamBaseURL: "https://api.harvardartmuseums.org", // Значение по умолчанию
		DefaultPageSize: 12,                                  // Значение по умолчанию
	}

	// 1. Определение флагов командной строки
	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.UpstreamBaseURL, "u", cfg.UpstreamBaseURL, "Базовый адрес API коллекции (env: UPSTREAM_BASE_URL)")
	flag.StringVar(&cfg.UpstreamAPIKey, "k", cfg.UpstreamAPIKey, "Ключ доступа к API коллекции (env: UPSTREAM_API_KEY)")
	flag.IntVar(&cfg.DefaultPageSize, "n", cfg.DefaultPageSize, "Размер страницы по умолчанию (env: DEFAULT_PAGE_SIZE)")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "DSN PostgreSQL для истории поиска (env: DATABASE_DSN)")
	flag.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "Путь к файлу истории поиска (env: FILE_STORAGE_PATH)")
	flag.BoolVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS сервер (env: ENABLE_HTTPS)")
	flag.StringVar(&cfg.TLSCertFile, "cert", cfg.TLSCertFile, "Путь к TLS сертификату (env: TLS_CERT_FILE)")
	flag.StringVar(&cfg.TLSKeyFile, "key", cfg.TLSKeyFile, "Путь к TLS ключу (env: TLS_KEY_FILE)")

	// 2. Парсинг флагов командной строки
	flag.Parse()

	// 3. Парсинг переменных окружения (имеет наивысший приоритет)
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsHTTPSEnabled сообщает, настроен ли запуск HTTPS сервера
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS && c.TLSCertFile != "" && c.TLSKeyFile != ""
}
