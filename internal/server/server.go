// Package server запускает HTTP или HTTPS сервер сервиса поиска экспонатов
// и инкапсулирует инициализацию логгера и конфигурации при старте.
package server

import (
	"log"
	"net/http"

	"github.com/muzeyka/artsearch.git/internal/config"
	"go.uber.org/zap"
)

// HTTPServer оборачивает http.Server логикой выбора режима запуска
type HTTPServer struct {
	server *http.Server
	config *config.Config
	logger *zap.Logger
}

// NewHTTPServer создает сервер сервиса поиска экспонатов
func NewHTTPServer(server *http.Server, cfg *config.Config, logger *zap.Logger) *HTTPServer {
	return &HTTPServer{
		server: server,
		config: cfg,
		logger: logger,
	}
}

// Start запускает сервер в режиме, заданном конфигурацией.
// Блокирующий вызов - выполняется до остановки сервера.
func (s *HTTPServer) Start() error {
	if s.config.IsHTTPSEnabled() {
		s.logger.Info("Starting artsearch HTTPS server",
			zap.String("address", s.config.ServerAddress),
			zap.String("upstream", s.config.UpstreamBaseURL),
			zap.String("cert", s.config.TLSCertFile))
		return s.server.ListenAndServeTLS(s.config.TLSCertFile, s.config.TLSKeyFile)
	}

	s.logger.Info("Starting artsearch HTTP server",
		zap.String("address", s.config.ServerAddress),
		zap.String("upstream", s.config.UpstreamBaseURL))
	return s.server.ListenAndServe()
}

// InitLogger инициализирует production логгер с defer функцией для синхронизации
func InitLogger() (*zap.Logger, func()) {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	cleanup := func() {
		if err := logger.Sync(); err != nil {
			log.Printf("Error syncing logger: %v", err)
		}
	}

	return logger, cleanup
}

// InitConfig инициализирует конфигурацию приложения
func InitConfig(logger *zap.Logger) *config.Config {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatal("Error loading config", zap.Error(err))
	}
	return cfg
}
