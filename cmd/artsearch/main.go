package main

import (
	"github.com/muzeyka/artsearch.git/internal/app"
	"github.com/muzeyka/artsearch.git/internal/buildinfo"
	"github.com/muzeyka/artsearch.git/internal/server"
	"go.uber.org/zap"
)

// Переменные сборки, заполняются через ldflags
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// Инициализация логгера
	logger, cleanup := server.InitLogger()
	defer cleanup()

	// Информация о сборке в стартовом логе
	logger.Info("Starting artworks search relay",
		buildinfo.NewInfo(buildVersion, buildDate, buildCommit).Fields()...)

	// Инициализация конфигурации
	cfg := server.InitConfig(logger)

	// Создание приложения
	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal("Error creating application", zap.Error(err))
	}

	// Запуск сервера
	srv := server.NewHTTPServer(application.GetServer(), cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
