// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными маршрутами и middleware.
package app

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/muzeyka/artsearch.git/internal/config"
	"github.com/muzeyka/artsearch.git/internal/handler"
	"github.com/muzeyka/artsearch.git/internal/middleware"
	"github.com/muzeyka/artsearch.git/internal/service"
	"go.uber.org/zap"
)

// App представляет основное приложение сервиса поиска экспонатов.
// Инкапсулирует конфигурацию, HTTP роутер, логгер и обработчики запросов.
type App struct {
	config  *config.Config   // Конфигурация приложения
	router  *chi.Mux         // HTTP роутер для обработки запросов
	logger  *zap.Logger      // Логгер для записи событий приложения
	handler *handler.Handler // Обработчики HTTP запросов
}

// NewApp создает и инициализирует новый экземпляр приложения.
// Настраивает сервисный слой, обработчики запросов и маршруты.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	artworkService, err := service.NewArtworkService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating service: %w", err)
	}

	a := &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: handler.NewHandler(artworkService, cfg, logger),
	}
	a.setupRoutes()

	return a, nil
}

// setupRoutes настраивает HTTP маршруты и middleware для приложения.
// Регистрирует все эндпоинты API и применяет глобальные middleware
// (идентификатор запроса, логирование, сжатие).
func (a *App) setupRoutes() {
	// Middleware
	a.router.Use(middleware.WithRequestID)
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.GzipMiddleware)

	// Routes
	a.router.Get("/artworks/search", a.handler.HandleSearchArtworks)
	a.router.Get("/api/search/history", a.handler.HandleSearchHistory)
	a.router.Get("/ping", a.handler.HandlePing)

	// Профилирование (доступно только в debug режиме)
	a.router.Mount("/debug/pprof", http.DefaultServeMux)
}

// Router возвращает настроенный HTTP роутер приложения
func (a *App) Router() *chi.Mux {
	return a.router
}

// GetServer создает и возвращает настроенный HTTP сервер.
// Сервер настроен с оптимальными таймаутами для production использования.
func (a *App) GetServer() *http.Server {
	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
