package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/muzeyka/artsearch.git/internal/config"
	"github.com/muzeyka/artsearch.git/internal/models"
	"github.com/muzeyka/artsearch.git/internal/query"
	"github.com/muzeyka/artsearch.git/internal/storage"
	"go.uber.org/zap"
)

// APIKeyPlaceholder — литеральный токен, которым подменяется настоящий ключ
// в ссылке пагинации перед выдачей ответа наружу.
const APIKeyPlaceholder = "API_KEY"

// ArtworkService определяет интерфейс сервиса поиска экспонатов
type ArtworkService interface {
	SearchArtworks(ctx context.Context, params []models.QueryParam) (*models.UpstreamResponse, error)
	GetHistory(ctx context.Context, limit int) ([]models.SearchRecord, error)
	CheckConnection(ctx context.Context) error
}

// ArtworkServiceImpl реализует ArtworkService
type ArtworkServiceImpl struct {
	client  *http.Client
	history storage.HistoryStorage
	cfg     *config.Config
	logger  *zap.Logger
}

// NewArtworkService создает новый экземпляр ArtworkService.
// Хранилище истории выбирается по конфигурации: PostgreSQL при заданном DSN,
// файл при заданном пути, иначе память.
func NewArtworkService(cfg *config.Config, logger *zap.Logger) (*ArtworkServiceImpl, error) {
	history, err := newHistoryStorage(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating history storage: %w", err)
	}

	return &ArtworkServiceImpl{
		client:  &http.Client{},
		history: history,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// newHistoryStorage выбирает реализацию хранилища истории по конфигурации
func newHistoryStorage(cfg *config.Config, logger *zap.Logger) (storage.HistoryStorage, error) {
	switch {
	case cfg.DatabaseDSN != "":
		return storage.NewPostgresStorage(cfg.DatabaseDSN)
	case cfg.FileStoragePath != "":
		return storage.NewFileStorage(cfg.FileStoragePath, logger)
	default:
		return storage.NewMemoryStorage(logger), nil
	}
}

// SearchArtworks выполняет запрос к API коллекции и возвращает его ответ.
// Перед возвратом настоящий ключ API в ссылке info.next подменяется
// токеном API_KEY, а ссылка info.prev очищается.
func (s *ArtworkServiceImpl) SearchArtworks(ctx context.Context, params []models.QueryParam) (*models.UpstreamResponse, error) {
	reqURL := fmt.Sprintf("%s/object?apikey=%s%s", s.cfg.UpstreamBaseURL, s.cfg.UpstreamAPIKey, query.Serialize(params))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating upstream request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling upstream API: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			s.logger.Error("Error closing upstream response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected upstream status code: %s", resp.Status)
	}

	var upstream models.UpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("error decoding upstream response: %w", err)
	}

	// Подмена ключа в ссылке пагинации и очистка обратной ссылки
	if s.cfg.UpstreamAPIKey != "" {
		upstream.Info.Next = strings.ReplaceAll(upstream.Info.Next, s.cfg.UpstreamAPIKey, APIKeyPlaceholder)
	}
	upstream.Info.Prev = ""

	s.recordSearch(ctx, params, len(upstream.Records))

	return &upstream, nil
}

// recordSearch сохраняет выполненный поиск в истории.
// Ошибка записи логируется и не влияет на результат поиска.
func (s *ArtworkServiceImpl) recordSearch(ctx context.Context, params []models.QueryParam, records int) {
	record := models.SearchRecord{
		UUID:      uuid.New().String(),
		Query:     query.Serialize(params),
		Records:   records,
		CreatedAt: time.Now(),
	}

	if err := s.history.Save(ctx, record); err != nil {
		s.logger.Error("Error saving search history", zap.Error(err), zap.String("query", record.Query))
	}
}

// GetHistory возвращает последние записи истории поиска
func (s *ArtworkServiceImpl) GetHistory(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	return s.history.List(ctx, limit)
}

// CheckConnection проверяет соединение с хранилищем истории
func (s *ArtworkServiceImpl) CheckConnection(ctx context.Context) error {
	if checker, ok := s.history.(storage.DatabaseChecker); ok {
		return checker.CheckConnection(ctx)
	}
	return nil
}
