package storage

import (
	"context"

	"github.com/muzeyka/artsearch.git/internal/models"
)

// HistoryStorage определяет интерфейс хранилища истории поиска
type HistoryStorage interface {
	// Save сохраняет запись о выполненном поиске
	Save(ctx context.Context, record models.SearchRecord) error
	// List возвращает последние записи истории, новые первыми
	List(ctx context.Context, limit int) ([]models.SearchRecord, error)
}

// DatabaseChecker определяет интерфейс для проверки соединения с хранилищем
type DatabaseChecker interface {
	// CheckConnection проверяет соединение с хранилищем
	CheckConnection(ctx context.Context) error
}
