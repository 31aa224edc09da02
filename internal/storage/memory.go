package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/muzeyka/artsearch.git/internal/models"
	"go.uber.org/zap"
)

// MemoryStorage реализует HistoryStorage с использованием памяти
type MemoryStorage struct {
	mu      sync.RWMutex
	records []models.SearchRecord
	index   map[string]struct{}
	logger  *zap.Logger
}

// NewMemoryStorage создает новый экземпляр MemoryStorage
func NewMemoryStorage(logger *zap.Logger) *MemoryStorage {
	return &MemoryStorage{
		records: make([]models.SearchRecord, 0),
		index:   make(map[string]struct{}),
		logger:  logger,
	}
}

// Save сохраняет запись истории в памяти
func (ms *MemoryStorage) Save(ctx context.Context, record models.SearchRecord) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.index[record.UUID]; exists {
		return ErrDuplicateRecord
	}

	ms.records = append(ms.records, record)
	ms.index[record.UUID] = struct{}{}
	return nil
}

// List возвращает последние записи истории, новые первыми
func (ms *MemoryStorage) List(ctx context.Context, limit int) ([]models.SearchRecord, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if limit <= 0 || limit > len(ms.records) {
		limit = len(ms.records)
	}

	result := make([]models.SearchRecord, 0, limit)
	for i := len(ms.records) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, ms.records[i])
	}

	return result, nil
}

// CheckConnection проверяет доступность хранилища
func (ms *MemoryStorage) CheckConnection(ctx context.Context) error {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	if ms.index == nil {
		return fmt.Errorf("storage is not initialized")
	}

	return nil
}
